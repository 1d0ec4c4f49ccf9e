package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context, provider string) error
	Logout(ctx context.Context) error
	Add(ctx context.Context) error
	List(ctx context.Context) error
	Summary(ctx context.Context) error
	WhoAmI(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the GoFinances CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. The loop exits on EOF, when ctx is done or
// when the user types "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Signed out:
//	  - help                 show available commands
//	  - login google|apple   sign in
//	  - exit | quit          leave the program
//
//	Signed in:
//	  - help                 show available commands
//	  - add                  register a transaction
//	  - list | l             list transactions
//	  - summary              show totals per kind and category
//	  - whoami               show the signed-in account
//	  - logout               sign out
//	  - exit | quit          leave the program
//
// Errors returned by command handlers are ignored here; handlers report
// them to the user themselves.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		printlnFn(fmt.Sprintf("gf %s> ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: add, (l)ist, summary, whoami, logout, exit")
			} else {
				printlnFn("Available commands: login google|apple, exit")
			}

		case "exit", "quit":
			printlnFn("Bye!")
			return

		case "login":
			if a.isLoggedIn() {
				printlnFn("Already signed in, logout first")
				continue
			}
			if len(args) != 1 {
				printlnFn("Usage: login google|apple")
				continue
			}
			_ = a.Login(ctx, args[0])

		case "add", "l", "list", "summary", "whoami", "logout":
			if !a.isLoggedIn() {
				printlnFn("Please sign in first: login google|apple")
				continue
			}
			switch cmd {
			case "add":
				_ = a.Add(ctx)
			case "l", "list":
				_ = a.List(ctx)
			case "summary":
				_ = a.Summary(ctx)
			case "whoami":
				_ = a.WhoAmI(ctx)
			case "logout":
				_ = a.Logout(ctx)
			}

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
