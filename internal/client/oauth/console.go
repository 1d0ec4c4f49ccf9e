package oauth

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// ConsoleBrowserFlow asks the user to open the authorization URL in a
// browser and paste back the address they were redirected to.
//
// Reading from the terminal blocks; ctx is checked once the line arrives.
type ConsoleBrowserFlow struct {
	reader *bufio.Reader
	out    io.Writer
}

func NewConsoleBrowserFlow(reader *bufio.Reader, out io.Writer) *ConsoleBrowserFlow {
	return &ConsoleBrowserFlow{reader: reader, out: out}
}

func (f *ConsoleBrowserFlow) StartAuth(ctx context.Context, authURL string) (AuthResult, error) {
	if _, err := fmt.Fprintf(f.out, "Open this address in your browser and sign in:\n\n  %s\n\nPaste the address you were redirected to (empty line to cancel)\n> ", authURL); err != nil {
		return AuthResult{}, err
	}

	line, err := readLine(f.reader)
	if err != nil {
		return AuthResult{}, err
	}
	if err := ctx.Err(); err != nil {
		return AuthResult{}, err
	}
	if line == "" {
		return AuthResult{Type: OutcomeCancel}, nil
	}

	return ParseRedirect(line)
}

// ParseRedirect turns a redirect address into an AuthResult. Parameters are
// read from the query and from the fragment, the fragment taking precedence
// since implicit grants deliver the token there.
func ParseRedirect(raw string) (AuthResult, error) {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return AuthResult{}, fmt.Errorf("invalid redirect address: %w", err)
	}

	params := u.Query()
	frag, err := url.ParseQuery(u.EscapedFragment())
	if err != nil {
		return AuthResult{}, fmt.Errorf("invalid redirect fragment: %w", err)
	}
	for k, v := range frag {
		params[k] = v
	}

	switch {
	case params.Get("error") != "":
		return AuthResult{Type: OutcomeError, Params: params}, nil
	case params.Get("access_token") != "":
		return AuthResult{Type: OutcomeSuccess, Params: params}, nil
	default:
		return AuthResult{Type: OutcomeError, Params: params}, nil
	}
}

// IdentityClaims are the identity token fields the client reads.
type IdentityClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// ParseIdentityToken extracts claims from an identity token without
// verifying its signature. The subject is required.
func ParseIdentityToken(token string) (*IdentityClaims, error) {
	claims := &IdentityClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parse identity token: %w", err)
	}
	if claims.Subject == "" {
		return nil, errors.New("identity token has no subject")
	}
	return claims, nil
}

// ConsoleCredentialRequester reads an identity token from the terminal
// without echo and, when the full name scope is requested, asks for the
// given name the platform shared.
type ConsoleCredentialRequester struct {
	reader *bufio.Reader
	out    io.Writer
	fd     int
}

func NewConsoleCredentialRequester(reader *bufio.Reader, out io.Writer, fd int) *ConsoleCredentialRequester {
	return &ConsoleCredentialRequester{reader: reader, out: out, fd: fd}
}

func (r *ConsoleCredentialRequester) RequestCredential(ctx context.Context, scopes []Scope) (*Credential, error) {
	if _, err := fmt.Fprint(r.out, "Paste your Apple identity token (empty to cancel): "); err != nil {
		return nil, err
	}
	raw, err := readPassword(r.fd)
	fmt.Fprintln(r.out)
	if err != nil {
		return nil, err
	}

	token := strings.TrimSpace(string(raw))
	if token == "" {
		return nil, ErrCredentialCancelled
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	claims, err := ParseIdentityToken(token)
	if err != nil {
		return nil, err
	}

	cred := &Credential{User: claims.Subject, IdentityToken: token}
	if hasScope(scopes, ScopeEmail) {
		cred.Email = claims.Email
	}

	if hasScope(scopes, ScopeFullName) {
		if _, err := fmt.Fprint(r.out, "Given name (empty if not shared)\n> "); err != nil {
			return nil, err
		}
		name, err := readLine(r.reader)
		if err != nil {
			return nil, err
		}
		if name != "" {
			cred.FullName = &FullName{GivenName: name}
		}
	}

	return cred, nil
}

func hasScope(scopes []Scope, s Scope) bool {
	for _, sc := range scopes {
		if sc == s {
			return true
		}
	}
	return false
}

// readLine reads one trimmed line. EOF after partial input returns the
// partial line; EOF on an empty line reads as an empty answer.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
