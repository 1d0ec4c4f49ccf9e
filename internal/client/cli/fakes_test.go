package cli

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/gofinances/internal/client/config"
	"github.com/dmitrijs2005/gofinances/internal/client/ledger"
	"github.com/dmitrijs2005/gofinances/internal/client/models"
	"github.com/dmitrijs2005/gofinances/internal/client/session"
	"github.com/dmitrijs2005/gofinances/internal/logging"
)

type fakeSession struct {
	state      session.State
	restoreErr error

	signInErr   error
	signInUser  models.User
	provider    string
	hasDeadline bool
	signOuts    int

	subscribers []func(session.State)
}

func (f *fakeSession) State() session.State { return f.state }

func (f *fakeSession) Subscribe(fn func(session.State)) func() {
	f.subscribers = append(f.subscribers, fn)
	return func() { f.subscribers = nil }
}

func (f *fakeSession) WaitRestored(ctx context.Context) error { return f.restoreErr }

func (f *fakeSession) SignIn(ctx context.Context, provider string) error {
	f.provider = provider
	_, f.hasDeadline = ctx.Deadline()
	if f.signInErr != nil {
		return f.signInErr
	}
	f.set(session.State{User: f.signInUser})
	return nil
}

func (f *fakeSession) SignOut(ctx context.Context) error {
	f.signOuts++
	f.set(session.State{})
	return nil
}

func (f *fakeSession) set(st session.State) {
	if st == f.state {
		return
	}
	f.state = st
	for _, fn := range f.subscribers {
		fn(st)
	}
}

type fakeLedger struct {
	appended  []models.Transaction
	userID    string
	appendErr error

	list    []models.Transaction
	listErr error

	summary    ledger.Summary
	summaryErr error
}

func (f *fakeLedger) Append(ctx context.Context, userID string, tx models.Transaction) (models.Transaction, error) {
	f.userID = userID
	if f.appendErr != nil {
		return models.Transaction{}, f.appendErr
	}
	tx.ID = "tx-1"
	f.appended = append(f.appended, tx)
	return tx, nil
}

func (f *fakeLedger) List(ctx context.Context, userID string) ([]models.Transaction, error) {
	f.userID = userID
	return f.list, f.listErr
}

func (f *fakeLedger) Summarize(ctx context.Context, userID string) (ledger.Summary, error) {
	f.userID = userID
	return f.summary, f.summaryErr
}

func rdr(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

var ana = models.User{ID: "g-1", Name: "Ana", Email: "ana@x.com"}

func newTestApp(t *testing.T, s SessionService, l LedgerService, input string) (*App, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return &App{
		config:  &config.Config{AuthTimeout: time.Minute},
		session: s,
		ledger:  l,
		logger:  logging.NewTextLogger(io.Discard, "error"),
		reader:  rdr(input),
		out:     &out,
	}, &out
}
