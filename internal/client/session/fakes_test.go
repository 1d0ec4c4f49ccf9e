package session

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/dmitrijs2005/gofinances/internal/client/oauth"
	"github.com/dmitrijs2005/gofinances/internal/common"
	"github.com/dmitrijs2005/gofinances/internal/logging"
)

type fakeStore struct {
	mu   sync.Mutex
	data map[string]string

	// gate, when set, holds every Get until it is closed.
	gate chan struct{}

	getErr    error
	setErr    error
	deleteErr error

	sets    int
	deletes int
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}}
}

func (s *fakeStore) Get(ctx context.Context, key string) (string, bool, error) {
	if s.gate != nil {
		<-s.gate
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return "", false, fmt.Errorf("get %s: %w: %w", key, common.ErrStorageFailure, s.getErr)
	}
	v, ok := s.data[key]
	return v, ok, nil
}

func (s *fakeStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.setErr != nil {
		return fmt.Errorf("set %s: %w: %w", key, common.ErrStorageFailure, s.setErr)
	}
	s.sets++
	s.data[key] = value
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes++
	if s.deleteErr != nil {
		return fmt.Errorf("delete %s: %w: %w", key, common.ErrStorageFailure, s.deleteErr)
	}
	delete(s.data, key)
	return nil
}

func (s *fakeStore) value(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.data[key]
	return v, ok
}

func (s *fakeStore) setCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sets
}

type fakeProvider struct {
	name   string
	claims oauth.Claims
	err    error
	delay  time.Duration

	calls atomic.Int32

	// inFlight is shared between providers to observe overlap.
	inFlight    *atomic.Int32
	maxInFlight *atomic.Int32
}

func (p *fakeProvider) Name() string { return p.name }

func (p *fakeProvider) Authenticate(ctx context.Context) (oauth.Claims, error) {
	p.calls.Add(1)
	if p.inFlight != nil {
		n := p.inFlight.Add(1)
		defer p.inFlight.Add(-1)
		for {
			cur := p.maxInFlight.Load()
			if n <= cur || p.maxInFlight.CompareAndSwap(cur, n) {
				break
			}
		}
	}
	if p.delay > 0 {
		time.Sleep(p.delay)
	}
	return p.claims, p.err
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, "error")
}

// newManager builds a Manager and waits for its restore.
func newManager(t *testing.T, store *fakeStore, providers ...oauth.Provider) *Manager {
	t.Helper()
	m := NewManager(context.Background(), store, testLogger(), providers...)
	_ = m.WaitRestored(context.Background())
	return m
}
