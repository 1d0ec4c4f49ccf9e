package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gofinances/internal/client/models"
	"github.com/dmitrijs2005/gofinances/internal/client/oauth"
	"github.com/dmitrijs2005/gofinances/internal/client/storage"
	"github.com/dmitrijs2005/gofinances/internal/common"
	"github.com/dmitrijs2005/gofinances/internal/logging"
)

type subscriber struct {
	id uint64
	fn func(State)
}

// Manager holds the session state.
//
// Restore, sign-in and sign-out run one at a time behind a single slot, so
// a later outcome can never interleave with an earlier one. Reads of the
// state do not wait for running operations.
type Manager struct {
	store     storage.Store
	logger    logging.Logger
	providers map[string]oauth.Provider

	// slot is held by the running operation.
	slot chan struct{}

	mu          sync.RWMutex
	state       State
	subscribers []subscriber
	nextID      uint64

	restored   chan struct{}
	restoreErr error
}

// NewManager returns a Manager and starts restoring the persisted session.
// Until the restore finishes, State reports Loading and every operation
// waits for it.
func NewManager(ctx context.Context, store storage.Store, logger logging.Logger, providers ...oauth.Provider) *Manager {
	m := &Manager{
		store:     store,
		logger:    logger,
		providers: make(map[string]oauth.Provider, len(providers)),
		slot:      make(chan struct{}, 1),
		state:     State{User: models.EmptyUser, Loading: true},
		restored:  make(chan struct{}),
	}
	for _, p := range providers {
		m.providers[p.Name()] = p
	}

	m.slot <- struct{}{}
	go m.restore(ctx)

	return m
}

// State returns the current session.
func (m *Manager) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// UserID returns the id of the signed-in user, or "" when nobody is.
func (m *Manager) UserID() string {
	return m.State().User.ID
}

// Subscribe registers fn to be called with the new state after every change.
// fn runs synchronously on the goroutine that made the change, in
// registration order, and must not call back into Manager operations.
func (m *Manager) Subscribe(fn func(State)) (unsubscribe func()) {
	m.mu.Lock()
	m.nextID++
	id := m.nextID
	m.subscribers = append(m.subscribers, subscriber{id: id, fn: fn})
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			for i, s := range m.subscribers {
				if s.id == id {
					m.subscribers = append(m.subscribers[:i:i], m.subscribers[i+1:]...)
					return
				}
			}
		})
	}
}

// WaitRestored blocks until the startup restore has finished and returns
// its error, if any. The session is usable either way.
func (m *Manager) WaitRestored(ctx context.Context) error {
	select {
	case <-m.restored:
		return m.restoreErr
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Manager) SignInWithGoogle(ctx context.Context) error {
	return m.SignIn(ctx, oauth.ProviderGoogle)
}

func (m *Manager) SignInWithApple(ctx context.Context) error {
	return m.SignIn(ctx, oauth.ProviderApple)
}

// SignIn authenticates with the named provider and makes the result the
// signed-in user.
//
// The record is written before the in-memory state changes: on any error
// neither the state nor the stored record is touched. Profile fields the
// provider left empty are carried forward from the stored record when it
// belongs to the same account.
func (m *Manager) SignIn(ctx context.Context, provider string) error {
	p, ok := m.providers[provider]
	if !ok {
		return fmt.Errorf("%s: %w: %w", provider, common.ErrAuthenticationFailed, common.ErrProviderNotConfigured)
	}

	if err := m.acquire(ctx); err != nil {
		return fmt.Errorf("%s: %w: %w", provider, common.ErrAuthenticationFailed, err)
	}
	defer m.release()

	log := m.logger.With("provider", provider)
	log.Info(ctx, "sign-in started")

	claims, err := p.Authenticate(ctx)
	if err != nil {
		err = classify(provider, err)
		if errors.Is(err, common.ErrAuthenticationCancelled) {
			log.Info(ctx, "sign-in cancelled")
		} else {
			log.Warn(ctx, "sign-in failed", "error", err)
		}
		return err
	}
	if claims.ID == "" {
		err := fmt.Errorf("%s: %w: provider returned no user id", provider, common.ErrAuthenticationFailed)
		log.Warn(ctx, "sign-in failed", "error", err)
		return err
	}

	user := m.carryForward(ctx, log, models.User{
		ID:    claims.ID,
		Name:  claims.Name,
		Email: claims.Email,
		Photo: claims.Photo,
	})

	raw, err := encodeUser(user)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := m.store.Set(ctx, common.SessionStorageKey, raw); err != nil {
		log.Error(ctx, "failed to persist session", "error", err)
		return err
	}

	m.setUser(user)
	log.Info(ctx, "sign-in succeeded", "user_id", user.ID)
	return nil
}

// SignOut forgets the signed-in user. It always succeeds: a failed delete
// is logged and the in-memory session is cleared regardless. Cancellation
// of ctx does not interrupt it.
func (m *Manager) SignOut(ctx context.Context) error {
	ctx = context.WithoutCancel(ctx)

	m.slot <- struct{}{}
	defer m.release()

	prev := m.UserID()
	if err := m.store.Delete(ctx, common.SessionStorageKey); err != nil {
		m.logger.Error(ctx, "failed to delete stored session", "error", err)
	}

	m.setUser(models.EmptyUser)
	if prev != "" {
		m.logger.Info(ctx, "signed out", "user_id", prev)
	}
	return nil
}

func (m *Manager) restore(ctx context.Context) {
	user := models.EmptyUser
	defer func() {
		m.setState(State{User: user, Loading: false})
		close(m.restored)
		m.release()
	}()

	raw, found, err := m.store.Get(ctx, common.SessionStorageKey)
	if err != nil {
		m.restoreErr = err
		m.logger.Error(ctx, "failed to read stored session", "error", err)
		return
	}
	if !found {
		m.logger.Info(ctx, "no stored session")
		return
	}

	stored, err := decodeUser(raw)
	if err != nil {
		m.restoreErr = err
		m.logger.Warn(ctx, "discarding stored session", "error", err)
		if err := m.store.Delete(ctx, common.SessionStorageKey); err != nil {
			m.logger.Error(ctx, "failed to delete malformed session", "error", err)
		}
		return
	}

	user = stored
	m.logger.Info(ctx, "session restored", "user_id", user.ID)
}

// carryForward fills empty profile fields of u from the stored record of the
// same account. A failed read only costs the enrichment.
func (m *Manager) carryForward(ctx context.Context, log logging.Logger, u models.User) models.User {
	if u.Name != "" && u.Email != "" && u.Photo != "" {
		return u
	}

	raw, found, err := m.store.Get(ctx, common.SessionStorageKey)
	if err != nil {
		log.Warn(ctx, "failed to read stored session for profile", "error", err)
		return u
	}
	if !found {
		return u
	}
	prev, err := decodeUser(raw)
	if err != nil || prev.ID != u.ID {
		return u
	}

	if u.Name == "" {
		u.Name = prev.Name
	}
	if u.Email == "" {
		u.Email = prev.Email
	}
	if u.Photo == "" {
		u.Photo = prev.Photo
	}
	return u
}

func (m *Manager) acquire(ctx context.Context) error {
	select {
	case m.slot <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Manager) release() {
	<-m.slot
}

func (m *Manager) setUser(u models.User) {
	m.mu.RLock()
	next := m.state
	m.mu.RUnlock()

	next.User = u
	m.setState(next)
}

// setState stores next and notifies subscribers outside the lock when it
// differs from the current state.
func (m *Manager) setState(next State) {
	m.mu.Lock()
	if m.state == next {
		m.mu.Unlock()
		return
	}
	m.state = next
	subs := make([]func(State), len(m.subscribers))
	for i, s := range m.subscribers {
		subs[i] = s.fn
	}
	m.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
}

// classify keeps provider outcomes as they are and reports anything else as
// a failure.
func classify(provider string, err error) error {
	if errors.Is(err, common.ErrAuthenticationCancelled) || errors.Is(err, common.ErrAuthenticationFailed) {
		return err
	}
	return fmt.Errorf("%s: %w: %w", provider, common.ErrAuthenticationFailed, err)
}
