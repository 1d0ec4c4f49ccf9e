package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/gofinances/internal/client/models"
	"github.com/dmitrijs2005/gofinances/internal/client/storage"
	"github.com/dmitrijs2005/gofinances/internal/common"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ErrCorruptLedger means the stored transaction list could not be decoded.
var ErrCorruptLedger = errors.New("corrupt ledger record")

// Accessor appends and lists transactions per user.
type Accessor struct {
	store    storage.AtomicStore
	validate *validator.Validate
	now      func() time.Time
	newID    func() string
}

func NewAccessor(store storage.AtomicStore) *Accessor {
	return &Accessor{
		store:    store,
		validate: newValidator(),
		now:      time.Now,
		newID:    uuid.NewString,
	}
}

// Append validates tx, gives it a fresh id (and the current time when Date
// is zero) and adds it to the user's list in one atomic update.
func (a *Accessor) Append(ctx context.Context, userID string, tx models.Transaction) (models.Transaction, error) {
	if userID == "" {
		return models.Transaction{}, common.ErrNoUser
	}

	tx.Name = strings.TrimSpace(tx.Name)
	if err := a.validate.StructCtx(ctx, tx); err != nil {
		return models.Transaction{}, validationError(err)
	}

	tx.ID = a.newID()
	if tx.Date.IsZero() {
		tx.Date = a.now()
	}

	err := a.store.Update(ctx, common.TransactionsKey(userID), func(current string, found bool) (string, error) {
		list, err := decodeList(current, found)
		if err != nil {
			return "", err
		}
		b, err := json.Marshal(append(list, tx))
		if err != nil {
			return "", err
		}
		return string(b), nil
	})
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to append transaction: %w", err)
	}

	return tx, nil
}

// List returns the user's transactions in insertion order. An absent key
// yields an empty list.
func (a *Accessor) List(ctx context.Context, userID string) ([]models.Transaction, error) {
	if userID == "" {
		return nil, common.ErrNoUser
	}

	raw, found, err := a.store.Get(ctx, common.TransactionsKey(userID))
	if err != nil {
		return nil, err
	}
	return decodeList(raw, found)
}

func decodeList(raw string, found bool) ([]models.Transaction, error) {
	list := []models.Transaction{}
	if !found || raw == "" {
		return list, nil
	}
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptLedger, err)
	}
	if list == nil {
		list = []models.Transaction{}
	}
	return list, nil
}
