package session

import (
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/gofinances/internal/client/models"
	"github.com/dmitrijs2005/gofinances/internal/common"
)

// State is the session as seen by consumers.
//
// Loading is true only while the persisted session is being restored at
// startup. It never becomes true again.
type State struct {
	User    models.User
	Loading bool
}

func encodeUser(u models.User) (string, error) {
	b, err := json.Marshal(u)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeUser(raw string) (models.User, error) {
	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		return models.EmptyUser, fmt.Errorf("%w: %w", common.ErrMalformedSessionRecord, err)
	}
	if u.ID == "" {
		return models.EmptyUser, fmt.Errorf("%w: record has no id", common.ErrMalformedSessionRecord)
	}
	return u, nil
}
