package oauth

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gofinances/internal/common"
)

// Provider names.
const (
	ProviderGoogle = "google"
	ProviderApple  = "apple"
)

// Claims are the profile fields a provider vouches for. Empty Name, Email
// or Photo mean the provider did not share them.
type Claims struct {
	ID    string
	Name  string
	Email string
	Photo string
}

// Provider authenticates a user with one identity provider.
type Provider interface {
	Name() string
	Authenticate(ctx context.Context) (Claims, error)
}

func cancelled(provider string) error {
	return fmt.Errorf("%s: %w", provider, common.ErrAuthenticationCancelled)
}

func failed(provider string, cause error) error {
	return fmt.Errorf("%s: %w: %w", provider, common.ErrAuthenticationFailed, cause)
}

func failedf(provider string, format string, args ...any) error {
	return fmt.Errorf("%s: %w: %s", provider, common.ErrAuthenticationFailed, fmt.Sprintf(format, args...))
}
