package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gofinances/internal/client/oauth"
	"github.com/dmitrijs2005/gofinances/internal/common"
)

var providerLabels = map[string]string{
	oauth.ProviderGoogle: "Google",
	oauth.ProviderApple:  "Apple",
}

// Login signs in with the named provider under the configured timeout.
// Cancellation and failure are reported to the user and returned.
func (a *App) Login(ctx context.Context, provider string) error {
	label, ok := providerLabels[provider]
	if !ok {
		fmt.Fprintln(a.out, "Usage: login google|apple")
		return fmt.Errorf("unknown provider %q", provider)
	}

	if a.config != nil && a.config.AuthTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.config.AuthTimeout)
		defer cancel()
	}

	err := a.session.SignIn(ctx, provider)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, common.ErrAuthenticationCancelled):
		fmt.Fprintln(a.out, "Sign-in cancelled")
	default:
		a.logger.Error(ctx, "sign-in failed", "provider", provider, "error", err)
		fmt.Fprintf(a.out, "Could not connect with %s\n", label)
	}
	return err
}

// Logout signs the user out. It cannot fail.
func (a *App) Logout(ctx context.Context) error {
	return a.session.SignOut(ctx)
}

// WhoAmI prints the signed-in account.
func (a *App) WhoAmI(ctx context.Context) error {
	u := a.user()
	fmt.Fprintf(a.out, "Name:  %s\n", u.Name)
	fmt.Fprintf(a.out, "Email: %s\n", u.Email)
	fmt.Fprintf(a.out, "ID:    %s\n", u.ID)
	if u.Photo != "" {
		fmt.Fprintf(a.out, "Photo: %s\n", u.Photo)
	}
	return nil
}
