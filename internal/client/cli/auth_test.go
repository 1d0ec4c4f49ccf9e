package cli

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/gofinances/internal/client/models"
	"github.com/dmitrijs2005/gofinances/internal/client/session"
	"github.com/dmitrijs2005/gofinances/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_Success(t *testing.T) {
	fs := &fakeSession{signInUser: ana}
	a, _ := newTestApp(t, fs, &fakeLedger{}, "")

	require.NoError(t, a.Login(context.Background(), "google"))

	assert.Equal(t, "google", fs.provider)
	assert.True(t, fs.hasDeadline, "sign-in must run under the auth timeout")
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, "(Ana)", a.status())
}

func TestLogin_Cancelled(t *testing.T) {
	fs := &fakeSession{signInErr: fmt.Errorf("apple: %w", common.ErrAuthenticationCancelled)}
	a, out := newTestApp(t, fs, &fakeLedger{}, "")

	err := a.Login(context.Background(), "apple")

	assert.ErrorIs(t, err, common.ErrAuthenticationCancelled)
	assert.Equal(t, "Sign-in cancelled\n", out.String())
	assert.False(t, a.isLoggedIn())
}

func TestLogin_Failed(t *testing.T) {
	for provider, label := range map[string]string{"google": "Google", "apple": "Apple"} {
		t.Run(provider, func(t *testing.T) {
			fs := &fakeSession{signInErr: fmt.Errorf("%s: %w", provider, common.ErrAuthenticationFailed)}
			a, out := newTestApp(t, fs, &fakeLedger{}, "")

			err := a.Login(context.Background(), provider)

			assert.ErrorIs(t, err, common.ErrAuthenticationFailed)
			assert.Equal(t, "Could not connect with "+label+"\n", out.String())
		})
	}
}

func TestLogin_UnknownProvider(t *testing.T) {
	fs := &fakeSession{}
	a, out := newTestApp(t, fs, &fakeLedger{}, "")

	assert.Error(t, a.Login(context.Background(), "github"))
	assert.Empty(t, fs.provider)
	assert.Contains(t, out.String(), "Usage: login google|apple")
}

func TestLogout(t *testing.T) {
	fs := &fakeSession{state: session.State{User: ana}}
	a, _ := newTestApp(t, fs, &fakeLedger{}, "")

	require.NoError(t, a.Logout(context.Background()))

	assert.Equal(t, 1, fs.signOuts)
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, "(signed out)", a.status())
}

func TestWhoAmI(t *testing.T) {
	u := models.User{ID: "a-1", Name: "Ana", Email: "ana@x.com", Photo: "https://ui-avatars.com/api/?length=1&name=Ana"}
	a, out := newTestApp(t, &fakeSession{state: session.State{User: u}}, &fakeLedger{}, "")

	require.NoError(t, a.WhoAmI(context.Background()))

	assert.Contains(t, out.String(), "Name:  Ana")
	assert.Contains(t, out.String(), "Email: ana@x.com")
	assert.Contains(t, out.String(), "ID:    a-1")
	assert.Contains(t, out.String(), "Photo: https://ui-avatars.com/api/?length=1&name=Ana")
}
