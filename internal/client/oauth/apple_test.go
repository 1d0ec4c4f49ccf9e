package oauth

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/gofinances/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRequester struct {
	cred   *Credential
	err    error
	scopes []Scope
}

func (f *fakeRequester) RequestCredential(_ context.Context, scopes []Scope) (*Credential, error) {
	f.scopes = scopes
	return f.cred, f.err
}

const testAvatarURL = "https://ui-avatars.com/api/"

func TestAppleProvider_FirstAuthorization(t *testing.T) {
	req := &fakeRequester{cred: &Credential{
		User:     "a-1",
		FullName: &FullName{GivenName: "Ana", FamilyName: "Silva"},
		Email:    "ana@x.com",
	}}

	claims, err := NewAppleProvider(req, testAvatarURL).Authenticate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "a-1", claims.ID)
	assert.Equal(t, "Ana", claims.Name)
	assert.Equal(t, "ana@x.com", claims.Email)
	assert.Equal(t, "https://ui-avatars.com/api/?length=1&name=Ana", claims.Photo)
	assert.Equal(t, []Scope{ScopeFullName, ScopeEmail}, req.scopes)
}

func TestAppleProvider_RepeatAuthorizationWithholdsProfile(t *testing.T) {
	req := &fakeRequester{cred: &Credential{User: "a-1"}}

	claims, err := NewAppleProvider(req, testAvatarURL).Authenticate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, Claims{ID: "a-1"}, claims)
}

func TestAppleProvider_PhotoEncodesName(t *testing.T) {
	req := &fakeRequester{cred: &Credential{User: "a-1", FullName: &FullName{GivenName: "José Maria"}}}

	claims, err := NewAppleProvider(req, testAvatarURL).Authenticate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "https://ui-avatars.com/api/?length=1&name=Jos%C3%A9+Maria", claims.Photo)
}

func TestAppleProvider_NoAvatarBase(t *testing.T) {
	req := &fakeRequester{cred: &Credential{User: "a-1", FullName: &FullName{GivenName: "Ana"}}}

	claims, err := NewAppleProvider(req, "").Authenticate(context.Background())
	require.NoError(t, err)
	assert.Empty(t, claims.Photo)
}

func TestAppleProvider_IDFromIdentityToken(t *testing.T) {
	tok := signedToken(t, IdentityClaims{RegisteredClaims: jwt.RegisteredClaims{Subject: "sub-9"}})
	req := &fakeRequester{cred: &Credential{IdentityToken: tok}}

	claims, err := NewAppleProvider(req, testAvatarURL).Authenticate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sub-9", claims.ID)
}

func TestAppleProvider_Cancelled(t *testing.T) {
	req := &fakeRequester{err: ErrCredentialCancelled}

	_, err := NewAppleProvider(req, testAvatarURL).Authenticate(context.Background())
	assert.ErrorIs(t, err, common.ErrAuthenticationCancelled)
	assert.NotErrorIs(t, err, common.ErrAuthenticationFailed)
}

func TestAppleProvider_Failures(t *testing.T) {
	tests := []struct {
		name string
		req  *fakeRequester
	}{
		{"requester error", &fakeRequester{err: errors.New("platform unavailable")}},
		{"nil credential", &fakeRequester{}},
		{"empty user", &fakeRequester{cred: &Credential{User: "  "}}},
		{"bad identity token", &fakeRequester{cred: &Credential{IdentityToken: "garbage"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewAppleProvider(tt.req, testAvatarURL).Authenticate(context.Background())
			assert.ErrorIs(t, err, common.ErrAuthenticationFailed)
		})
	}
}
