package oauth

import (
	"context"
	"errors"
	"net/url"
	"strings"
)

// Scope is a piece of profile data requested from the native provider.
type Scope string

const (
	ScopeFullName Scope = "full_name"
	ScopeEmail    Scope = "email"
)

// ErrCredentialCancelled is returned by a CredentialRequester when the user
// dismisses the request.
var ErrCredentialCancelled = errors.New("credential request cancelled")

// FullName is the name the platform shares, only on the first
// authorization per device.
type FullName struct {
	GivenName  string
	FamilyName string
}

// Credential is what the platform returns. FullName and Email are absent on
// repeat authorizations.
type Credential struct {
	User          string
	FullName      *FullName
	Email         string
	IdentityToken string
}

// CredentialRequester asks the platform for a credential.
type CredentialRequester interface {
	RequestCredential(ctx context.Context, scopes []Scope) (*Credential, error)
}

// AppleProvider signs users in with the native Apple credential flow.
type AppleProvider struct {
	requester CredentialRequester
	avatarURL string
}

// NewAppleProvider returns a provider. avatarURL is the base of synthesized
// avatar links; when empty no photo is produced.
func NewAppleProvider(requester CredentialRequester, avatarURL string) *AppleProvider {
	return &AppleProvider{requester: requester, avatarURL: avatarURL}
}

func (p *AppleProvider) Name() string { return ProviderApple }

// Authenticate requests a credential with full name and email scopes. Name,
// Email and Photo stay empty when the platform withholds the profile.
func (p *AppleProvider) Authenticate(ctx context.Context) (Claims, error) {
	cred, err := p.requester.RequestCredential(ctx, []Scope{ScopeFullName, ScopeEmail})
	if errors.Is(err, ErrCredentialCancelled) {
		return Claims{}, cancelled(ProviderApple)
	}
	if err != nil {
		return Claims{}, failed(ProviderApple, err)
	}
	if cred == nil {
		return Claims{}, failedf(ProviderApple, "empty credential")
	}

	id := strings.TrimSpace(cred.User)
	if id == "" && cred.IdentityToken != "" {
		tc, err := ParseIdentityToken(cred.IdentityToken)
		if err != nil {
			return Claims{}, failed(ProviderApple, err)
		}
		id = tc.Subject
	}
	if id == "" {
		return Claims{}, failedf(ProviderApple, "credential has no user identifier")
	}

	claims := Claims{ID: id, Email: strings.TrimSpace(cred.Email)}
	if cred.FullName != nil {
		claims.Name = strings.TrimSpace(cred.FullName.GivenName)
	}
	if claims.Name != "" {
		claims.Photo = p.avatar(claims.Name)
	}
	return claims, nil
}

func (p *AppleProvider) avatar(givenName string) string {
	if p.avatarURL == "" {
		return ""
	}
	u, err := url.Parse(p.avatarURL)
	if err != nil {
		return ""
	}
	q := u.Query()
	q.Set("name", givenName)
	q.Set("length", "1")
	u.RawQuery = q.Encode()
	return u.String()
}
