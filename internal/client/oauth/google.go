package oauth

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/gofinances/internal/common"
	"github.com/dmitrijs2005/gofinances/internal/netx"
	"golang.org/x/oauth2"
)

// Outcome is the tagged result of an interactive browser flow.
type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeCancel  Outcome = "cancel"
	OutcomeDismiss Outcome = "dismiss"
	OutcomeError   Outcome = "error"
)

// AuthResult is what the browser hands back after the redirect. On success
// Params carries access_token; on error it carries error and, sometimes,
// error_description.
type AuthResult struct {
	Type   Outcome
	Params url.Values
}

// BrowserFlow drives the user through the provider's authorization page.
// It may take as long as the user needs.
type BrowserFlow interface {
	StartAuth(ctx context.Context, authURL string) (AuthResult, error)
}

// GoogleConfig holds the client registration and endpoints.
type GoogleConfig struct {
	ClientID    string
	RedirectURI string
	AuthURL     string
	UserInfoURL string
	Scopes      []string
}

// GoogleProvider signs users in with Google's implicit grant.
type GoogleProvider struct {
	config     GoogleConfig
	flow       BrowserFlow
	httpClient *http.Client
	newState   func() (string, error)
}

// NewGoogleProvider returns a provider using flow for the interactive step
// and httpClient (http.DefaultClient when nil) for the claims fetch.
func NewGoogleProvider(cfg GoogleConfig, flow BrowserFlow, httpClient *http.Client) *GoogleProvider {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &GoogleProvider{
		config:     cfg,
		flow:       flow,
		httpClient: httpClient,
		newState:   func() (string, error) { return common.MakeRandHexString(16) },
	}
}

func (p *GoogleProvider) Name() string { return ProviderGoogle }

// AuthURL builds the authorization URL for an implicit grant.
func (p *GoogleProvider) AuthURL(state string) string {
	oc := &oauth2.Config{
		ClientID:    p.config.ClientID,
		RedirectURL: p.config.RedirectURI,
		Scopes:      p.config.Scopes,
		Endpoint:    oauth2.Endpoint{AuthURL: p.config.AuthURL},
	}
	return oc.AuthCodeURL(state, oauth2.SetAuthURLParam("response_type", "token"))
}

// Authenticate runs the browser flow and, on success, fetches the user's
// claims with the returned access token.
func (p *GoogleProvider) Authenticate(ctx context.Context) (Claims, error) {
	if p.config.ClientID == "" || p.config.RedirectURI == "" {
		return Claims{}, failed(ProviderGoogle, common.ErrProviderNotConfigured)
	}

	state, err := p.newState()
	if err != nil {
		return Claims{}, failed(ProviderGoogle, err)
	}

	res, err := p.flow.StartAuth(ctx, p.AuthURL(state))
	if err != nil {
		return Claims{}, failed(ProviderGoogle, err)
	}

	switch res.Type {
	case OutcomeSuccess:
	case OutcomeCancel, OutcomeDismiss:
		return Claims{}, cancelled(ProviderGoogle)
	default:
		code := res.Params.Get("error")
		if code == "access_denied" {
			return Claims{}, cancelled(ProviderGoogle)
		}
		if code == "" {
			return Claims{}, failedf(ProviderGoogle, "authorization response carried no token")
		}
		if desc := res.Params.Get("error_description"); desc != "" {
			return Claims{}, failedf(ProviderGoogle, "%s: %s", code, desc)
		}
		return Claims{}, failedf(ProviderGoogle, "%s", code)
	}

	if res.Params.Get("state") != state {
		return Claims{}, failedf(ProviderGoogle, "state mismatch")
	}

	token := res.Params.Get("access_token")
	if token == "" {
		return Claims{}, failedf(ProviderGoogle, "missing access token")
	}

	return p.fetchClaims(ctx, token)
}

func (p *GoogleProvider) fetchClaims(ctx context.Context, accessToken string) (Claims, error) {
	u, err := url.Parse(p.config.UserInfoURL)
	if err != nil {
		return Claims{}, failed(ProviderGoogle, err)
	}
	q := u.Query()
	q.Set("alt", "json")
	q.Set("access_token", accessToken)
	u.RawQuery = q.Encode()

	var payload struct {
		ID        string `json:"id"`
		GivenName string `json:"given_name"`
		Email     string `json:"email"`
		Picture   string `json:"picture"`
	}
	if err := netx.GetJSON(ctx, p.httpClient, u.String(), &payload); err != nil {
		return Claims{}, failed(ProviderGoogle, fmt.Errorf("userinfo: %w", err))
	}
	if payload.ID == "" {
		return Claims{}, failedf(ProviderGoogle, "userinfo response has no id")
	}
	if payload.Email == "" {
		return Claims{}, failedf(ProviderGoogle, "userinfo response has no email")
	}

	return Claims{
		ID:    payload.ID,
		Name:  payload.GivenName,
		Email: payload.Email,
		Photo: payload.Picture,
	}, nil
}
