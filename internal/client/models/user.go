package models

// User is an authenticated identity as persisted under the session key.
//
// The zero value is the sentinel for "nobody is signed in". Any User with a
// non-empty ID is fully constructed.
type User struct {
	// ID is the provider-supplied account identifier.
	ID string `json:"id"`
	// Name is a best-effort display name; may be empty.
	Name string `json:"name"`
	// Email may be empty for accounts from the native provider.
	Email string `json:"email"`
	// Photo is an avatar URL, omitted from the record when unknown.
	Photo string `json:"photo,omitempty"`
}

// EmptyUser is the unauthenticated sentinel.
var EmptyUser = User{}

// IsAuthenticated reports whether u is a real identity.
func (u User) IsAuthenticated() bool {
	return u.ID != ""
}

// DisplayName returns the best label available for u.
func (u User) DisplayName() string {
	switch {
	case u.Name != "":
		return u.Name
	case u.Email != "":
		return u.Email
	default:
		return u.ID
	}
}
