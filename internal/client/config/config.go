package config

import "time"

const (
	DefaultGoogleAuthURL     = "https://accounts.google.com/o/oauth2/v2/auth"
	DefaultGoogleUserInfoURL = "https://www.googleapis.com/oauth2/v1/userinfo"
	DefaultAvatarURL         = "https://ui-avatars.com/api/"
)

// Config holds runtime settings for the GoFinances CLI.
type Config struct {
	DatabasePath string `env:"GOFINANCES_DATABASE_PATH"`

	GoogleClientID    string   `env:"GOFINANCES_GOOGLE_CLIENT_ID"`
	GoogleRedirectURI string   `env:"GOFINANCES_GOOGLE_REDIRECT_URI"`
	GoogleAuthURL     string   `env:"GOFINANCES_GOOGLE_AUTH_URL"`
	GoogleUserInfoURL string   `env:"GOFINANCES_GOOGLE_USERINFO_URL"`
	GoogleScopes      []string `env:"GOFINANCES_GOOGLE_SCOPES" envSeparator:","`

	// AvatarURL is the base of synthesized avatar links for accounts that
	// carry no picture.
	AvatarURL string `env:"GOFINANCES_AVATAR_URL"`

	// AuthTimeout bounds a whole interactive sign-in, which otherwise has
	// no natural upper limit.
	AuthTimeout time.Duration `env:"GOFINANCES_AUTH_TIMEOUT"`

	LogLevel string `env:"GOFINANCES_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabasePath = "gofinances.db"
	c.GoogleAuthURL = DefaultGoogleAuthURL
	c.GoogleUserInfoURL = DefaultGoogleUserInfoURL
	c.GoogleScopes = []string{"profile", "email"}
	c.AvatarURL = DefaultAvatarURL
	c.AuthTimeout = 5 * time.Minute
	c.LogLevel = "info"
}

// LoadConfig constructs a Config from defaults, then overlays the JSON file,
// environment and command-line flags, in that order.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	if err := parseEnv(cfg); err != nil {
		panic(err)
	}
	parseFlags(cfg)
	return cfg
}
