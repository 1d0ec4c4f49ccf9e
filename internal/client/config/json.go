package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gofinances/internal/flagx"
	"github.com/dmitrijs2005/gofinances/internal/timex"
)

// JsonConfig is the on-disk shape of the configuration file. Absent keys
// leave the corresponding Config field untouched.
type JsonConfig struct {
	DatabasePath      string          `json:"database_path"`
	GoogleClientID    string          `json:"google_client_id"`
	GoogleRedirectURI string          `json:"google_redirect_uri"`
	GoogleAuthURL     string          `json:"google_auth_url"`
	GoogleUserInfoURL string          `json:"google_userinfo_url"`
	GoogleScopes      []string        `json:"google_scopes"`
	AvatarURL         string          `json:"avatar_url"`
	AuthTimeout       *timex.Duration `json:"auth_timeout"`
	LogLevel          string          `json:"log_level"`
}

// parseJson overlays cfg with the file named by -c/-config. It panics when
// the file cannot be read or decoded.
func parseJson(cfg *Config) {
	path := flagx.JsonConfigFlags()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	overlay(&cfg.DatabasePath, jc.DatabasePath)
	overlay(&cfg.GoogleClientID, jc.GoogleClientID)
	overlay(&cfg.GoogleRedirectURI, jc.GoogleRedirectURI)
	overlay(&cfg.GoogleAuthURL, jc.GoogleAuthURL)
	overlay(&cfg.GoogleUserInfoURL, jc.GoogleUserInfoURL)
	overlay(&cfg.AvatarURL, jc.AvatarURL)
	overlay(&cfg.LogLevel, jc.LogLevel)
	if len(jc.GoogleScopes) > 0 {
		cfg.GoogleScopes = jc.GoogleScopes
	}
	if jc.AuthTimeout != nil {
		cfg.AuthTimeout = jc.AuthTimeout.Duration
	}
}

func overlay(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
