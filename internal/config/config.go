// Package config centralizes the deployment knobs of the client. Values
// come from defaults, an optional .env file and TITULACION_* environment
// variables, in increasing precedence.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "TITULACION"

// Config holds the resolved configuration.
type Config struct {
	AppName string

	// BaseURL roots every backend call.
	BaseURL string

	// InstitutionalDomain is the email / hosted domain required for
	// login and registration. Deployment configuration, not business
	// logic.
	InstitutionalDomain string

	// StateDir is where the session is persisted across restarts.
	StateDir string

	// GoogleClientID identifies the client to the identity provider for
	// the verified credential flow. Empty disables verification.
	GoogleClientID string

	ToastTimeout        time.Duration
	AuthRedirectDelay   time.Duration
	SubmitRedirectDelay time.Duration

	Debug bool
}

// New loads the configuration. A .env in the working directory is honored
// when present and silently skipped when not.
func New() *Config {
	v := viper.New()
	v.SetDefault("appName", "Titulacion")
	v.SetDefault("baseURL", "https://titulacion-back.abimaelfv.site")
	v.SetDefault("institutionalDomain", "udh.edu.pe")
	v.SetDefault("stateDir", defaultStateDir())
	v.SetDefault("googleClientID", "")
	v.SetDefault("toastTimeout", 5*time.Second)
	v.SetDefault("authRedirectDelay", 500*time.Millisecond)
	v.SetDefault("submitRedirectDelay", 1500*time.Millisecond)
	v.SetDefault("debug", false)

	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	return &Config{
		AppName:             v.GetString("appName"),
		BaseURL:             v.GetString("baseURL"),
		InstitutionalDomain: v.GetString("institutionalDomain"),
		StateDir:            v.GetString("stateDir"),
		GoogleClientID:      v.GetString("googleClientID"),
		ToastTimeout:        v.GetDuration("toastTimeout"),
		AuthRedirectDelay:   v.GetDuration("authRedirectDelay"),
		SubmitRedirectDelay: v.GetDuration("submitRedirectDelay"),
		Debug:               v.GetBool("debug"),
	}
}

func defaultStateDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ".titulacion"
	}
	return filepath.Join(base, "titulacion")
}
