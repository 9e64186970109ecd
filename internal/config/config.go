// Package config loads startup configuration. Everything behavioral, dev
// request logging included, is an explicit flag here rather than an implicit
// environment sniff, so behavior stays deterministic in tests and CI.
package config

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config is the full startup configuration, shared by the CLI client and the
// development server binary.
type Config struct {
	// BaseURL is the backend API base address.
	BaseURL string `mapstructure:"base_url"`
	// DevLogging turns on per-request debug logging in the gateway.
	DevLogging bool `mapstructure:"dev_logging"`
	// ListenAddr is where the development server binds.
	ListenAddr string `mapstructure:"listen_addr"`
	// CompleteProfileURL is where the simulated GitHub handoff redirects,
	// carrying the signup token as a query parameter.
	CompleteProfileURL string `mapstructure:"complete_profile_url"`
	// SignupTokenSecret signs the development server's signup tokens.
	SignupTokenSecret string `mapstructure:"signup_token_secret"`
}

// Load reads config.yaml (working directory or parent) and the environment.
func Load() (Config, error) {
	viper.SetDefault("base_url", "http://localhost:3000/api")
	viper.SetDefault("dev_logging", false)
	viper.SetDefault("listen_addr", ":3000")
	viper.SetDefault("complete_profile_url", "http://localhost:5173/complete-profile")
	viper.SetDefault("signup_token_secret", "dev-only-signup-secret")

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	_ = viper.ReadInConfig()

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	_ = viper.BindEnv("base_url", "GITPULSE_BASE_URL")
	_ = viper.BindEnv("dev_logging", "GITPULSE_DEV_LOGGING")
	_ = viper.BindEnv("listen_addr", "GITPULSE_LISTEN_ADDR")
	_ = viper.BindEnv("complete_profile_url", "GITPULSE_COMPLETE_PROFILE_URL")
	_ = viper.BindEnv("signup_token_secret", "GITPULSE_SIGNUP_TOKEN_SECRET")

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "[config.Load] unmarshal")
	}
	if c.BaseURL == "" {
		return Config{}, errors.New("[config.Load] base_url is required")
	}
	return c, nil
}
