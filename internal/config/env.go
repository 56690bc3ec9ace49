package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// Secrets (passphrases, backup passwords) are never read from the environment,
// use PromptSecret.
type Config struct {
	Port                string        `envconfig:"PORT" default:"8080"`
	BaseURL             string        `envconfig:"BASE_URL" required:"true"`
	ServerPublicKeyPath string        `envconfig:"SERVER_PUBLIC_KEY_PATH"`
	RequestTimeout      time.Duration `envconfig:"REQUEST_TIMEOUT" default:"15s"`
	Network             string        `envconfig:"NETWORK" default:"mainnet"`
	LogLevel            string        `envconfig:"LOG_LEVEL" default:"info"`
	CoinGeckoURL        string        `envconfig:"COINGECKO_URL" default:"https://api.coingecko.com/api/v3"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if c.BaseURL == "" {
		return errors.New("BASE_URL cannot be empty")
	}
	if c.RequestTimeout <= 0 {
		return errors.New("REQUEST_TIMEOUT must be positive")
	}
	cfg = c
	return nil
}

// Get returns the global configuration instance.
// Panics if Init() was not called.
func Get() *Config {
	if cfg == nil {
		panic("config not initialized, call Init() first")
	}
	return cfg
}

// GetPort returns port from configuration
func GetPort() string {
	return Get().Port
}

// GetBaseURL returns the wallet backend URL from configuration
func GetBaseURL() string {
	return Get().BaseURL
}

// GetServerPublicKeyPath returns path to the backend public key, empty if content is sent unencrypted
func GetServerPublicKeyPath() string {
	return Get().ServerPublicKeyPath
}

// GetNetwork returns the Cardano network the backend runs on
func GetNetwork() string {
	return Get().Network
}

// GetRequestTimeout returns timeout for a single backend request
func GetRequestTimeout() time.Duration {
	return Get().RequestTimeout
}

// PromptSecret prompts the user for a secret in the terminal.
// The input is read without echoing. Caller must zero the returned slice after use.
func PromptSecret(label string) ([]byte, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, errors.New("stdin is not a terminal: run the command interactively to enter secrets")
	}
	fmt.Fprintf(os.Stderr, "%s: ", label)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", label, err)
	}
	if len(raw) == 0 {
		clear(raw)
		return nil, fmt.Errorf("%s cannot be empty", label)
	}
	return raw, nil
}
