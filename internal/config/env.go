package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/CreativeBuilds/bittensor-key-recovery/substrate"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"
)

// Config contains all configuration parameters for the application.
// The Argon2i cost and salt are not here: they belong to the file format.
type Config struct {
	SS58Prefix uint16 `envconfig:"COLDKEY_SS58_PREFIX" default:"42"`
	ShowQR     bool   `envconfig:"COLDKEY_SHOW_QR" default:"false"`
	LogLevel   string `envconfig:"COLDKEY_LOG_LEVEL" default:"warning"`
	// Password lets scripts skip the prompt. Prefer the prompt.
	Password string `envconfig:"COLDKEY_PASSWORD"`
}

// cfg is the global configuration instance
var cfg *Config

// Init loads configuration from environment variables.
func Init() error {
	c := &Config{}
	if err := envconfig.Process("", c); err != nil {
		return fmt.Errorf("failed to process config: %w", err)
	}
	if err := substrate.ValidatePrefix(c.SS58Prefix); err != nil {
		return fmt.Errorf("invalid COLDKEY_SS58_PREFIX: %w", err)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid COLDKEY_LOG_LEVEL: %w", err)
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

// GetSS58Prefix returns the network prefix used to render addresses
func GetSS58Prefix() uint16 {
	return Get().SS58Prefix
}

// GetShowQR reports whether the derived address is also printed as a QR code
func GetShowQR() bool {
	return Get().ShowQR
}

// GetLogLevel returns the parsed logrus level
func GetLogLevel() logrus.Level {
	level, err := logrus.ParseLevel(Get().LogLevel)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}

// ReadPassword returns the keyfile password, from COLDKEY_PASSWORD when set,
// otherwise prompted on the terminal without echo.
// Caller must zero the returned slice after use for security.
func ReadPassword(prompt string) ([]byte, error) {
	if env := Get().Password; env != "" {
		return []byte(env), nil
	}
	return PromptForPassword(prompt)
}

// PromptForPassword prompts the user for the password in the terminal.
// The password is read without echoing (hidden input). When stdin is piped
// the prompt is read from /dev/tty instead.
func PromptForPassword(prompt string) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		tty, err := os.Open("/dev/tty")
		if err != nil {
			return nil, errors.New("stdin is not a terminal: run interactively or set COLDKEY_PASSWORD")
		}
		defer tty.Close()
		fd = int(tty.Fd())
	}

	fmt.Fprint(os.Stderr, prompt)
	defer fmt.Fprintln(os.Stderr)

	raw, err := term.ReadPassword(fd)
	if err != nil {
		return nil, fmt.Errorf("failed to read password: %w", err)
	}
	if len(raw) == 0 {
		return nil, errors.New("password cannot be empty")
	}

	return raw, nil
}
