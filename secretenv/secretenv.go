// Package secretenv loads secrets from environment variables directly into
// secretbox containers, so raw values never sit in plain configuration
// structs.
package secretenv

import (
	"encoding/base64"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/allisson/go-env"
	"github.com/joho/godotenv"

	"github.com/allisson/secretbox"
)

// Errors returned by the loaders. Test with errors.Is.
var (
	// ErrNotSet indicates a required environment variable is missing or empty.
	ErrNotSet = errors.New("environment variable not set")

	// ErrInvalidBase64 indicates a binary secret variable does not contain
	// valid standard base64.
	ErrInvalidBase64 = errors.New("invalid base64 value")
)

// Load searches for a .env file from the current directory up to the root
// directory and loads it into the process environment if found. Missing files
// are not an error; production environments usually configure the process
// directly.
func Load() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}

// String reads a text secret from the environment, falling back to fallback
// when the variable is unset, and moves it into a container.
func String(name, fallback string) *secretbox.String {
	return secretbox.FromString(env.GetString(name, fallback))
}

// Required reads a text secret from the environment and moves it into a
// container. It returns ErrNotSet when the variable is missing or empty, so
// misconfiguration is caught at startup rather than at first use.
func Required(name string) (*secretbox.String, error) {
	value := os.Getenv(name)
	if value == "" {
		return nil, fmt.Errorf("%w: %s", ErrNotSet, name)
	}
	return secretbox.FromString(value), nil
}

// Bytes reads a standard-base64-encoded binary secret from the environment
// and moves the decoded bytes into a container. The decoded buffer goes
// straight into the container; nothing is retained on error paths.
func Bytes(name string) (*secretbox.Bytes, error) {
	raw := os.Getenv(name)
	if raw == "" {
		return nil, fmt.Errorf("%w: %s", ErrNotSet, name)
	}
	decoded, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w for %s: %v", ErrInvalidBase64, name, err)
	}
	return secretbox.FromBytes(decoded), nil
}
