// Package env loads the generation-service credential from the process
// environment, optionally seeding it from a dotenv file first.
package env

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// APIKeyVar is the environment variable holding the Gemini API key.
const APIKeyVar = "GEMINI_API_KEY"

// MissingCredentialError is returned when no API key can be found.
// It is a fatal setup error: the run must not start without a credential.
type MissingCredentialError struct {
	Var string
}

func (e *MissingCredentialError) Error() string {
	return fmt.Sprintf("%s is not set in the environment or env file", e.Var)
}

// EnvFileError is returned when an explicitly named env file cannot be loaded.
type EnvFileError struct {
	Path  string
	Cause error
}

func (e *EnvFileError) Error() string {
	return fmt.Sprintf("failed to load env file %s: %v", e.Path, e.Cause)
}

func (e *EnvFileError) Unwrap() error { return e.Cause }

// LoadAPIKey returns the Gemini API key. If envFile is non-empty it is loaded
// first and must exist; otherwise a .env file in the working directory is
// loaded on a best-effort basis. Values already present in the environment
// take precedence (godotenv does not overwrite existing variables).
func LoadAPIKey(envFile string) (string, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return "", &EnvFileError{Path: envFile, Cause: err}
		}
	} else {
		// Default .env is optional.
		_ = godotenv.Load()
	}

	key := os.Getenv(APIKeyVar)
	if key == "" {
		return "", &MissingCredentialError{Var: APIKeyVar}
	}
	return key, nil
}
