package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAPIKey(t *testing.T) {
	t.Run("key from environment", func(t *testing.T) {
		t.Setenv(APIKeyVar, "from-env")

		key, err := LoadAPIKey("")
		require.NoError(t, err)
		assert.Equal(t, "from-env", key)
	})

	t.Run("key from named env file", func(t *testing.T) {
		t.Setenv(APIKeyVar, "")
		os.Unsetenv(APIKeyVar)

		envFile := filepath.Join(t.TempDir(), "creds.env")
		require.NoError(t, os.WriteFile(envFile, []byte(APIKeyVar+"=from-file\n"), 0o600))

		key, err := LoadAPIKey(envFile)
		require.NoError(t, err)
		assert.Equal(t, "from-file", key)
	})

	t.Run("environment wins over env file", func(t *testing.T) {
		t.Setenv(APIKeyVar, "from-env")

		envFile := filepath.Join(t.TempDir(), "creds.env")
		require.NoError(t, os.WriteFile(envFile, []byte(APIKeyVar+"=from-file\n"), 0o600))

		key, err := LoadAPIKey(envFile)
		require.NoError(t, err)
		assert.Equal(t, "from-env", key)
	})

	t.Run("missing key is a fatal setup error", func(t *testing.T) {
		t.Setenv(APIKeyVar, "")
		os.Unsetenv(APIKeyVar)

		_, err := LoadAPIKey("")
		var missing *MissingCredentialError
		require.ErrorAs(t, err, &missing)
	})

	t.Run("named env file must exist", func(t *testing.T) {
		t.Setenv(APIKeyVar, "present")

		_, err := LoadAPIKey(filepath.Join(t.TempDir(), "absent.env"))
		var fileErr *EnvFileError
		require.ErrorAs(t, err, &fileErr)
	})
}
