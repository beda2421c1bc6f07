package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadEnvFile(t *testing.T) {
	t.Parallel()

	t.Run("reads values with upper-case keys", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(path, []byte("GOOGLE_API_KEY=abc123\nASKD_MODEL=\"gemini-2.0-flash\"\n"), 0o600))

		values, err := readEnvFile(path)

		require.NoError(t, err)
		assert.Equal(t, "abc123", values["GOOGLE_API_KEY"])
		assert.Equal(t, "gemini-2.0-flash", values["ASKD_MODEL"])
	})

	t.Run("missing file yields nothing", func(t *testing.T) {
		t.Parallel()

		values, err := readEnvFile(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		assert.Empty(t, values)
	})

	t.Run("empty path yields nothing", func(t *testing.T) {
		t.Parallel()

		values, err := readEnvFile("")

		require.NoError(t, err)
		assert.Empty(t, values)
	})
}

func TestLoadEnvFile_DoesNotOverrideEnvironment(t *testing.T) {
	t.Setenv("ASKD_TEST_EXISTING", "keep")
	require.NoError(t, os.Unsetenv("ASKD_TEST_NEW"))
	t.Cleanup(func() { _ = os.Unsetenv("ASKD_TEST_NEW") })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ASKD_TEST_EXISTING=override\nASKD_TEST_NEW=loaded\n"), 0o600))

	require.NoError(t, loadEnvFile(path))

	assert.Equal(t, "keep", os.Getenv("ASKD_TEST_EXISTING"))
	assert.Equal(t, "loaded", os.Getenv("ASKD_TEST_NEW"))
}
