package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestParseJSON(t *testing.T) {
	t.Run("overlays present keys", func(t *testing.T) {
		path := writeTempJSON(t, `{"server_addr":"keeper:9000","request_timeout":"10s","max_verification_failures":5}`)

		cfg := &Config{}
		cfg.LoadDefaults()
		require.NoError(t, parseJSON(cfg, []string{"-config", path}))

		assert.Equal(t, "keeper:9000", cfg.ServerAddr)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 5, cfg.MaxVerificationFailures)
		assert.Equal(t, "session.db", cfg.SessionDBPath)
		assert.Equal(t, 10, cfg.AccountMaxLength)
	})

	t.Run("no config flag leaves cfg untouched", func(t *testing.T) {
		cfg := &Config{ServerAddr: "defaults:1234"}
		require.NoError(t, parseJSON(cfg, nil))
		assert.Equal(t, "defaults:1234", cfg.ServerAddr)
	})

	t.Run("invalid json", func(t *testing.T) {
		path := writeTempJSON(t, `{ this is not valid json`)
		assert.Error(t, parseJSON(&Config{}, []string{"-c", path}))
	})

	t.Run("missing file", func(t *testing.T) {
		assert.Error(t, parseJSON(&Config{}, []string{"-c", filepath.Join(t.TempDir(), "nope.json")}))
	})
}
