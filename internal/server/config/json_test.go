package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"endpoint_addr":           ":6000",
		"database_dsn":            "postgres://rf:rf@db:5432/roadfleet",
		"secret_key":              "my_secret_key",
		"token_validity_duration": "6h",
		"s3_region":               "eu-west-1",
		"s3_base_endpoint":        "http://minio:9000",
		"s3_bucket":               "images",
		"s3_access_key":           "access",
		"s3_secret_key":           "secret",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, ":6000", cfg.EndpointAddr)
		assert.Equal(t, "postgres://rf:rf@db:5432/roadfleet", cfg.DatabaseDSN)
		assert.Equal(t, "my_secret_key", cfg.SecretKey)
		assert.Equal(t, 6*time.Hour, cfg.TokenValidityDuration)
		assert.Equal(t, "eu-west-1", cfg.S3Region)
		assert.Equal(t, "http://minio:9000", cfg.S3BaseEndpoint)
		assert.Equal(t, "images", cfg.S3Bucket)
		assert.Equal(t, "access", cfg.S3AccessKey)
		assert.Equal(t, "secret", cfg.S3SecretKey)
	})

	t.Run("no config flag leaves values untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			EndpointAddr:          ":7000",
			DatabaseDSN:           "postgres://keep",
			SecretKey:             "keep",
			TokenValidityDuration: 2 * time.Hour,
		}
		parseJson(cfg)

		assert.Equal(t, ":7000", cfg.EndpointAddr)
		assert.Equal(t, "postgres://keep", cfg.DatabaseDSN)
		assert.Equal(t, "keep", cfg.SecretKey)
		assert.Equal(t, 2*time.Hour, cfg.TokenValidityDuration)
	})

	t.Run("missing json fields keep defaults", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"secret_key": "only_this",
		})
		os.Args = []string{"testbin", "-config", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "only_this", cfg.SecretKey)
		assert.Equal(t, ":5000", cfg.EndpointAddr)
		assert.Equal(t, 12*time.Hour, cfg.TokenValidityDuration)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
