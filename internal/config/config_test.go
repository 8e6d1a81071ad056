package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 10, cfg.MaxUploadMB)
	assert.Equal(t, 0.4, cfg.HardWeight)
	assert.Equal(t, 0.6, cfg.SemanticWeight)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"port": 9090,
		"max_upload_mb": 5,
		"embedding_model": "text-embedding-004"
	}`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 5, cfg.MaxUploadMB)
	assert.Equal(t, "text-embedding-004", cfg.EmbeddingModel)
	// untouched fields keep their defaults
	assert.Equal(t, 0.4, cfg.HardWeight)
	assert.Equal(t, int64(5)<<20, cfg.MaxUploadBytes())
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 9090}`), 0o644))

	t.Setenv("PORT", "7070")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("DATABASE_URL", "postgres://localhost/matcher")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, "postgres://localhost/matcher", cfg.DatabaseURL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Run("Port out of range", func(t *testing.T) {
		cfg := Default()
		cfg.Port = 70000
		assert.Error(t, cfg.Validate())
	})

	t.Run("Weights exceeding 1", func(t *testing.T) {
		cfg := Default()
		cfg.HardWeight = 0.8
		cfg.SemanticWeight = 0.8
		assert.Error(t, cfg.Validate())
	})

	t.Run("Missing taxonomy file", func(t *testing.T) {
		cfg := Default()
		cfg.TaxonomyPath = "/does/not/exist.json"
		assert.Error(t, cfg.Validate())
	})
}

func TestWeights(t *testing.T) {
	cfg := Default()
	w := cfg.Weights()
	assert.Equal(t, 0.4, w.Hard)
	assert.Equal(t, 0.6, w.Semantic)

	cfg.HardWeight = 0.7
	cfg.SemanticWeight = 0.3
	w = cfg.Weights()
	assert.Equal(t, 0.7, w.Hard)
	assert.Equal(t, 0.3, w.Semantic)
}
