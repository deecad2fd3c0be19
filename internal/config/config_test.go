package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/logicossoftware/go-dong"
	"github.com/logicossoftware/go-dong/internal/filecodec"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "category", cfg.MediaTypePolicy)
	assert.False(t, cfg.StrictBounds)
	assert.Equal(t, ".", cfg.Output.Dir)
	assert.Equal(t, "none", cfg.Output.Compression)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig(t *testing.T) {
	t.Run("load existing config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "dong.yaml")
		data := []byte(`
media_type_policy: non-empty
strict_bounds: true
limits:
  max_image_size: 1024
output:
  compression: zstd
`)
		require.NoError(t, os.WriteFile(path, data, 0o644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "non-empty", cfg.MediaTypePolicy)
		assert.True(t, cfg.StrictBounds)
		assert.Equal(t, uint32(1024), cfg.Limits.MaxImageSize)
		assert.Equal(t, uint32(0), cfg.Limits.MaxAudioSize)
		assert.Equal(t, ".", cfg.Output.Dir, "missing fields keep defaults")
		assert.Equal(t, filecodec.CompZSTD, cfg.Sink().Compression)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("limits: [unclosed"), 0o644))
		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("media_type_policy: lenient\n"), 0o644))
		_, err := LoadConfig(path)
		assert.ErrorContains(t, err, "media_type_policy")

		require.NoError(t, os.WriteFile(path, []byte("output:\n  compression: gzip\n"), 0o644))
		_, err = LoadConfig(path)
		assert.ErrorContains(t, err, "output.compression")
	})
}

func TestSaveConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dong.yaml")
	cfg := DefaultConfig()
	cfg.StrictBounds = true
	cfg.Output.Compression = "br"
	require.NoError(t, SaveConfig(cfg, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded Config
	require.NoError(t, yaml.Unmarshal(raw, &decoded))
	assert.Equal(t, *cfg, decoded)
}

func TestOptionsApplyToCodec(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MediaTypePolicy = "non-empty"
	cfg.StrictBounds = true
	cfg.Limits.MaxAudioSize = 2

	image := dong.BytesAsset("application/octet-stream", []byte{1})
	_, err := dong.Marshal(image, dong.BytesAsset("audio/mpeg", []byte{1, 2, 3}), cfg.WriteOptions()...)
	assert.ErrorIs(t, err, dong.ErrLimitExceeded, "policy relaxed but audio limit enforced")

	b, err := dong.Marshal(image, dong.BytesAsset("audio/mpeg", []byte{1, 2}), cfg.WriteOptions()...)
	require.NoError(t, err)
	_, err = dong.Unmarshal(b[:len(b)-1], cfg.ReadOptions()...)
	assert.ErrorIs(t, err, dong.ErrTruncated)
}

func TestMaxFileSize(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Limits = Limits{MaxImageSize: 10, MaxAudioSize: 20}
	assert.Equal(t, int64(dong.HeaderSize+30), cfg.MaxFileSize())
}
