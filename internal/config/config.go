// Package config loads the YAML configuration of the dong command.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/logicossoftware/go-dong"
	"github.com/logicossoftware/go-dong/internal/filecodec"
)

// Config represents the dong tool configuration
type Config struct {
	MediaTypePolicy string `yaml:"media_type_policy"`
	StrictBounds    bool   `yaml:"strict_bounds"`
	Limits          Limits `yaml:"limits"`
	Output          Output `yaml:"output"`
}

// Limits mirrors dong.Limits. Zero means the library default.
type Limits struct {
	MaxImageSize uint32 `yaml:"max_image_size"`
	MaxAudioSize uint32 `yaml:"max_audio_size"`
}

// Output controls where pack and unpack save files
type Output struct {
	Dir         string `yaml:"dir"`
	Compression string `yaml:"compression"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		MediaTypePolicy: dong.PolicyCategory.String(),
		Output: Output{
			Dir:         ".",
			Compression: filecodec.CompNone.String(),
		},
	}
}

// LoadConfig loads configuration from path. Fields missing from the file
// keep their defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SaveConfig writes cfg to path as YAML.
func SaveConfig(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	if _, err := dong.ParseMediaTypePolicy(c.MediaTypePolicy); err != nil {
		return fmt.Errorf("invalid media_type_policy: %w", err)
	}
	if _, err := filecodec.ParseCompression(c.Output.Compression); err != nil {
		return fmt.Errorf("invalid output.compression: %w", err)
	}
	return nil
}

func (c *Config) limits() dong.Limits {
	return dong.Limits{MaxImageSize: c.Limits.MaxImageSize, MaxAudioSize: c.Limits.MaxAudioSize}
}

// WriteOptions maps the configuration onto dong.Encode options.
func (c *Config) WriteOptions() []dong.WriteOption {
	p, _ := dong.ParseMediaTypePolicy(c.MediaTypePolicy)
	return []dong.WriteOption{dong.WithMediaTypePolicy(p), dong.WithWriteLimits(c.limits())}
}

// ReadOptions maps the configuration onto dong.Decode options.
func (c *Config) ReadOptions() []dong.ReadOption {
	return []dong.ReadOption{dong.WithStrictBounds(c.StrictBounds), dong.WithReadLimits(c.limits())}
}

// MaxFileSize is the largest container the limits allow, used to cap file
// reads and decompression.
func (c *Config) MaxFileSize() int64 {
	l := c.limits().WithDefaults()
	return int64(dong.HeaderSize) + int64(l.MaxImageSize) + int64(l.MaxAudioSize)
}

// Sink returns the file sink for the configured output.
func (c *Config) Sink() filecodec.DirSink {
	comp, _ := filecodec.ParseCompression(c.Output.Compression)
	return filecodec.DirSink{Dir: c.Output.Dir, Compression: comp}
}
