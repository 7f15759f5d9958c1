package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/iwvelando/loan-compare/internal/config"
	"github.com/iwvelando/loan-compare/pkg/constants"
	"gopkg.in/yaml.v3"
)

// Config holds the runtime settings for the comparison server.
type Config struct {
	Address       string               `yaml:"address"`
	MaxUploadSize string               `yaml:"maxUploadSize"`
	Logging       config.LoggingConfig `yaml:"logging"`
	uploadBytes   int64
}

// LoadConfig reads the server settings from a YAML file. An empty path or a
// missing file yields the defaults; the default upload cap is deliberately
// small since a loan config is at most a few kilobytes of YAML.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Address:       constants.DefaultServerAddress,
		MaxUploadSize: strconv.FormatInt(constants.DefaultMaxUploadSizeBytes, 10),
		uploadBytes:   constants.DefaultMaxUploadSizeBytes,
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read server config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse server config %s: %w", path, err)
	}

	if cfg.Address == "" {
		cfg.Address = constants.DefaultServerAddress
	}
	if err := cfg.resolveUploadSize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UploadSizeBytes returns the upload cap in bytes.
func (c *Config) UploadSizeBytes() int64 {
	return c.uploadBytes
}

// SetUploadSizeBytes overrides the upload cap; non-positive sizes are ignored.
func (c *Config) SetUploadSizeBytes(size int64) {
	if size > 0 {
		c.uploadBytes = size
		c.MaxUploadSize = strconv.FormatInt(size, 10)
	}
}

func (c *Config) resolveUploadSize() error {
	if strings.TrimSpace(c.MaxUploadSize) == "" {
		c.uploadBytes = constants.DefaultMaxUploadSizeBytes
		c.MaxUploadSize = strconv.FormatInt(constants.DefaultMaxUploadSizeBytes, 10)
		return nil
	}
	size, err := ParseSize(c.MaxUploadSize)
	if err != nil {
		return err
	}
	c.uploadBytes = size
	return nil
}

// ParseSize converts an upload cap such as "256K" or "10M" into bytes. Plain
// digits are taken as bytes; only the K and M suffixes are accepted since no
// sane loan config approaches a gigabyte.
func ParseSize(value string) (int64, error) {
	s := strings.ToUpper(strings.TrimSpace(value))
	if s == "" {
		return constants.DefaultMaxUploadSizeBytes, nil
	}

	multiplier := int64(1)
	switch {
	case strings.HasSuffix(s, "K"):
		multiplier = 1 << 10
		s = strings.TrimSpace(strings.TrimSuffix(s, "K"))
	case strings.HasSuffix(s, "M"):
		multiplier = 1 << 20
		s = strings.TrimSpace(strings.TrimSuffix(s, "M"))
	}

	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid upload size %q", value)
	}
	if n <= 0 {
		return 0, fmt.Errorf("upload size must be positive, got %q", value)
	}
	return n * multiplier, nil
}
