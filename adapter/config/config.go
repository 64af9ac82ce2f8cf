// Package config loads list and logging settings from YAML, TOML or JSON
// files.
package config

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/vinicius-lino-figueiredo/reclist/adapter/allocator"
	"github.com/vinicius-lino-figueiredo/reclist/adapter/decoder"
	"github.com/vinicius-lino-figueiredo/reclist/domain"
	"gopkg.in/yaml.v3"
)

// Format names a configuration file syntax.
type Format string

// Supported formats.
const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// Config holds the settings for lists created by the command line tool.
type Config struct {
	// ItemSize is the record size in bytes.
	ItemSize int `reclist:"itemsize"`
	// Allocated is the initial capacity in records.
	Allocated int `reclist:"allocated"`
	// GrowthFactor multiplies the capacity of a full list.
	GrowthFactor float64 `reclist:"growth_factor"`
	// MemoryLimit caps the bytes held by list buffers. Zero means no cap.
	MemoryLimit int `reclist:"memory_limit"`
	// InvalidateOnSet makes in-place overwrites invalidate iterators.
	InvalidateOnSet bool `reclist:"invalidate_on_set"`
	// LogLevel is a logrus level name.
	LogLevel string `reclist:"log_level"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		ItemSize:     8,
		GrowthFactor: domain.DefaultGrowthFactor,
		LogLevel:     logrus.InfoLevel.String(),
	}
}

// FormatOf picks the format from the file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("%w: unsupported config file %q", domain.ErrInvalidArgument, path)
}

// Load reads the file at path on top of [Default].
func Load(path string) (Config, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Config{}, err
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return Read(f, format)
}

// Read parses r in the given format on top of [Default]. Keys missing from
// the input keep their default values.
func Read(r io.Reader, format Format) (Config, error) {
	raw := make(map[string]any)
	var err error
	switch format {
	case FormatYAML:
		err = yaml.NewDecoder(r).Decode(&raw)
		if err == io.EOF {
			err = nil
		}
	case FormatTOML:
		_, err = toml.NewDecoder(r).Decode(&raw)
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&raw)
	default:
		err = fmt.Errorf("%w: unknown config format %q", domain.ErrInvalidArgument, format)
	}
	if err != nil {
		return Config{}, err
	}

	cfg := Default()
	if err := decoder.NewDecoder().Decode(raw, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the values that would otherwise only fail when the first
// list is created.
func (c Config) Validate() error {
	if c.ItemSize <= 0 || c.Allocated < 0 {
		return domain.ErrItemSize{ItemSize: c.ItemSize, Allocated: c.Allocated}
	}
	if c.ItemSize > allocator.MaxSize {
		return fmt.Errorf("%w: itemsize %d above %d bytes", domain.ErrNoMemory, c.ItemSize, allocator.MaxSize)
	}
	if !(c.GrowthFactor >= domain.MinGrowthFactor) {
		return domain.ErrGrowthFactor
	}
	if c.MemoryLimit < 0 {
		return fmt.Errorf("%w: negative memory limit %d", domain.ErrInvalidArgument, c.MemoryLimit)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidArgument, err)
	}
	return nil
}

// ListOptions returns the options shared by every list, leaving item size and
// capacity to the caller.
func (c Config) ListOptions() []domain.ListOption {
	return []domain.ListOption{
		domain.WithGrowthFactor(c.GrowthFactor),
		domain.WithInvalidateOnSet(c.InvalidateOnSet),
		domain.WithAllocator(allocator.NewAllocator(allocator.WithLimit(c.MemoryLimit))),
	}
}

// Level returns the parsed log level, falling back to info.
func (c Config) Level() logrus.Level {
	lvl, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
