package config

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"github.com/vinicius-lino-figueiredo/reclist/adapter/list"
	"github.com/vinicius-lino-figueiredo/reclist/domain"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) write(name, content string) string {
	path := filepath.Join(s.dir, name)
	s.Require().NoError(os.WriteFile(path, []byte(content), 0o644))
	return path
}

func (s *ConfigTestSuite) TestDefault() {
	cfg := Default()
	s.NoError(cfg.Validate())
	s.Equal(8, cfg.ItemSize)
	s.Equal(logrus.InfoLevel, cfg.Level())
}

func (s *ConfigTestSuite) TestLoadYAML() {
	path := s.write("list.yaml", `
itemsize: 4
allocated: 16
growth_factor: 1.5
memory_limit: 1024
invalidate_on_set: true
log_level: debug
`)
	cfg, err := Load(path)
	s.NoError(err)
	s.Equal(Config{
		ItemSize:        4,
		Allocated:       16,
		GrowthFactor:    1.5,
		MemoryLimit:     1024,
		InvalidateOnSet: true,
		LogLevel:        "debug",
	}, cfg)
	s.Equal(logrus.DebugLevel, cfg.Level())
}

func (s *ConfigTestSuite) TestLoadTOML() {
	path := s.write("list.toml", "itemsize = 2\nallocated = 3\n")
	cfg, err := Load(path)
	s.NoError(err)
	s.Equal(2, cfg.ItemSize)
	s.Equal(3, cfg.Allocated)
	s.Equal(domain.DefaultGrowthFactor, cfg.GrowthFactor)
}

func (s *ConfigTestSuite) TestLoadJSON() {
	path := s.write("list.JSON", `{"itemsize": 16, "log_level": "warn"}`)
	cfg, err := Load(path)
	s.NoError(err)
	s.Equal(16, cfg.ItemSize)
	s.Equal(logrus.WarnLevel, cfg.Level())
}

func (s *ConfigTestSuite) TestEmptyYAML() {
	cfg, err := Read(strings.NewReader(""), FormatYAML)
	s.NoError(err)
	s.Equal(Default(), cfg)
}

func (s *ConfigTestSuite) TestUnsupportedExtension() {
	_, err := Load(s.write("list.ini", "itemsize=1"))
	s.ErrorIs(err, domain.ErrInvalidArgument)

	_, err = Read(strings.NewReader(""), Format("xml"))
	s.ErrorIs(err, domain.ErrInvalidArgument)
}

func (s *ConfigTestSuite) TestMissingFile() {
	_, err := Load(filepath.Join(s.dir, "missing.yaml"))
	s.ErrorIs(err, os.ErrNotExist)
}

func (s *ConfigTestSuite) TestInvalidValues() {
	tests := map[string]string{
		"itemsize: 0":          "zero item size",
		"allocated: -1":        "negative capacity",
		"growth_factor: 1.2":   "slow growth",
		"memory_limit: -5":     "negative limit",
		"log_level: chatty":    "bad level",
		"itemsize: eight":      "not a number",
		"unknown_setting: yes": "unknown key",
	}
	for content, name := range tests {
		_, err := Read(strings.NewReader(content), FormatYAML)
		s.Error(err, name)
	}
}

func (s *ConfigTestSuite) TestItemSizeTooLarge() {
	cfg := Default()
	cfg.ItemSize = math.MaxInt / 2
	s.ErrorIs(cfg.Validate(), domain.ErrNoMemory)

	_, err := Read(strings.NewReader(`{"itemsize": 4611686018427387903}`), FormatJSON)
	s.ErrorIs(err, domain.ErrNoMemory)
}

func (s *ConfigTestSuite) TestMalformed() {
	_, err := Read(strings.NewReader("itemsize: [1"), FormatYAML)
	s.Error(err)
	_, err = Read(strings.NewReader("itemsize = "), FormatTOML)
	s.Error(err)
	_, err = Read(strings.NewReader("{"), FormatJSON)
	s.Error(err)
}

func (s *ConfigTestSuite) TestListOptions() {
	cfg, err := Read(strings.NewReader("itemsize: 2\nmemory_limit: 6\ninvalidate_on_set: true"), FormatYAML)
	s.Require().NoError(err)

	opts := append(cfg.ListOptions(), domain.WithItemSize(cfg.ItemSize), domain.WithAllocated(cfg.Allocated))
	l, err := list.NewList(opts...)
	s.Require().NoError(err)

	s.NoError(l.Append([]byte("ab")))
	s.NoError(l.Append([]byte("cd")))
	// growing to 4 records needs 8 bytes, over the limit
	s.ErrorIs(l.Append([]byte("ef")), domain.ErrNoMemory)

	gen := l.Generation()
	s.NoError(l.Set(0, []byte("zz")))
	s.Equal(gen+1, l.Generation())
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}
