package glue

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/jlrickert/glue/pkg/fnv"
	"github.com/jlrickert/glue/pkg/sitemap"
	"gopkg.in/yaml.v3"
)

// ConfigAppName is the directory name used under the user config root.
const ConfigAppName = "glue"

// ThemeEnv overrides the configured sitemap theme when set.
const ThemeEnv = "BOOTSTRAP_THEME"

// Config is the user config (~/.config/glue/config.yaml).
type Config struct {
	Hash    HashConfig    `yaml:"hash,omitempty"`
	Sitemap SitemapConfig `yaml:"sitemap,omitempty"`
}

// HashConfig holds defaults for the hash command.
type HashConfig struct {
	// Width is the default FNV width in bits.
	Width int `yaml:"width,omitempty"`
}

// SitemapConfig holds defaults for sitemap rendering.
type SitemapConfig struct {
	Theme       string   `yaml:"theme,omitempty"`
	AdminLink   string   `yaml:"admin_link,omitempty"`
	Routes      string   `yaml:"routes,omitempty"`
	EntityTypes []string `yaml:"entity_types,omitempty"`
	V2          bool     `yaml:"v2,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Hash: HashConfig{Width: int(fnv.DefaultWidth)},
		Sitemap: SitemapConfig{
			Theme:     sitemap.DefaultTheme,
			AdminLink: sitemap.DefaultAdminLink,
		},
	}
}

// ParseConfig decodes raw YAML on top of DefaultConfig and validates it.
func ParseConfig(path string, data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, NewInvalidConfigError(path, err.Error())
	}
	if err := cfg.Validate(); err != nil {
		return nil, NewInvalidConfigError(path, err.Error())
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.Hash.Width != 0 {
		if err := fnv.Width(c.Hash.Width).Validate(); err != nil {
			return fmt.Errorf("hash.width: %w", err)
		}
	}
	return nil
}

// HashWidth returns the configured default width, falling back to
// fnv.DefaultWidth.
func (c *Config) HashWidth() fnv.Width {
	if c == nil || c.Hash.Width == 0 {
		return fnv.DefaultWidth
	}
	return fnv.Width(c.Hash.Width)
}

// DefaultConfigPath returns $XDG_CONFIG_HOME/glue/config.yaml, falling back to
// ~/.config/glue/config.yaml.
func DefaultConfigPath(rt *toolkit.Runtime) (string, error) {
	root := strings.TrimSpace(rt.Get("XDG_CONFIG_HOME"))
	if root == "" {
		root = "~/.config"
	}
	return toolkit.ExpandPath(rt, filepath.Join(root, ConfigAppName, "config.yaml"))
}

// ReadConfig loads the config at path. When path is empty the default path is
// used and a missing file yields DefaultConfig. An explicit path must exist.
func ReadConfig(ctx context.Context, rt *toolkit.Runtime, path string) (*Config, error) {
	lg := rt.Logger()

	explicit := strings.TrimSpace(path) != ""
	if !explicit {
		p, err := DefaultConfigPath(rt)
		if err != nil {
			return nil, fmt.Errorf("unable to resolve config path: %w", err)
		}
		path = p
	} else {
		p, err := toolkit.ExpandPath(rt, toolkit.ExpandEnv(rt, path))
		if err != nil {
			return nil, fmt.Errorf("unable to resolve config path %q: %w", path, err)
		}
		path = p
	}

	data, err := rt.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			lg.Debug("no user config, using defaults", "path", path)
			return DefaultConfig(), nil
		}
		lg.Debug("failed to read config", "path", path, "err", err)
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := ParseConfig(path, data)
	if err != nil {
		lg.Error("failed to parse config", "path", path, "err", err)
		return nil, err
	}
	lg.Debug("config read", "path", path)
	return cfg, nil
}
