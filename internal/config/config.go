// Package config loads motion.json, the project-level configuration for
// the preview server and its tooling.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "motion.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 4100

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultRecordDir is the default directory for saved recordings.
	DefaultRecordDir = "recordings"
)

// Config errors.
var (
	ErrNotFound    = errors.New("config: no motion.json found")
	ErrInvalid     = errors.New("config: invalid motion.json")
	ErrInvalidPort = errors.New("config: port must be between 0 and 65535")
)

// Config is the parsed motion.json.
type Config struct {
	// Name is the project name, shown in the preview UI.
	Name string `json:"name,omitempty"`

	// Preview configures the preview server.
	Preview PreviewConfig `json:"preview,omitempty"`

	// Packs lists preset pack files to overlay on the built-ins.
	Packs []string `json:"packs,omitempty"`

	// RecordDir is where session recordings are written.
	RecordDir string `json:"recordDir,omitempty"`

	// configPath is where the config was loaded from.
	configPath string
}

// PreviewConfig holds preview server settings.
type PreviewConfig struct {
	// Host is the interface to bind.
	Host string `json:"host,omitempty"`

	// Port is the listen port.
	Port int `json:"port,omitempty"`

	// OpenBrowser opens the browser on startup.
	OpenBrowser bool `json:"openBrowser,omitempty"`

	// WatchPacks enables hot reload of preset packs.
	WatchPacks bool `json:"watchPacks,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	return &Config{
		Preview: PreviewConfig{
			Host:       DefaultHost,
			Port:       DefaultPort,
			WatchPacks: true,
		},
		RecordDir: DefaultRecordDir,
	}
}

// Load reads motion.json from dir. A missing file yields defaults with
// ErrNotFound wrapped, so callers can treat it as optional.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadFile reads configuration from an explicit path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w in %s", ErrNotFound, filepath.Dir(path))
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := New()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	cfg.configPath = path
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration back to the path it was loaded from, or
// to motion.json in the working directory if it was built in memory.
func (c *Config) Save() error {
	path := c.configPath
	if path == "" {
		path = ConfigFileName
	}
	return c.SaveTo(path)
}

// SaveTo writes the configuration to path.
func (c *Config) SaveTo(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	c.configPath = path
	return nil
}

// Path returns where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// Dir returns the directory containing the config file.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return ""
	}
	return filepath.Dir(c.configPath)
}

// applyDefaults fills empty fields.
func (c *Config) applyDefaults() {
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.RecordDir == "" {
		c.RecordDir = DefaultRecordDir
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Preview.Port < 0 || c.Preview.Port > 65535 {
		return fmt.Errorf("%w: %d", ErrInvalidPort, c.Preview.Port)
	}
	return nil
}

// PreviewAddress returns the host:port the preview server binds.
func (c *Config) PreviewAddress() string {
	return c.Preview.Host + ":" + strconv.Itoa(c.Preview.Port)
}

// PreviewURL returns the URL the preview server serves.
func (c *Config) PreviewURL() string {
	return "http://" + c.PreviewAddress()
}

// RecordPath returns the absolute path to the recordings directory.
func (c *Config) RecordPath() string {
	if filepath.IsAbs(c.RecordDir) {
		return c.RecordDir
	}
	return filepath.Join(c.Dir(), c.RecordDir)
}

// PackPaths returns the pack file paths resolved against the config dir.
func (c *Config) PackPaths() []string {
	out := make([]string, 0, len(c.Packs))
	for _, p := range c.Packs {
		if filepath.IsAbs(p) {
			out = append(out, p)
			continue
		}
		out = append(out, filepath.Join(c.Dir(), p))
	}
	return out
}

// Exists reports whether a motion.json exists in dir.
func Exists(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, ConfigFileName))
	return err == nil
}

// FindProjectRoot walks up from startDir to the directory containing
// motion.json.
func FindProjectRoot(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}
	for {
		if Exists(dir) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w in %s or any parent", ErrNotFound, startDir)
		}
		dir = parent
	}
}
