// Package config loads the optional .unity.yml file that tunes the unity CLI.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/andyballingall/unity-markup/internal/fs"
)

const (
	// DefaultFileName is looked for in the working directory when no config is named.
	DefaultFileName = ".unity.yml"
	// ConfigEnvVar names a config file when --config is not given.
	ConfigEnvVar = "UNITY_CONFIG"
	// DefaultCacheSize is the number of validation results remembered by content digest.
	DefaultCacheSize = 256
)

// DefaultConfigContent documents every key with its default value.
const DefaultConfigContent = `# Unity markup validator configuration

# Report format: text or json.
output: text

# Colour text reports when writing to a terminal.
colour: true

# Number of documents validated concurrently. 0 uses GOMAXPROCS.
workers: 0

# Only files with these extensions are validated when walking directories.
extensions: [".json", ".unity"]

# Directory or file names skipped while walking. Hidden entries are always skipped.
exclude: [".git", "node_modules"]

# Stop at the first document that fails.
failFast: false

# Also validate every document against the published Unity JSON Schema.
schemaCheck: false

# Results remembered by content digest. 0 disables the cache.
cacheSize: 256

# Optional path for a JSON debug log.
logFile: ""
`

// OutputFormat selects a report renderer.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)

type Config struct {
	Output      OutputFormat `yaml:"output"`
	Colour      bool         `yaml:"colour"`
	Workers     int          `yaml:"workers"`
	Extensions  []string     `yaml:"extensions"`
	Exclude     []string     `yaml:"exclude"`
	FailFast    bool         `yaml:"failFast"`
	SchemaCheck bool         `yaml:"schemaCheck"`
	CacheSize   int          `yaml:"cacheSize"`
	LogFile     string       `yaml:"logFile"`

	// Path is the file the config was read from, empty for defaults.
	Path string `yaml:"-"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Output:     OutputText,
		Colour:     true,
		Extensions: []string{".json", ".unity"},
		Exclude:    []string{".git", "node_modules"},
		CacheSize:  DefaultCacheSize,
	}
}

// Load reads the config file at path. Keys absent from the file keep their
// default values. An empty file yields the defaults.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &MissingConfigError{Path: path}
		}
		return nil, err
	}
	defer f.Close()

	cfg := Default()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, &InvalidYAMLError{Path: path, Wrapped: err}
	}

	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.Path = path
	return cfg, nil
}

// Discover finds the config to use. An explicit path wins, then the file named
// by UNITY_CONFIG, then .unity.yml in workDir. Explicit and environment paths
// must exist; a missing default file yields the defaults.
func Discover(explicit string, env fs.EnvProvider, workDir string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if env != nil {
		if p := env.Get(ConfigEnvVar); p != "" {
			return Load(p)
		}
	}

	p := filepath.Join(workDir, DefaultFileName)
	if _, err := os.Stat(p); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}
	return Load(p)
}

// Validate checks the values read from a config file.
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return &InvalidOutputError{Value: string(c.Output)}
	}
	if c.Workers < 0 {
		return &InvalidNumberError{Property: "workers", Value: c.Workers}
	}
	if c.CacheSize < 0 {
		return &InvalidNumberError{Property: "cacheSize", Value: c.CacheSize}
	}
	if len(c.Extensions) == 0 {
		return &InvalidExtensionError{Value: ""}
	}
	for _, ext := range c.Extensions {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
			return &InvalidExtensionError{Value: ext}
		}
	}
	return nil
}

// HasExtension reports whether path ends with one of the configured extensions.
// The comparison ignores case.
func (c *Config) HasExtension(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return slices.ContainsFunc(c.Extensions, func(e string) bool {
		return strings.ToLower(e) == ext
	})
}

// IsExcluded reports whether the final element of path should be skipped
// while walking a directory tree.
func (c *Config) IsExcluded(path string) bool {
	if fs.IsHidden(path) {
		return true
	}
	return slices.Contains(c.Exclude, filepath.Base(path))
}

func (c *Config) String() string {
	src := c.Path
	if src == "" {
		src = "defaults"
	}
	return fmt.Sprintf("config(%s): output=%s workers=%d cacheSize=%d", src, c.Output, c.Workers, c.CacheSize)
}
