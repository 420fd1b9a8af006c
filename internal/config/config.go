package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/trxer/go-trxer/internal/fileutil"
	"github.com/trxer/go-trxer/internal/transform"
	"github.com/trxer/go-trxer/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidEngine   = errors.New("invalid engine")
)

// MaxPathLength bounds path-valued fields.
const MaxPathLength = 4096

// DirName is the directory under the user config dir searched for configs.
const DirName = "trxer"

// Config holds all configuration for report generation.
type Config struct {
	Engine   EngineConfig   `yaml:"engine"`
	Assets   AssetsConfig   `yaml:"assets"`
	Validate ValidateConfig `yaml:"validate"`
}

// EngineConfig selects the XSLT processor.
type EngineConfig struct {
	Name         string `yaml:"name"`         // "libxslt" (default) or "xsltproc"
	XSLTProcPath string `yaml:"xsltprocPath"` // Empty = xsltproc from PATH
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// ValidateConfig controls schema validation of TRX input.
type ValidateConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Validate checks the engine name and path lengths.
// Called by LoadConfig and again after env and flag overrides are applied.
func (c *Config) Validate() error {
	if c.Engine.Name != "" && !isKnownEngine(c.Engine.Name) {
		return fmt.Errorf("%w: engine.name %q (must be one of %s)",
			ErrInvalidEngine, c.Engine.Name, strings.Join(transform.Engines(), ", "))
	}
	if err := validateFieldLength("engine.xsltprocPath", c.Engine.XSLTProcPath, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("assets.basePath", c.Assets.BasePath, MaxPathLength); err != nil {
		return err
	}
	return nil
}

func isKnownEngine(name string) bool {
	for _, known := range transform.Engines() {
		if strings.EqualFold(name, known) {
			return true
		}
	}
	return false
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given:
// the default engine, embedded assets, no validation.
func DefaultConfig() *Config {
	return &Config{
		Engine:   EngineConfig{Name: transform.DefaultEngine},
		Assets:   AssetsConfig{BasePath: ""},
		Validate: ValidateConfig{Enabled: false},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Keys missing from the file keep their DefaultConfig values.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// SearchPaths lists where a config name is looked up, in order:
// current directory, then the user config directory, each with .yaml then .yml.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, DirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing entry of SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", &NotFoundError{Name: name, Tried: paths}
}

// NotFoundError reports a config name that matched no file.
// It matches ErrConfigNotFound with errors.Is.
type NotFoundError struct {
	Name  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s (tried %s)", ErrConfigNotFound, e.Name, strings.Join(e.Tried, ", "))
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrConfigNotFound
}
