package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/trxer/go-trxer/internal/config"
)

// Environment variable names.
const (
	envConfig    = "TRXER_CONFIG"
	envEngine    = "TRXER_ENGINE"
	envAssetPath = "TRXER_ASSET_PATH"
	envValidate  = "TRXER_VALIDATE"
	envXSLTProc  = "TRXER_XSLTPROC"
	envContainer = "TRXER_CONTAINER"
)

// envSettings holds configuration from environment variables.
// Provides CI-friendly overrides without requiring YAML files.
type envSettings struct {
	ConfigPath string // TRXER_CONFIG: config file name or path
	Engine     string // TRXER_ENGINE: libxslt or xsltproc
	XSLTProc   string // TRXER_XSLTPROC: xsltproc binary
	AssetPath  string // TRXER_ASSET_PATH: custom asset directory
	Validate   *bool  // TRXER_VALIDATE: nil when unset or unparsable
}

// knownEnvVars lists valid TRXER_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	envConfig:    true,
	envEngine:    true,
	envXSLTProc:  true,
	envAssetPath: true,
	envValidate:  true,
	envContainer: true,
}

// loadEnvSettings reads configuration from environment variables.
// Unparsable booleans are reported on w and ignored.
func loadEnvSettings(w io.Writer) *envSettings {
	s := &envSettings{
		ConfigPath: os.Getenv(envConfig),
		Engine:     os.Getenv(envEngine),
		XSLTProc:   os.Getenv(envXSLTProc),
		AssetPath:  os.Getenv(envAssetPath),
	}

	if raw := os.Getenv(envValidate); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			fmt.Fprintf(w, "warning: ignoring %s=%q (want true or false)\n", envValidate, raw)
		} else {
			s.Validate = &v
		}
	}

	return s
}

// warnUnknownEnvVars logs warnings for unrecognized TRXER_* variables.
// Helps catch typos like TRXER_ENGIN.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "TRXER_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvSettings overrides config values with those set in the environment.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via applyFlags).
func applyEnvSettings(s *envSettings, cfg *config.Config) {
	if s.Engine != "" {
		cfg.Engine.Name = s.Engine
	}
	if s.XSLTProc != "" {
		cfg.Engine.XSLTProcPath = s.XSLTProc
	}
	if s.AssetPath != "" {
		cfg.Assets.BasePath = s.AssetPath
	}
	if s.Validate != nil {
		cfg.Validate.Enabled = *s.Validate
	}
}

// applyFlags overrides config values with flags given on the command line.
func applyFlags(f *convertFlags, cfg *config.Config) {
	if f.changed["engine"] {
		cfg.Engine.Name = f.engine.name
	}
	if f.changed["xsltproc"] {
		cfg.Engine.XSLTProcPath = f.engine.xsltproc
	}
	if f.changed["asset-path"] {
		cfg.Assets.BasePath = f.assetPath
	}
	if f.changed["validate"] {
		cfg.Validate.Enabled = f.validate
	}
}

// resolveConfig builds the effective configuration for a run.
// configName comes from --config; TRXER_CONFIG is used when it is empty.
func resolveConfig(f *convertFlags, env *Environment) (*config.Config, error) {
	settings := loadEnvSettings(env.Stderr)

	name := f.common.config
	if name == "" {
		name = settings.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnvSettings(settings, cfg)
	applyFlags(f, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
