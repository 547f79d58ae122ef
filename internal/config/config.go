package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/gorewood/nextkit/internal/docscheck"
	"github.com/gorewood/nextkit/internal/structure"
	"github.com/gorewood/nextkit/internal/updates"
)

// ProjectFile is the per-project configuration file name.
const ProjectFile = ".nextkit.yaml"

// EnvPrefix prefixes every environment override, e.g. NEXTKIT_CHECK_MIN_REFERENCES.
const EnvPrefix = "NEXTKIT"

//go:embed defaults.yaml
var defaultsYAML []byte

// Config is the resolved nextkit configuration.
type Config struct {
	Log       LogConfig         `mapstructure:"log"`
	Check     docscheck.Options `mapstructure:"check"`
	Structure structure.Options `mapstructure:"validate"`
	Updates   updates.Options   `mapstructure:"updates"`
}

// LogConfig controls the diagnostic logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Loaded pairs a configuration with the files it was read from.
type Loaded struct {
	Config *Config
	Files  []string
}

// Load resolves configuration for a project root.
//
// With an explicit path only that file is merged over the defaults and it
// must exist. Otherwise the global config file and the project's
// .nextkit.yaml are merged when present.
func Load(root, explicitPath string) (*Loaded, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaultsYAML)); err != nil {
		return nil, fmt.Errorf("reading embedded defaults: %w", err)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var files []string
	if explicitPath != "" {
		if err := mergeFile(v, explicitPath); err != nil {
			return nil, err
		}
		files = append(files, explicitPath)
	} else {
		for _, candidate := range searchPaths(root) {
			if _, err := os.Stat(candidate); err != nil {
				if errors.Is(err, os.ErrNotExist) {
					continue
				}
				return nil, fmt.Errorf("checking config file %s: %w", candidate, err)
			}
			if err := mergeFile(v, candidate); err != nil {
				return nil, err
			}
			files = append(files, candidate)
		}
	}

	cfg := &Config{}
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		trimmedListHook(),
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(cfg, hook); err != nil {
		return nil, fmt.Errorf("parsing configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &Loaded{Config: cfg, Files: files}, nil
}

// Default returns the embedded defaults without consulting files or the environment.
func Default() *Config {
	v := viper.New()
	v.SetConfigType("yaml")
	if err := v.ReadConfig(bytes.NewReader(defaultsYAML)); err != nil {
		panic(fmt.Sprintf("embedded defaults are invalid: %v", err))
	}
	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		panic(fmt.Sprintf("embedded defaults do not decode: %v", err))
	}
	return cfg
}

// searchPaths lists config files from lowest to highest precedence.
func searchPaths(root string) []string {
	var paths []string
	if dir := Dir(); dir != "" {
		paths = append(paths, filepath.Join(dir, "config.yaml"))
	}
	return append(paths, filepath.Join(root, ProjectFile))
}

func mergeFile(v *viper.Viper, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// trimmedListHook decodes comma-separated strings (as they arrive from
// environment variables) into string slices, trimming each element.
func trimmedListHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data any) (any, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf([]string{}) {
			return data, nil
		}
		raw, _ := data.(string)
		if strings.TrimSpace(raw) == "" {
			return []string{}, nil
		}
		parts := strings.Split(raw, ",")
		out := make([]string, 0, len(parts))
		for _, part := range parts {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
		return out, nil
	}
}
