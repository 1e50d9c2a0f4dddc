package core

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/uber/nimlsp/src/nimlsp/entity"
	uber_config "go.uber.org/config"
	"go.uber.org/fx"
)

const (
	_configDirEnv     = "NIMLSP_CONFIG_DIR"
	_defaultConfigDir = "src/nimlsp/config"
	_metaFile         = "meta.yaml"
)

// ConfigModule provides the configuration provider and the settings read from it.
var ConfigModule = fx.Options(
	fx.Provide(NewConfig),
	fx.Provide(NewSuggestConfig),
)

// Config is the daemon configuration, assembled from the files listed in meta.yaml.
type Config struct {
	provider uber_config.Provider
}

// Get returns the value at the given dotted path.
func (c Config) Get(path string) uber_config.Value {
	return c.provider.Get(path)
}

// Name implements config.Provider.
func (c Config) Name() string {
	return "config"
}

// NewConfig loads meta.yaml from the config directory, then every listed file that exists, in order.
// Later files override earlier ones and ${VAR:default} references are expanded from the environment.
func NewConfig() (uber_config.Provider, error) {
	return loadConfig(getConfigDir())
}

func loadConfig(configDir string) (uber_config.Provider, error) {
	metaProvider, err := uber_config.NewYAML(
		uber_config.File(filepath.Join(configDir, _metaFile)),
		uber_config.Expand(os.LookupEnv),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load meta configuration: %w", err)
	}

	var configFiles []string
	if err := metaProvider.Get("files").Populate(&configFiles); err != nil {
		return nil, fmt.Errorf("failed to read files list from %s: %w", _metaFile, err)
	}

	// Files such as local.yaml are optional.
	var options []uber_config.YAMLOption
	for _, file := range configFiles {
		fullPath := filepath.Join(configDir, file)
		if _, err := os.Stat(fullPath); err == nil {
			options = append(options, uber_config.File(fullPath))
		}
	}
	if len(options) == 0 {
		return nil, fmt.Errorf("no configuration files found in %s", configDir)
	}
	options = append(options, uber_config.Expand(os.LookupEnv))

	provider, err := uber_config.NewYAML(options...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return Config{provider: provider}, nil
}

// NewSuggestConfig reads the nimsuggest settings, keeping defaults for anything left unset.
func NewSuggestConfig(provider uber_config.Provider) (entity.SuggestConfig, error) {
	cfg := entity.NewSuggestConfig()
	if err := provider.Get(entity.SuggestConfigKey).Populate(&cfg); err != nil {
		return entity.SuggestConfig{}, fmt.Errorf("failed to read %s configuration: %w", entity.SuggestConfigKey, err)
	}
	return cfg.WithDefaults(), nil
}

// getConfigDir returns the path to the configuration directory
func getConfigDir() string {
	if configDir := os.Getenv(_configDirEnv); configDir != "" {
		return configDir
	}

	// Relative to the workspace root, where the binary is expected to be run from.
	return _defaultConfigDir
}
