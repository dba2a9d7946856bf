package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/viper"

	"github.com/hiberbee/kube-bdd/internal/constants"
	"github.com/hiberbee/kube-bdd/internal/validation"
)

func setDefaults(v *viper.Viper) {
	home, _ := os.UserHomeDir()

	v.SetDefault("kubernetes.kubeconfig", "")
	v.SetDefault("kubernetes.context", "")
	v.SetDefault("kubernetes.in_cluster", false)
	v.SetDefault("cache.name", constants.DefaultCacheName)
	v.SetDefault("log.level", constants.DefaultLogLevel)
	v.SetDefault("log.encoding", constants.DefaultLogEncoding)
	v.SetDefault("features.paths", []string{constants.DefaultFeaturesPath})
	v.SetDefault("features.tags", "")
	v.SetDefault("features.format", constants.DefaultFeatureFormat)
	v.SetDefault("features.strict", true)
	v.SetDefault("features.concurrency", 1)
	v.SetDefault("system.brewfile_lock", filepath.Join(home, constants.DefaultBrewfileLock))
	v.SetDefault("metrics.textfile", "")
}

// Load reads the configuration from configPath (optional), then from
// KUBE_BDD_* environment variables, e.g. KUBE_BDD_KUBERNETES_CONTEXT.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
		}
	}

	cfg := &Config{}
	// KUBE_BDD_FEATURES_PATHS=a,b arrives as a single string
	decodeHook := viper.DecodeHook(mapstructure.StringToSliceHookFunc(","))
	if err := v.Unmarshal(cfg, decodeHook); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	validate, err := validation.NewValidator()
	if err != nil {
		return nil, err
	}
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
