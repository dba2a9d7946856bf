package config

type Config struct {
	Kubernetes *KubernetesConfig `mapstructure:"kubernetes" validate:"required"`
	Cache      *CacheConfig      `mapstructure:"cache" validate:"required"`
	Log        *LogConfig        `mapstructure:"log" validate:"required"`
	Features   *FeaturesConfig   `mapstructure:"features" validate:"required"`
	System     *SystemConfig     `mapstructure:"system" validate:"required"`
	Metrics    *MetricsConfig    `mapstructure:"metrics" validate:"required"`
}

type KubernetesConfig struct {
	// Kubeconfig is an explicit kubeconfig path; empty uses the default loading rules
	Kubeconfig string `mapstructure:"kubeconfig"`
	Context    string `mapstructure:"context"`
	InCluster  bool   `mapstructure:"in_cluster"`
}

type CacheConfig struct {
	Name string `mapstructure:"name" validate:"required"`
}

type LogConfig struct {
	Level    string `mapstructure:"level" validate:"oneof=debug info warn error"`
	Encoding string `mapstructure:"encoding" validate:"oneof=json console"`
}

type FeaturesConfig struct {
	Paths       []string `mapstructure:"paths" validate:"min=1,dive,required"`
	Tags        string   `mapstructure:"tags"`
	Format      string   `mapstructure:"format" validate:"required,godog_format"`
	Strict      bool     `mapstructure:"strict"`
	Concurrency int      `mapstructure:"concurrency" validate:"gte=0"`
}

type SystemConfig struct {
	// BrewfileLock is read by the "added and installed" step
	BrewfileLock string `mapstructure:"brewfile_lock" validate:"required"`
}

type MetricsConfig struct {
	// Textfile is where run metrics are written after the run, empty disables it
	Textfile string `mapstructure:"textfile"`
}
