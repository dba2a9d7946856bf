package constants

const (
	DefaultCacheName      = "cucumber"
	DefaultLogLevel       = "info"
	DefaultLogEncoding    = "console"
	DefaultFeatureFormat  = "pretty"
	DefaultFeaturesPath   = "features"
	DefaultBrewfileLock   = ".Brewfile.lock.json"
	EnvPrefix             = "KUBE_BDD"
	ConfigFileEnvVariable = "KUBE_BDD_CONFIG"
)
