package constants

// Log field name constants
const (
	LOG_SCENARIO_ID   = "scenario_id"
	LOG_SCENARIO_NAME = "scenario"
	LOG_RUN_ID        = "run_id"
	LOG_STEP          = "step"
	LOG_KIND          = "kind"
	LOG_NAMESPACE     = "namespace"
	LOG_CONTEXT       = "context"
	LOG_MASTER_URL    = "master_url"
	LOG_CACHE         = "cache"
	LOG_COUNT         = "count"
	LOG_ERROR         = "error"
	LOG_ELAPSED       = "elapsed"
)
