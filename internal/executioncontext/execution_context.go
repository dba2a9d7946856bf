package executioncontext

import (
	"log/slog"
	"time"

	"github.com/hiberbee/kube-bdd/internal/constants"
	"github.com/hiberbee/kube-bdd/internal/scenariocache"
)

// ExecutionContext contains the state of one running scenario. Step
// implementations receive it instead of reaching for godog internals.
//
// The ExecutionContext contains:
//   - Logger: A scenario-scoped logger with enriched fields (run_id, scenario_id, scenario)
//   - Cache: The scenario's own cache, shared by its fetch and assert steps
//   - StartedAt: When the scenario started
type ExecutionContext struct {
	RunID        string
	ScenarioID   string
	ScenarioName string
	Logger       *slog.Logger
	Cache        *scenariocache.Cache
	StartedAt    time.Time
}

func NewExecutionContext(
	runID string,
	scenarioID string,
	scenarioName string,
	logger *slog.Logger,
	cache *scenariocache.Cache,
) *ExecutionContext {
	return &ExecutionContext{
		RunID:        runID,
		ScenarioID:   scenarioID,
		ScenarioName: scenarioName,
		Logger: logger.With(
			constants.LOG_RUN_ID, runID,
			constants.LOG_SCENARIO_ID, scenarioID,
			constants.LOG_SCENARIO_NAME, scenarioName,
		),
		Cache:     cache,
		StartedAt: time.Now(),
	}
}

func (e *ExecutionContext) Elapsed() time.Duration {
	return time.Since(e.StartedAt)
}
