package steps

import (
	"context"
	"log/slog"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"

	"github.com/hiberbee/kube-bdd/internal/config"
	"github.com/hiberbee/kube-bdd/internal/constants"
	"github.com/hiberbee/kube-bdd/internal/executioncontext"
	"github.com/hiberbee/kube-bdd/internal/metrics"
	"github.com/hiberbee/kube-bdd/internal/phrase"
	"github.com/hiberbee/kube-bdd/internal/resources"
	"github.com/hiberbee/kube-bdd/internal/scenariocache"
)

// Suite holds what all scenarios of a run share: the cluster handle, the
// cache manager, the logger and the metrics recorder.
type Suite struct {
	cluster      ClusterClient
	caches       *scenariocache.Manager
	logger       *slog.Logger
	metrics      *metrics.Recorder
	brewfileLock string
	runID        string
}

func NewSuite(cluster ClusterClient, cfg *config.Config, logger *slog.Logger) *Suite {
	return &Suite{
		cluster:      cluster,
		caches:       scenariocache.NewManager(cfg.Cache.Name),
		logger:       logger,
		metrics:      metrics.NewRecorder(),
		brewfileLock: cfg.System.BrewfileLock,
		runID:        uuid.NewString(),
	}
}

func (s *Suite) RunID() string {
	return s.runID
}

func (s *Suite) Metrics() *metrics.Recorder {
	return s.metrics
}

// Caches exposes the manager so callers can check that every scenario cache
// was released.
func (s *Suite) Caches() *scenariocache.Manager {
	return s.caches
}

// InitializeTestSuite logs the start and end of a run.
func (s *Suite) InitializeTestSuite(ctx *godog.TestSuiteContext) {
	var startedAt time.Time
	ctx.BeforeSuite(func() {
		startedAt = time.Now()
		s.logger.Info("Starting feature run", constants.LOG_RUN_ID, s.runID)
	})
	ctx.AfterSuite(func() {
		s.logger.Info("Finished feature run",
			constants.LOG_RUN_ID, s.runID,
			constants.LOG_ELAPSED, time.Since(startedAt).String(),
			constants.LOG_CACHE, len(s.caches.Names()),
		)
	})
}

type stepStartKey struct{}

// binding converts the captured step arguments into typed values and calls
// the scenario's Feature.
type binding struct {
	suite   *Suite
	feature *Feature
	ec      *executioncontext.ExecutionContext
}

// InitializeScenario registers every sentence. godog calls it once per
// scenario, so each scenario gets its own binding and cache.
func (s *Suite) InitializeScenario(sc *godog.ScenarioContext) {
	b := &binding{suite: s}

	sc.Before(func(ctx context.Context, scenario *godog.Scenario) (context.Context, error) {
		cache := s.caches.Open(scenario.Id)
		b.ec = executioncontext.NewExecutionContext(s.runID, scenario.Id, scenario.Name, s.logger, cache)
		b.feature = NewFeature(s.cluster, b.ec, s.brewfileLock)
		b.ec.Logger.Debug("Starting scenario", constants.LOG_CACHE, cache.Name())
		return ctx, nil
	})

	sc.After(func(ctx context.Context, scenario *godog.Scenario, err error) (context.Context, error) {
		entries := 0
		if b.ec != nil {
			entries = b.ec.Cache.Len()
		}
		s.caches.Close(scenario.Id)
		s.metrics.ObserveScenario(err != nil)
		if b.ec == nil {
			return ctx, nil
		}
		if err != nil {
			b.ec.Logger.Info("Scenario failed", constants.LOG_ERROR, err.Error(), constants.LOG_ELAPSED, b.ec.Elapsed().String(), constants.LOG_COUNT, entries)
		} else {
			b.ec.Logger.Debug("Scenario passed", constants.LOG_ELAPSED, b.ec.Elapsed().String(), constants.LOG_COUNT, entries)
		}
		return ctx, nil
	})

	sc.StepContext().Before(func(ctx context.Context, st *godog.Step) (context.Context, error) {
		return context.WithValue(ctx, stepStartKey{}, time.Now()), nil
	})
	sc.StepContext().After(func(ctx context.Context, st *godog.Step, status godog.StepResultStatus, err error) (context.Context, error) {
		var elapsed time.Duration
		if startedAt, ok := ctx.Value(stepStartKey{}).(time.Time); ok {
			elapsed = time.Since(startedAt)
		}
		s.metrics.ObserveStep(status.String(), elapsed)
		if b.ec == nil {
			return ctx, nil
		}
		attrs := []any{constants.LOG_STEP, st.Text, "status", status.String(), constants.LOG_ELAPSED, elapsed.String()}
		if err != nil {
			attrs = append(attrs, constants.LOG_ERROR, err.Error())
		}
		b.ec.Logger.Debug("Step finished", attrs...)
		return ctx, nil
	})

	// Cluster selection
	sc.Step(`^namespace is "([^"]*)"$`, b.namespaceIs)
	sc.Step(`^context is "([^"]*)"$`, b.contextIs)
	sc.Step(`^kubernetes master url `+phrase.Pattern+` "([^"]*)"$`, b.masterURL)

	// Resources
	sc.Step(`^I get `+resources.Pattern+`$`, b.iGet)
	sc.Step(`^`+phrase.Pattern+` resource with "([^"]*)" `+phrase.Pattern+` equal to "([^"]*)"$`, b.resourceWith)
	sc.Step(`^list size `+phrase.Pattern+` greater (?:then|than) (\d+)$`, b.listSize)

	// Workstation
	sc.Step(`^"([^"]*)" added and installed$`, b.addedAndInstalled)
	sc.Step(`^"([^"]*)" command `+phrase.Pattern+` executable$`, b.commandExecutable)
}

func (b *binding) namespaceIs(ctx context.Context, name string) error {
	_, err := b.feature.SelectNamespace(ctx, name)
	return err
}

func (b *binding) contextIs(name string) error {
	b.feature.SelectContext(name)
	return nil
}

func (b *binding) masterURL(maybe, host string) error {
	variant, err := phrase.Parse(maybe)
	if err != nil {
		return err
	}
	return b.feature.AssertMasterURL(variant, host)
}

func (b *binding) iGet(ctx context.Context, kind string) error {
	if _, ok := resources.Lookup(kind); !ok {
		b.ec.Logger.Debug("Unknown resource kind, listing pods",
			constants.LOG_KIND, kind,
			"known", resources.Phrases(),
		)
	}
	_, err := b.feature.FetchResources(ctx, resources.Resolve(b.suite.cluster.Clientset(), kind))
	return err
}

func (b *binding) resourceWith(maybeHas, path, maybeEqual, value string) error {
	has, err := phrase.Parse(maybeHas)
	if err != nil {
		return err
	}
	equal, err := phrase.Parse(maybeEqual)
	if err != nil {
		return err
	}
	return b.feature.AssertResourceField(has, path, equal, value)
}

func (b *binding) listSize(maybe string, n int) error {
	variant, err := phrase.Parse(maybe)
	if err != nil {
		return err
	}
	return b.feature.AssertListSize(variant, n)
}

func (b *binding) addedAndInstalled(dependency string) error {
	return b.feature.AssertDependencyInstalled(dependency)
}

func (b *binding) commandExecutable(command, maybe string) error {
	variant, err := phrase.Parse(maybe)
	if err != nil {
		return err
	}
	return b.feature.AssertCommandExecutable(command, variant)
}
