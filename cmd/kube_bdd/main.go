package main

import (
	"fmt"
	"os"

	"github.com/cucumber/godog"
	"github.com/spf13/pflag"

	"github.com/hiberbee/kube-bdd/internal/cluster"
	"github.com/hiberbee/kube-bdd/internal/config"
	"github.com/hiberbee/kube-bdd/internal/constants"
	"github.com/hiberbee/kube-bdd/internal/logging"
	"github.com/hiberbee/kube-bdd/internal/messages"
	"github.com/hiberbee/kube-bdd/internal/steperrors"
	"github.com/hiberbee/kube-bdd/internal/steps"
)

func main() {
	opts := godog.Options{}
	godog.BindCommandLineFlags("godog.", &opts)
	configPath := pflag.String("config", os.Getenv(constants.ConfigFileEnvVariable), "path to a YAML configuration file")
	pflag.Parse()

	os.Exit(run(*configPath, &opts, pflag.CommandLine))
}

func run(configPath string, opts *godog.Options, flags *pflag.FlagSet) int {
	cfg, err := config.Load(configPath)
	if err != nil {
		return startupFailed(err)
	}
	logger, err := logging.New(cfg.Log)
	if err != nil {
		return startupFailed(err)
	}
	logging.RouteKlog(logger)
	c, err := cluster.NewFromConfig(cfg.Kubernetes, logger)
	if err != nil {
		return startupFailed(err)
	}

	applyFeatureConfig(opts, cfg.Features, flags)
	suite := steps.NewSuite(c, cfg, logger)
	testSuite := godog.TestSuite{
		Name:                 "kube-bdd",
		TestSuiteInitializer: suite.InitializeTestSuite,
		ScenarioInitializer:  suite.InitializeScenario,
		Options:              opts,
	}
	status := testSuite.Run()

	if cfg.Metrics.Textfile != "" {
		if err := suite.Metrics().WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logger.Error("Failed to write metrics", constants.LOG_ERROR, err.Error())
		}
	}
	return status
}

func startupFailed(err error) int {
	fmt.Fprintln(os.Stderr, steperrors.NewStepErrorWithCause(err, messages.ConfigurationFailed).Error())
	return 2
}
