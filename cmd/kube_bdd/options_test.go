package main

import (
	"testing"

	"github.com/cucumber/godog"
	"github.com/spf13/pflag"

	"github.com/hiberbee/kube-bdd/internal/config"
)

func featuresConfig() *config.FeaturesConfig {
	return &config.FeaturesConfig{
		Paths:       []string{"features"},
		Tags:        "@smoke",
		Format:      "pretty",
		Strict:      true,
		Concurrency: 2,
	}
}

func TestApplyFeatureConfigDefaults(t *testing.T) {
	opts := &godog.Options{}
	applyFeatureConfig(opts, featuresConfig(), nil)

	if len(opts.Paths) != 1 || opts.Paths[0] != "features" {
		t.Errorf("unexpected paths %v", opts.Paths)
	}
	if opts.Format != "pretty" || opts.Tags != "@smoke" || !opts.Strict || opts.Concurrency != 2 {
		t.Errorf("unexpected options %+v", opts)
	}
}

func TestApplyFeatureConfigFlagsWin(t *testing.T) {
	opts := &godog.Options{}
	flags := pflag.NewFlagSet("kube-bdd", pflag.ContinueOnError)
	flags.StringVar(&opts.Format, "godog.format", "pretty", "")
	flags.StringVar(&opts.Tags, "godog.tags", "", "")
	flags.BoolVar(&opts.Strict, "godog.strict", false, "")
	flags.IntVar(&opts.Concurrency, "godog.concurrency", 1, "")

	if err := flags.Parse([]string{"--godog.format=progress", "--godog.concurrency=8", "smoke.feature"}); err != nil {
		t.Fatalf("failed to parse flags: %v", err)
	}
	applyFeatureConfig(opts, featuresConfig(), flags)

	if opts.Format != "progress" || opts.Concurrency != 8 {
		t.Errorf("expected flags to win, got %+v", opts)
	}
	if opts.Tags != "@smoke" || !opts.Strict {
		t.Errorf("expected unset flags to take config values, got %+v", opts)
	}
	if len(opts.Paths) != 1 || opts.Paths[0] != "smoke.feature" {
		t.Errorf("expected positional paths, got %v", opts.Paths)
	}
}
