package main

import (
	"github.com/cucumber/godog"
	"github.com/spf13/pflag"

	"github.com/hiberbee/kube-bdd/internal/config"
)

// applyFeatureConfig fills the godog options from the features section.
// Flags given on the command line and positional paths win.
func applyFeatureConfig(opts *godog.Options, cfg *config.FeaturesConfig, flags *pflag.FlagSet) {
	changed := func(name string) bool {
		return flags != nil && flags.Changed("godog."+name)
	}

	if args := positional(flags); len(args) > 0 {
		opts.Paths = args
	} else if len(opts.Paths) == 0 {
		opts.Paths = cfg.Paths
	}
	if !changed("format") {
		opts.Format = cfg.Format
	}
	if !changed("tags") {
		opts.Tags = cfg.Tags
	}
	if !changed("strict") {
		opts.Strict = cfg.Strict
	}
	if !changed("concurrency") {
		opts.Concurrency = cfg.Concurrency
	}
}

func positional(flags *pflag.FlagSet) []string {
	if flags == nil {
		return nil
	}
	return flags.Args()
}
