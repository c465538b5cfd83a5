package main

import (
	"fmt"

	"github.com/spf13/pflag"

	"lumen/internal/prof"
)

func readProfileConfig(flags *pflag.FlagSet) (prof.Config, error) {
	var (
		cfg prof.Config
		err error
	)
	if cfg.CPUProfile, err = flags.GetString("cpu-profile"); err != nil {
		return prof.Config{}, fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if cfg.MemProfile, err = flags.GetString("mem-profile"); err != nil {
		return prof.Config{}, fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if cfg.RuntimeTrace, err = flags.GetString("runtime-trace"); err != nil {
		return prof.Config{}, fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	return cfg, nil
}

// setupProfiling starts the profilers named by the flags. The returned stop
// function is safe to call more than once.
func setupProfiling(flags *pflag.FlagSet) (func() error, error) {
	cfg, err := readProfileConfig(flags)
	if err != nil {
		return nil, err
	}
	if !cfg.Enabled() {
		return func() error { return nil }, nil
	}
	s, err := prof.Start(cfg)
	if err != nil {
		return nil, err
	}
	return s.Stop, nil
}
