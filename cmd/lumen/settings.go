package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// settings are the effective options of one command run. Each value comes
// from an explicit flag, else from lumen.toml, else from the flag default.
type settings struct {
	color          bool
	quiet          bool
	timings        bool
	maxDiagnostics int
	jobs           int
	strict         bool
	useUI          bool
	manifest       *projectManifest
}

type terminals struct {
	stdout bool
	stderr bool
}

func detectTerminals() terminals {
	return terminals{stdout: isTerminal(os.Stdout), stderr: isTerminal(os.Stderr)}
}

// loadSettings resolves the settings for a command operating on target.
func loadSettings(cmd *cobra.Command, target string) (settings, error) {
	manifest, _, err := loadProjectManifest(manifestStartDir(target))
	if err != nil {
		return settings{}, err
	}
	s, err := resolveSettings(cmd.Flags(), manifest, detectTerminals())
	if err != nil {
		return settings{}, err
	}
	color.NoColor = !s.color
	return s, nil
}

func resolveSettings(flags *pflag.FlagSet, manifest *projectManifest, tty terminals) (settings, error) {
	s := settings{manifest: manifest}
	var err error

	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return settings{}, fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if s.timings, err = flags.GetBool("timings"); err != nil {
		return settings{}, fmt.Errorf("failed to get timings flag: %w", err)
	}

	if s.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
		return settings{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	if !flags.Changed("max-diagnostics") && manifest.has("diagnostics", "max") {
		s.maxDiagnostics = manifest.Config.Diagnostics.Max
	}
	if s.maxDiagnostics < 0 {
		return settings{}, fmt.Errorf("--max-diagnostics must not be negative")
	}

	if s.jobs, err = flags.GetInt("jobs"); err != nil {
		return settings{}, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	if !flags.Changed("jobs") && manifest.has("parse", "jobs") {
		s.jobs = manifest.Config.Parse.Jobs
	}
	if s.jobs < 0 {
		return settings{}, fmt.Errorf("--jobs must not be negative")
	}

	if flags.Lookup("strict") != nil {
		if s.strict, err = flags.GetBool("strict"); err != nil {
			return settings{}, fmt.Errorf("failed to get strict flag: %w", err)
		}
	}
	if !flags.Changed("strict") && manifest.has("parse", "strict") {
		s.strict = manifest.Config.Parse.Strict
	}

	colorValue, err := flags.GetString("color")
	if err != nil {
		return settings{}, fmt.Errorf("failed to get color flag: %w", err)
	}
	if !flags.Changed("color") && manifest.has("diagnostics", "color") {
		colorValue = manifest.Config.Diagnostics.Color
	}
	mode, err := readColorMode(colorValue)
	if err != nil {
		return settings{}, err
	}
	s.color = mode.enabled(tty.stderr)

	uiValue, err := flags.GetString("ui")
	if err != nil {
		return settings{}, fmt.Errorf("failed to get ui flag: %w", err)
	}
	ui, err := readUIMode(uiValue)
	if err != nil {
		return settings{}, err
	}
	s.useUI = shouldUseTUI(ui, tty.stdout) && !s.quiet

	return s, nil
}
