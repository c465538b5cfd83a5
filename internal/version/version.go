package version

import (
	"strings"

	"github.com/fatih/color"
)

// Build metadata for the lumen CLI. Override at build time with
// -ldflags "-X lumen/internal/version.Version=...".
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// GitMessage is an optional git commit message.
	GitMessage = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

var (
	majorColor = color.New(color.FgYellow, color.Bold)
	minorColor = color.New(color.FgGreen, color.Bold)
	patchColor = color.New(color.FgBlue, color.Bold)
)

// Current returns Version trimmed, or "dev" when it is unset.
func Current() string {
	v := strings.TrimSpace(Version)
	if v == "" {
		return "dev"
	}
	return v
}

// Colored renders the current version with each numeric component in its own
// colour. The pre-release suffix is left plain. Colours follow color.NoColor.
func Colored() string {
	v := Current()
	core, suffix, hasSuffix := strings.Cut(v, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return v
	}

	var b strings.Builder
	b.WriteString(majorColor.Sprint(parts[0]))
	b.WriteByte('.')
	b.WriteString(minorColor.Sprint(parts[1]))
	b.WriteByte('.')
	b.WriteString(patchColor.Sprint(parts[2]))
	if hasSuffix {
		b.WriteByte('-')
		b.WriteString(suffix)
	}
	return b.String()
}
