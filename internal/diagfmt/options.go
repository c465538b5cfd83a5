package diagfmt

// PathMode selects how file paths are shown.
type PathMode uint8

const (
	PathModeAuto PathMode = iota // as given when short, basename when long and absolute
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// String is the mode name understood by source.File.FormatPath.
func (m PathMode) String() string {
	switch m {
	case PathModeAbsolute:
		return "absolute"
	case PathModeRelative:
		return "relative"
	case PathModeBasename:
		return "basename"
	default:
		return "auto"
	}
}

// PrettyOpts configures Pretty.
type PrettyOpts struct {
	Color     bool
	Context   int // source lines shown above the primary line
	PathMode  PathMode
	ShowNotes bool
}
