package driver

import (
	"io/fs"
	"path/filepath"
	"slices"
	"strings"
)

// SourceExt is the extension of source files.
const SourceExt = ".lm"

// IsSourceFile reports whether path names a source file.
func IsSourceFile(path string) bool {
	return strings.HasSuffix(path, SourceExt)
}

// ListFiles returns every source file under dir, sorted, so directory runs
// report in the same order whatever the number of workers.
func ListFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if IsSourceFile(path) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.Sort(files)
	return files, nil
}

// DisplayPath is path relative to dir, falling back to path itself. Directory
// runs name files this way in results and progress events.
func DisplayPath(dir, path string) string {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return filepath.ToSlash(path)
	}
	return filepath.ToSlash(rel)
}
