package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const manifestName = "lumen.toml"

type projectManifest struct {
	Path   string
	Root   string
	Config projectConfig
	meta   toml.MetaData
}

type projectConfig struct {
	Package     packageConfig     `toml:"package"`
	Diagnostics diagnosticsConfig `toml:"diagnostics"`
	Parse       parseConfig       `toml:"parse"`
}

type packageConfig struct {
	Name string `toml:"name"`
}

type diagnosticsConfig struct {
	Max   int    `toml:"max"`
	Color string `toml:"color"`
}

type parseConfig struct {
	Strict bool `toml:"strict"`
	Jobs   int  `toml:"jobs"`
}

// has reports whether the manifest sets the given key.
func (m *projectManifest) has(key ...string) bool {
	return m != nil && m.meta.IsDefined(key...)
}

// findManifest walks up from startDir looking for lumen.toml.
func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// manifestStartDir is the directory the lookup starts from for target: the
// target itself when it is a directory, its parent otherwise.
func manifestStartDir(target string) string {
	if st, err := os.Stat(target); err == nil && st.IsDir() {
		return target
	}
	return filepath.Dir(target)
}

func loadProjectManifest(startDir string) (*projectManifest, bool, error) {
	manifestPath, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, ok, err
	}
	return loadManifestFile(manifestPath)
}

func loadManifestFile(path string) (*projectManifest, bool, error) {
	var cfg projectConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, true, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	m := &projectManifest{
		Path:   path,
		Root:   filepath.Dir(path),
		Config: cfg,
		meta:   meta,
	}
	if err := m.validate(); err != nil {
		return nil, true, err
	}
	return m, true, nil
}

func (m *projectManifest) validate() error {
	if !m.has("package") {
		return fmt.Errorf("%s: missing [package]", m.Path)
	}
	if !m.has("package", "name") || strings.TrimSpace(m.Config.Package.Name) == "" {
		return fmt.Errorf("%s: missing [package].name", m.Path)
	}
	if m.has("diagnostics", "max") && m.Config.Diagnostics.Max < 0 {
		return fmt.Errorf("%s: [diagnostics].max must not be negative", m.Path)
	}
	if m.has("diagnostics", "color") {
		if _, err := readColorMode(m.Config.Diagnostics.Color); err != nil {
			return fmt.Errorf("%s: [diagnostics].color: %w", m.Path, err)
		}
	}
	if m.has("parse", "jobs") && m.Config.Parse.Jobs < 0 {
		return fmt.Errorf("%s: [parse].jobs must not be negative", m.Path)
	}
	if undecoded := m.meta.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("%s: unknown key %q", m.Path, undecoded[0].String())
	}
	return nil
}
