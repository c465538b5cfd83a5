package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, dir, data string) string {
	t.Helper()
	path := filepath.Join(dir, manifestName)
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("write %s: %v", manifestName, err)
	}
	return path
}

func TestFindManifestWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeManifest(t, root, "[package]\nname = \"demo\"\n")
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatal(err)
	}

	got, ok, err := findManifest(nested)
	if err != nil || !ok {
		t.Fatalf("findManifest: ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("findManifest = %q, want %q", got, want)
	}
}

func TestLoadProjectManifest(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, `# demo project
[package]
name = "demo"

[diagnostics]
max = 5
color = "off"

[parse]
strict = true
jobs = 2
`)
	m, ok, err := loadProjectManifest(root)
	if err != nil || !ok {
		t.Fatalf("loadProjectManifest: ok=%v err=%v", ok, err)
	}
	if m.Root != root {
		t.Errorf("Root = %q, want %q", m.Root, root)
	}
	cfg := m.Config
	if cfg.Package.Name != "demo" || cfg.Diagnostics.Max != 5 || cfg.Diagnostics.Color != "off" || !cfg.Parse.Strict || cfg.Parse.Jobs != 2 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if !m.has("parse", "strict") || m.has("package", "version") {
		t.Error("has() does not reflect the keys present in the file")
	}
}

func TestLoadProjectManifestInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"missing package", "[parse]\nstrict = true\n", "missing [package]"},
		{"empty name", "[package]\nname = \"  \"\n", "missing [package].name"},
		{"negative max", "[package]\nname = \"d\"\n[diagnostics]\nmax = -1\n", "[diagnostics].max"},
		{"bad color", "[package]\nname = \"d\"\n[diagnostics]\ncolor = \"rainbow\"\n", "[diagnostics].color"},
		{"negative jobs", "[package]\nname = \"d\"\n[parse]\njobs = -2\n", "[parse].jobs"},
		{"unknown key", "[package]\nname = \"d\"\n[parse]\nfast = true\n", "unknown key"},
		{"broken toml", "[package\nname = \"d\"\n", "failed to parse TOML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			writeManifest(t, root, tt.data)
			_, found, err := loadProjectManifest(root)
			if !found {
				t.Fatal("manifest should be found")
			}
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestManifestStartDir(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "main.lm")
	if err := os.WriteFile(file, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	if got := manifestStartDir(root); got != root {
		t.Errorf("manifestStartDir(dir) = %q, want %q", got, root)
	}
	if got := manifestStartDir(file); got != root {
		t.Errorf("manifestStartDir(file) = %q, want %q", got, root)
	}
}
