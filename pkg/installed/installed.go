// pkg/installed/installed.go
package installed

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/arc-language/nupkg/pkg/nuget"
)

// Entry is one [[package]] table of the installed manifest
type Entry struct {
	ID      string `toml:"id"`
	Version string `toml:"version"`
	Source  string `toml:"source"` // Source name or feed URL, empty for the default source
}

type manifestFile struct {
	Packages []Entry `toml:"package"`
}

// Manifest lists locally installed packages from a TOML file, e.g.
//
//	[[package]]
//	id = "git"
//	version = "2.40.0"
//	source = "community"
type Manifest struct {
	path    string
	sources []nuget.Source
}

// New creates a Manifest reading path. Source names in the file are
// resolved against sources.
func New(path string, sources []nuget.Source) *Manifest {
	return &Manifest{path: path, sources: sources}
}

// Path returns the manifest file path
func (m *Manifest) Path() string {
	return m.path
}

// Load reads and parses the manifest. A missing file is an empty manifest.
func (m *Manifest) Load() ([]Entry, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("installed: reading %s: %w", m.path, err)
	}

	var f manifestFile
	if _, err := toml.Decode(string(data), &f); err != nil {
		return nil, fmt.Errorf("installed: failed to parse '%s': %w", m.path, err)
	}

	return f.Packages, nil
}

// GetInstalledPackages returns the manifest entries with their sources resolved
func (m *Manifest) GetInstalledPackages(ctx context.Context) ([]nuget.InstalledPackage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := m.Load()
	if err != nil {
		return nil, err
	}

	packages := make([]nuget.InstalledPackage, 0, len(entries))
	for i, e := range entries {
		if e.ID == "" || e.Version == "" {
			return nil, fmt.Errorf("installed: package %d in '%s' needs both id and version", i+1, m.path)
		}

		source, err := m.resolveSource(e.Source)
		if err != nil {
			return nil, fmt.Errorf("installed: package '%s': %w", e.ID, err)
		}

		packages = append(packages, nuget.InstalledPackage{ID: e.ID, Version: e.Version, Source: source})
	}
	return packages, nil
}

func (m *Manifest) resolveSource(ref string) (nuget.Source, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return nuget.Source{}, nil
	}

	for _, s := range m.sources {
		if strings.EqualFold(s.Name, ref) {
			return s, nil
		}
	}

	if strings.Contains(ref, "://") {
		for _, s := range m.sources {
			if s.BaseURL() == strings.TrimRight(ref, "/") {
				return s, nil
			}
		}
		return nuget.Source{Name: ref, URL: ref}, nil
	}

	return nuget.Source{}, fmt.Errorf("unknown source '%s'", ref)
}

// Save writes entries to the manifest file
func (m *Manifest) Save(entries []Entry) error {
	f, err := os.Create(m.path)
	if err != nil {
		return fmt.Errorf("installed: creating %s: %w", m.path, err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(manifestFile{Packages: entries}); err != nil {
		return fmt.Errorf("installed: writing %s: %w", m.path, err)
	}
	return nil
}
