package installed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/arc-language/nupkg/pkg/nuget"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSources = []nuget.Source{
	{Name: "community", URL: "https://community.chocolatey.org/api/v2/"},
	{Name: "internal", URL: "https://nuget.example.com/api/v2"},
}

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "installed.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGetInstalledPackages(t *testing.T) {
	path := writeManifest(t, `
[[package]]
id = "git"
version = "2.40.0"
source = "community"

[[package]]
id = "tool"
version = "1.0"
source = "Internal"

[[package]]
id = "7zip"
version = "23.1"

[[package]]
id = "byurl"
version = "0.1"
source = "https://community.chocolatey.org/api/v2"

[[package]]
id = "adhoc"
version = "3"
source = "http://other.example.com/feed"
`)

	got, err := New(path, testSources).GetInstalledPackages(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []nuget.InstalledPackage{
		{ID: "git", Version: "2.40.0", Source: testSources[0]},
		{ID: "tool", Version: "1.0", Source: testSources[1]},
		{ID: "7zip", Version: "23.1"},
		{ID: "byurl", Version: "0.1", Source: testSources[0]},
		{ID: "adhoc", Version: "3", Source: nuget.Source{Name: "http://other.example.com/feed", URL: "http://other.example.com/feed"}},
	}, got)
}

func TestGetInstalledPackagesMissingFile(t *testing.T) {
	m := New(filepath.Join(t.TempDir(), "missing.toml"), nil)

	got, err := m.GetInstalledPackages(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGetInstalledPackagesErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad toml", "[[package]\nid = "},
		{"unknown source", "[[package]]\nid = \"a\"\nversion = \"1\"\nsource = \"nowhere\"\n"},
		{"missing version", "[[package]]\nid = \"a\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(writeManifest(t, tt.content), testSources).GetInstalledPackages(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestGetInstalledPackagesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New("unused", nil).GetInstalledPackages(ctx)

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSaveThenLoad(t *testing.T) {
	m := New(filepath.Join(t.TempDir(), "installed.toml"), nil)
	entries := []Entry{{ID: "git", Version: "2.40.0", Source: "community"}, {ID: "curl", Version: "8.0"}}

	require.NoError(t, m.Save(entries))
	loaded, err := m.Load()

	require.NoError(t, err)
	assert.Equal(t, entries, loaded)
}
