// nupkg.go
package nupkg

import (
	"context"
	"fmt"

	"github.com/arc-language/nupkg/pkg/backend"
	"github.com/arc-language/nupkg/pkg/nuget"
)

// Re-export backend types for convenience
type (
	BackendType    = backend.BackendType
	Config         = backend.Config
	Package        = nuget.Package
	PackageDetails = nuget.PackageDetails
	Source         = nuget.Source
)

// Re-export backend constants
const (
	BackendChoco     = backend.BackendChoco
	BackendPSGallery = backend.BackendPSGallery
	BackendNuGet     = backend.BackendNuGet
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return backend.DefaultConfig()
}

// Manager is the entry point for searching feeds and listing updates
type Manager struct {
	backend backend.Backend
	config  *backend.Config
}

// NewManager creates a new manager for the specified backend. A backend
// that violates the NuGet manager contract fails here.
func NewManager(backendType backend.BackendType, config *backend.Config) (*Manager, error) {
	if config == nil {
		config = backend.DefaultConfig()
	}

	var b backend.Backend
	var err error

	switch backendType {
	case backend.BackendChoco:
		b, err = backend.NewChocoBackend(config)
	case backend.BackendPSGallery:
		b, err = backend.NewPSGalleryBackend(config)
	case backend.BackendNuGet:
		b, err = backend.NewNuGetOrgBackend(config)
	default:
		return nil, &Error{Op: "new manager", Err: fmt.Errorf("%w: %s", ErrUnsupportedBackend, backendType)}
	}

	if err != nil {
		return nil, &Error{Op: "initializing backend", Err: fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)}
	}

	return &Manager{
		backend: b,
		config:  config,
	}, nil
}

// Search searches every source for packages matching query. Sources that
// fail are skipped, so the result may be partial.
func (m *Manager) Search(ctx context.Context, query string) ([]Package, error) {
	if query == "" {
		return nil, &Error{Op: "search", Err: ErrEmptyQuery}
	}
	return m.backend.FindPackages(ctx, query), nil
}

// Updates lists available updates for the installed packages
func (m *Manager) Updates(ctx context.Context) []Package {
	return m.backend.GetAvailableUpdates(ctx)
}

// Info retrieves the details of a package. An empty version asks for the
// latest one; a zero source means the backend's default source.
func (m *Manager) Info(ctx context.Context, id, version string, source Source) (*PackageDetails, error) {
	if id == "" {
		return nil, &Error{Op: "info", Err: ErrInvalidPackage}
	}

	details, err := m.backend.Details(ctx, Package{ID: id, Version: version, Source: source})
	if err != nil {
		return nil, &Error{Op: "info", Package: id, Err: err}
	}
	return details, nil
}

// Sources returns the feeds the backend searches
func (m *Manager) Sources() []Source {
	return m.backend.Sources()
}

// Backend returns the name of the active backend
func (m *Manager) Backend() string {
	return m.backend.Name()
}

// Close cleans up any resources used by the manager
func (m *Manager) Close() error {
	return m.backend.Close()
}
