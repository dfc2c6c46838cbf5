// pkg/backend/types.go
package backend

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/arc-language/nupkg/pkg/nuget"
)

// BackendType represents a NuGet-based package manager
type BackendType string

const (
	// BackendChoco uses the Chocolatey community repository
	BackendChoco BackendType = "choco"
	// BackendPSGallery uses the PowerShell Gallery
	BackendPSGallery BackendType = "psgallery"
	// BackendNuGet uses the nuget.org v2 feed
	BackendNuGet BackendType = "nuget"
)

// Types lists every supported backend
func Types() []BackendType {
	return []BackendType{BackendChoco, BackendPSGallery, BackendNuGet}
}

// Backend defines the interface that all package manager backends must implement
type Backend interface {
	// FindPackages searches every source for a term
	FindPackages(ctx context.Context, term string) []nuget.Package

	// GetAvailableUpdates checks installed packages for newer versions
	GetAvailableUpdates(ctx context.Context) []nuget.Package

	// Details retrieves metadata about a package
	Details(ctx context.Context, pkg nuget.Package) (*nuget.PackageDetails, error)

	// Sources returns the feeds a search runs against
	Sources() []nuget.Source

	// Name returns the name of the backend
	Name() string

	// Close cleans up resources
	Close() error
}

// Config holds configuration shared by all backends
type Config struct {
	// Timeout for a single feed request
	Timeout time.Duration

	// Concurrency bounds parallel source queries
	Concurrency int

	// RequestsPerSecond throttles feed requests, 0 disables throttling
	RequestsPerSecond float64

	// UserAgent overrides the default User-Agent header
	UserAgent string

	// HTTPClient overrides the transport
	HTTPClient *http.Client

	// Sources overrides the backend's default source list
	Sources nuget.SourceProvider

	// Installed enumerates locally installed packages
	Installed nuget.InstalledLister

	// Debug enables debug logging
	Debug bool

	// Logger for custom logging
	Logger *log.Logger

	// NewTaskLogger overrides how per-call task loggers are created
	NewTaskLogger func(manager string, task nuget.TaskType) nuget.TaskLogger
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Timeout:     nuget.DefaultTimeout,
		Concurrency: nuget.DefaultConcurrency,
		Debug:       false,
	}
}
