// pkg/nuget/types.go
package nuget

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/arc-language/nupkg/pkg/version"
)

// Source is a configured feed endpoint
type Source struct {
	Name string // Display name (e.g., "community")
	URL  string // Feed base URL (e.g., https://community.chocolatey.org/api/v2)
}

// BaseURL returns the source URL without trailing slashes
func (s Source) BaseURL() string {
	return strings.TrimRight(s.URL, "/")
}

// Candidate is a parsed (id, version) pair that has not been deduplicated yet
type Candidate struct {
	ID      string
	Version string
	Key     version.Key
}

// NewCandidate parses the version of a feed entry
func NewCandidate(id, ver string) Candidate {
	return Candidate{ID: id, Version: ver, Key: version.Parse(ver)}
}

// Package is a search or update result
type Package struct {
	Name             string // Display name derived from the ID
	ID               string // Package ID (e.g., "git")
	Version          string // Version available on the feed
	InstalledVersion string // Locally installed version, update results only
	Source           Source // Feed the package was found on
	Manager          string // Owning manager name (e.g., "choco")
}

// IsUpdate reports whether the package came from an update check
func (p Package) IsUpdate() bool {
	return p.InstalledVersion != ""
}

// InstalledPackage is a locally installed package as reported by the host
type InstalledPackage struct {
	ID      string
	Version string
	Source  Source // Zero value means the manager's default source
}

// PackageDetails contains metadata about a single package version
type PackageDetails struct {
	ID              string   // Package ID
	Version         string   // Version
	Title           string   // Display title
	Description     string   // Description
	Summary         string   // Short summary
	Authors         string   // Authors
	Owners          string   // Owners
	ProjectURL      string   // Project URL
	LicenseURL      string   // License URL
	IconURL         string   // Icon URL
	Tags            string   // Tags (space-separated)
	Dependencies    []string // Dependency IDs
	PackageHash     string   // Package hash
	PackageHashAlgo string   // Hash algorithm
	PackageSize     int64    // Package size in bytes
	Published       string   // Published date
	DownloadCount   int64    // Download count
}

// Properties describe a NuGet-based manager
type Properties struct {
	Name          string // Manager name (e.g., "choco")
	DisplayName   string // Human readable name (e.g., "Chocolatey")
	DefaultSource Source // Used when custom sources are not supported
}

// Capabilities advertise what a manager supports
type Capabilities struct {
	SupportsCustomSources      bool
	SupportsCustomVersions     bool
	SupportsCustomPackageIcons bool
}

// SourceProvider returns the configured sources of a manager
type SourceProvider interface {
	GetSources() []Source
}

// InstalledLister enumerates locally installed packages
type InstalledLister interface {
	GetInstalledPackages(ctx context.Context) ([]InstalledPackage, error)
}

// DetailsProvider fetches package metadata
type DetailsProvider interface {
	Details(ctx context.Context, pkg Package) (*PackageDetails, error)
}

// SourceFunc adapts a function to the SourceProvider interface
type SourceFunc func() []Source

// GetSources calls f
func (f SourceFunc) GetSources() []Source {
	return f()
}

// InstalledFunc adapts a function to the InstalledLister interface
type InstalledFunc func(ctx context.Context) ([]InstalledPackage, error)

// GetInstalledPackages calls f
func (f InstalledFunc) GetInstalledPackages(ctx context.Context) ([]InstalledPackage, error) {
	return f(ctx)
}

// Config configures a NuGet-based package manager
type Config struct {
	Properties   Properties
	Capabilities Capabilities

	Sources   SourceProvider  // Optional: defaults to Properties.DefaultSource
	Installed InstalledLister // Optional: no installed packages when nil
	Details   DetailsProvider // Optional: must be left nil or set to a *FeedDetails

	HTTPClient        *http.Client  // Optional: built from Timeout when nil
	UserAgent         string        // Default: DefaultUserAgent
	Timeout           time.Duration // Default: DefaultTimeout
	Concurrency       int           // Parallel source queries, default 1
	RequestsPerSecond float64       // Throttle, 0 disables

	Debug         bool
	Logger        *log.Logger
	NewTaskLogger func(task TaskType) TaskLogger // Optional: defaults to Logger-backed tasks
}

// PackageManager searches NuGet feeds and discovers updates
type PackageManager struct {
	config  *Config
	querier *Querier
	details DetailsProvider
	logger  *log.Logger
}
