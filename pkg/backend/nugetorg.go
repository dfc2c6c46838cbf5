// pkg/backend/nugetorg.go
package backend

import (
	"github.com/arc-language/nupkg/pkg/nuget"
)

const (
	// NuGetOrgURL is the nuget.org v2 feed
	NuGetOrgURL = "https://www.nuget.org/api/v2"
)

// NuGetOrgProperties describe the nuget.org manager
var NuGetOrgProperties = nuget.Properties{
	Name:          string(BackendNuGet),
	DisplayName:   "NuGet",
	DefaultSource: nuget.Source{Name: "nuget.org", URL: NuGetOrgURL},
}

// NewNuGetOrgBackend creates a new nuget.org backend
func NewNuGetOrgBackend(config *Config) (*NuGetBackend, error) {
	return newNuGetBackend(NuGetOrgProperties, nugetCapabilities, config)
}
