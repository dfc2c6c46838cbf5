// pkg/backend/psgallery.go
package backend

import (
	"github.com/arc-language/nupkg/pkg/nuget"
)

const (
	// PSGalleryURL is the PowerShell Gallery v2 feed
	PSGalleryURL = "https://www.powershellgallery.com/api/v2"
)

// PSGalleryProperties describe the PowerShell Gallery manager
var PSGalleryProperties = nuget.Properties{
	Name:          string(BackendPSGallery),
	DisplayName:   "PowerShell Gallery",
	DefaultSource: nuget.Source{Name: "PSGallery", URL: PSGalleryURL},
}

// NewPSGalleryBackend creates a new PowerShell Gallery backend
func NewPSGalleryBackend(config *Config) (*NuGetBackend, error) {
	return newNuGetBackend(PSGalleryProperties, nugetCapabilities, config)
}
