// pkg/backend/choco.go
package backend

import (
	"github.com/arc-language/nupkg/pkg/nuget"
)

const (
	// ChocoRepositoryURL is the main Chocolatey community repository
	ChocoRepositoryURL = "https://community.chocolatey.org/api/v2"
)

// ChocoProperties describe the Chocolatey manager
var ChocoProperties = nuget.Properties{
	Name:          string(BackendChoco),
	DisplayName:   "Chocolatey",
	DefaultSource: nuget.Source{Name: "community", URL: ChocoRepositoryURL},
}

// NewChocoBackend creates a new Chocolatey backend
func NewChocoBackend(config *Config) (*NuGetBackend, error) {
	return newNuGetBackend(ChocoProperties, nugetCapabilities, config)
}
