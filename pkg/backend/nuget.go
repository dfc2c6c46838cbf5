// pkg/backend/nuget.go
package backend

import (
	"github.com/arc-language/nupkg/pkg/nuget"
)

// NuGetBackend implements the Backend interface on top of a NuGet feed manager
type NuGetBackend struct {
	*nuget.PackageManager
	config *Config
}

// newNuGetBackend validates and wires one NuGet-based manager
func newNuGetBackend(props nuget.Properties, caps nuget.Capabilities, config *Config) (*NuGetBackend, error) {
	if config == nil {
		config = DefaultConfig()
	}

	nugetConfig := &nuget.Config{
		Properties:        props,
		Capabilities:      caps,
		Sources:           config.Sources,
		Installed:         config.Installed,
		HTTPClient:        config.HTTPClient,
		UserAgent:         config.UserAgent,
		Timeout:           config.Timeout,
		Concurrency:       config.Concurrency,
		RequestsPerSecond: config.RequestsPerSecond,
		Debug:             config.Debug,
		Logger:            config.Logger,
	}
	if config.NewTaskLogger != nil {
		newTask := config.NewTaskLogger
		nugetConfig.NewTaskLogger = func(task nuget.TaskType) nuget.TaskLogger {
			return newTask(props.Name, task)
		}
	}

	manager, err := nuget.NewPackageManager(nugetConfig)
	if err != nil {
		return nil, err
	}

	return &NuGetBackend{
		PackageManager: manager,
		config:         config,
	}, nil
}

// Close cleans up resources
func (b *NuGetBackend) Close() error {
	return nil
}

// nugetCapabilities is what every NuGet-based manager must support
var nugetCapabilities = nuget.Capabilities{
	SupportsCustomSources:      true,
	SupportsCustomVersions:     true,
	SupportsCustomPackageIcons: true,
}

// PropertiesFor returns the properties of a backend type
func PropertiesFor(t BackendType) (nuget.Properties, bool) {
	switch t {
	case BackendChoco:
		return ChocoProperties, true
	case BackendPSGallery:
		return PSGalleryProperties, true
	case BackendNuGet:
		return NuGetOrgProperties, true
	}
	return nuget.Properties{}, false
}
