// pkg/nuget/errors.go
package nuget

import (
	"errors"
	"fmt"
)

var (
	// ErrDetailsProvider indicates the details provider was replaced
	ErrDetailsProvider = errors.New("NuGet-based package managers must not reassign the package details provider")

	// ErrCustomVersions indicates the manager does not support custom versions
	ErrCustomVersions = errors.New("NuGet-based package managers must support custom versions")

	// ErrCustomIcons indicates the manager does not support custom package icons
	ErrCustomIcons = errors.New("NuGet-based package managers must support custom package icons")

	// ErrNoDefaultSource indicates the manager has no default feed
	ErrNoDefaultSource = errors.New("NuGet-based package managers must declare a default source")

	// ErrPackageNotFound indicates the feed returned no entry for a package
	ErrPackageNotFound = errors.New("package not found")
)

// FeedError is a failed feed request. StatusCode is zero when the request
// never got a response.
type FeedError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FeedError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fetching %s: unexpected status %d", e.URL, e.StatusCode)
	}
	return fmt.Sprintf("fetching %s: %v", e.URL, e.Err)
}

func (e *FeedError) Unwrap() error {
	return e.Err
}
