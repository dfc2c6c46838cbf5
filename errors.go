// errors.go
package nupkg

import (
	"errors"
	"fmt"

	"github.com/arc-language/nupkg/pkg/nuget"
)

var (
	// ErrPackageNotFound indicates the package was not found
	ErrPackageNotFound = nuget.ErrPackageNotFound

	// ErrInvalidPackage indicates the package specification is invalid
	ErrInvalidPackage = errors.New("invalid package")

	// ErrEmptyQuery indicates a search was requested without a term
	ErrEmptyQuery = errors.New("search query is required")

	// ErrUnsupportedBackend indicates the backend type is unknown
	ErrUnsupportedBackend = errors.New("unsupported backend")

	// ErrInvalidConfiguration indicates a backend violated the manager contract
	ErrInvalidConfiguration = errors.New("invalid backend configuration")
)

// Error wraps an error with additional context
type Error struct {
	Op      string // Operation that failed
	Package string // Package name if applicable
	Err     error  // Underlying error
}

func (e *Error) Error() string {
	if e.Package != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Package, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
