// errors.go
package purger

import (
	"fmt"

	"github.com/dbzix/pip-purger/pkg/pip"
	"github.com/dbzix/pip-purger/pkg/resolver"
)

// Re-export sentinel errors from the owning packages so callers only need
// this package for errors.Is checks.
var (
	// ErrIndexUnavailable indicates the installed-package metadata could not be read
	ErrIndexUnavailable = pip.ErrIndexUnavailable

	// ErrPackageNotInstalled indicates the requested package is not installed
	ErrPackageNotInstalled = resolver.ErrNotInstalled

	// ErrPackageProtected indicates the requested package must be removed with pip directly
	ErrPackageProtected = resolver.ErrProtected
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
