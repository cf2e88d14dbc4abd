// errors.go
package resolver

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotInstalled indicates the requested package is not present in the index
	ErrNotInstalled = errors.New("package is not installed")

	// ErrProtected indicates the requested package is on the protected list
	// and must be removed with pip directly
	ErrProtected = errors.New("package is protected")
)

// RequiredByError reports that the target cannot be purged because other
// installed packages still declare it as a requirement.
type RequiredByError struct {
	Package    string
	Dependents []string // lexical order
}

func (e *RequiredByError) Error() string {
	return fmt.Sprintf("package %q is required by: %s", e.Package, strings.Join(e.Dependents, ", "))
}
