// pkg/pip/constants.go
package pip

import "time"

// Field prefixes in `pip show` output stanzas.
const (
	fieldName       = "Name"
	fieldVersion    = "Version"
	fieldRequires   = "Requires"
	fieldRequiredBy = "Required-by"
)

// stanzaSeparator divides packages in multi-package `pip show` output.
const stanzaSeparator = "---"

// DefaultTimeout bounds a single pip invocation.
const DefaultTimeout = 2 * time.Minute

// DefaultProtected lists distributions that pip itself (or this tool) needs
// to function. They are never purged and never followed as dependencies;
// users remove them with the native pip command if they really want to.
var DefaultProtected = []string{"pip", "pip-purger", "setuptools", "wheel"}
