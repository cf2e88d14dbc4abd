// plan.go
package resolver

import (
	"fmt"
	"sort"
	"strings"
)

// Plan is the ordered removal list for one resolution. Packages is in
// uninstall order: every entry precedes all of its own requirements.
// A plan is consumed once by the uninstall executor and discarded.
type Plan struct {
	Target   string
	Packages []InstalledPackage
}

// Names returns the package names in uninstall order.
func (p *Plan) Names() []string {
	names := make([]string, len(p.Packages))
	for i, pkg := range p.Packages {
		names[i] = pkg.Name
	}
	return names
}

// Dependencies returns the names that will be removed alongside the target,
// in lexical order for display.
func (p *Plan) Dependencies() []string {
	deps := make([]string, 0, len(p.Packages))
	for _, pkg := range p.Packages {
		if pkg.Name != p.Target {
			deps = append(deps, pkg.Name)
		}
	}
	sort.Strings(deps)
	return deps
}

// Summary renders the one-line human-facing description of the plan.
func (p *Plan) Summary() string {
	deps := p.Dependencies()
	if len(deps) == 0 {
		return fmt.Sprintf("Package '%s' will be uninstalled.", p.Target)
	}
	return fmt.Sprintf("Package '%s' will be uninstalled with its dependencies: %s.",
		p.Target, strings.Join(deps, ", "))
}
