// types.go
package resolver

import (
	"sort"
	"strings"
)

// InstalledPackage describes one installed distribution. Requires holds the
// immediate declared requirements only, never the transitive set; names are
// normalized on index construction.
type InstalledPackage struct {
	Name     string
	Version  string
	Requires []string
}

// Index is an immutable snapshot of the installed environment, keyed by
// normalized package name. A Requires entry may name a package that is not
// present in the index (optional extras, system-provided distributions);
// such edges are ignored during traversal.
type Index map[string]InstalledPackage

// NewIndex builds an Index from raw package records. Names and requirement
// lists are normalized, requirement lists are deduplicated and sorted, and
// self-references are dropped. Later records win on duplicate names.
func NewIndex(pkgs []InstalledPackage) Index {
	idx := make(Index, len(pkgs))
	for _, p := range pkgs {
		name := Normalize(p.Name)
		if name == "" {
			continue
		}

		seen := make(map[string]bool, len(p.Requires))
		var requires []string
		for _, dep := range p.Requires {
			dep = Normalize(dep)
			if dep == "" || dep == name || seen[dep] {
				continue
			}
			seen[dep] = true
			requires = append(requires, dep)
		}
		sort.Strings(requires)

		idx[name] = InstalledPackage{
			Name:     name,
			Version:  p.Version,
			Requires: requires,
		}
	}
	return idx
}

// Names returns all installed package names in lexical order.
func (idx Index) Names() []string {
	names := make([]string, 0, len(idx))
	for name := range idx {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dependents returns the names of installed packages that declare name as an
// immediate requirement, in lexical order.
func (idx Index) Dependents(name string) []string {
	name = Normalize(name)
	var dependents []string
	for _, p := range idx {
		if p.Name == name {
			continue
		}
		for _, dep := range p.Requires {
			if dep == name {
				dependents = append(dependents, p.Name)
				break
			}
		}
	}
	sort.Strings(dependents)
	return dependents
}

// Normalize canonicalizes a distribution name the way pip compares them:
// lowercased, with runs of '-', '_' and '.' collapsed to a single hyphen.
func Normalize(name string) string {
	name = strings.TrimSpace(strings.ToLower(name))

	var b strings.Builder
	b.Grow(len(name))
	pending := false
	for _, r := range name {
		if r == '-' || r == '_' || r == '.' {
			pending = b.Len() > 0
			continue
		}
		if pending {
			b.WriteByte('-')
			pending = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
