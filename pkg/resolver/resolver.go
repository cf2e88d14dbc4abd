// resolver.go
package resolver

import (
	"fmt"
)

// Options configures a resolution.
type Options struct {
	// Protected names never enter a removal plan and traversal does not
	// descend through them. Resolving a protected target fails with
	// ErrProtected.
	Protected []string
}

// Resolve computes the ordered removal plan for target against the snapshot
// in idx: the transitive requirement closure of target, minus every package
// that some surviving installed package still requires. The index is never
// mutated; resolving the same target against the same index twice yields an
// identical plan.
func Resolve(idx Index, target string, opts *Options) (*Plan, error) {
	if opts == nil {
		opts = &Options{}
	}
	protected := make(map[string]bool, len(opts.Protected))
	for _, name := range opts.Protected {
		protected[Normalize(name)] = true
	}

	name := Normalize(target)
	if name == "" {
		return nil, fmt.Errorf("%q: %w", target, ErrNotInstalled)
	}
	if protected[name] {
		return nil, fmt.Errorf("%q: %w", name, ErrProtected)
	}
	if _, ok := idx[name]; !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotInstalled)
	}

	// The target itself must not be required by anything else installed.
	if dependents := idx.Dependents(name); len(dependents) > 0 {
		return nil, &RequiredByError{Package: name, Dependents: dependents}
	}

	removable := closure(idx, name, protected)
	retainExternal(idx, removable, name)

	return &Plan{
		Target:   name,
		Packages: order(idx, removable),
	}, nil
}

// closure walks the requirement edges from target and returns the set of
// reachable installed packages, target included. Each node is visited at
// most once, so malformed circular metadata cannot loop. Requirement names
// absent from the index are skipped.
func closure(idx Index, target string, protected map[string]bool) map[string]bool {
	reached := map[string]bool{target: true}
	queue := []string{target}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, dep := range idx[current].Requires {
			if reached[dep] || protected[dep] {
				continue
			}
			if _, installed := idx[dep]; !installed {
				continue
			}
			reached[dep] = true
			queue = append(queue, dep)
		}
	}
	return reached
}

// retainExternal shrinks the candidate set until no surviving package —
// anything in the full index that is not itself a candidate — still requires
// a candidate. Retaining one package can expose a new surviving dependent,
// so the scan repeats until a pass changes nothing. The target never leaves
// the set: Resolve has already refused targets with installed dependents.
func retainExternal(idx Index, removable map[string]bool, target string) {
	for changed := true; changed; {
		changed = false
		for _, p := range idx {
			if removable[p.Name] {
				continue
			}
			for _, dep := range p.Requires {
				if dep != target && removable[dep] {
					delete(removable, dep)
					changed = true
				}
			}
		}
	}
}

// order sequences the candidates so that every package precedes all of its
// own requirements: nothing is uninstalled while a planned package still
// depends on it. Ties break lexically so plans are reproducible. A
// requirement cycle among candidates cannot be ordered; the lexically
// smallest remaining name is emitted to keep the walk terminating.
func order(idx Index, removable map[string]bool) []InstalledPackage {
	pending := make(map[string]int, len(removable)) // planned dependents not yet emitted
	for name := range removable {
		for _, dep := range idx[name].Requires {
			if removable[dep] {
				pending[dep]++
			}
		}
	}

	emitted := make(map[string]bool, len(removable))
	plan := make([]InstalledPackage, 0, len(removable))
	for len(plan) < len(removable) {
		pick := ""
		for name := range removable {
			if emitted[name] || pending[name] != 0 {
				continue
			}
			if pick == "" || name < pick {
				pick = name
			}
		}
		if pick == "" {
			for name := range removable {
				if !emitted[name] && (pick == "" || name < pick) {
					pick = name
				}
			}
		}

		emitted[pick] = true
		plan = append(plan, idx[pick])
		for _, dep := range idx[pick].Requires {
			if removable[dep] && !emitted[dep] {
				pending[dep]--
			}
		}
	}
	return plan
}
