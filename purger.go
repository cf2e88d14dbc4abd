// purger.go
package purger

import (
	"context"

	"github.com/dbzix/pip-purger/pkg/core"
	"github.com/dbzix/pip-purger/pkg/pip"
	"github.com/dbzix/pip-purger/pkg/resolver"
)

// Re-export resolver types for convenience
type (
	Index            = resolver.Index
	InstalledPackage = resolver.InstalledPackage
	Plan             = resolver.Plan
	RequiredByError  = resolver.RequiredByError
)

// Purger ties the pip metadata provider to the removal-set resolver.
type Purger struct {
	pip       *pip.Manager
	protected []string
}

// New creates a Purger from configuration.
func New(cfg *core.Config) (*Purger, error) {
	if cfg == nil {
		cfg = core.DefaultConfig()
	}

	manager, err := pip.NewManager(&pip.Config{
		Python: cfg.Python,
		Debug:  cfg.Debug,
	}, nil)
	if err != nil {
		return nil, &Error{Op: "init", Err: err}
	}

	protected := make([]string, 0, len(pip.DefaultProtected)+len(cfg.Protected))
	protected = append(protected, pip.DefaultProtected...)
	protected = append(protected, cfg.Protected...)

	return &Purger{
		pip:       manager,
		protected: protected,
	}, nil
}

// Snapshot reads the installed environment once.
func (p *Purger) Snapshot(ctx context.Context) (Index, error) {
	idx, err := p.pip.Snapshot(ctx)
	if err != nil {
		return nil, &Error{Op: "snapshot", Err: err}
	}
	return idx, nil
}

// Resolve takes a fresh snapshot and computes the removal plan for target:
// its full transitive dependency closure minus everything a surviving
// package still requires, ordered so dependents uninstall before their
// dependencies.
func (p *Purger) Resolve(ctx context.Context, target string) (*Plan, error) {
	idx, err := p.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	plan, err := resolver.Resolve(idx, target, &resolver.Options{Protected: p.protected})
	if err != nil {
		return nil, &Error{Op: "resolve", Package: target, Err: err}
	}
	return plan, nil
}

// Execute uninstalls the planned packages in order, stopping at the first
// failure. The plan is consumed once and should not be reused.
func (p *Purger) Execute(ctx context.Context, plan *Plan) error {
	if err := p.pip.Uninstall(ctx, plan.Names()...); err != nil {
		return &Error{Op: "uninstall", Package: plan.Target, Err: err}
	}
	return nil
}

// Protected returns the packages this Purger refuses to touch.
func (p *Purger) Protected() []string {
	return p.protected
}

// Python returns the interpreter path the underlying pip manager uses.
func (p *Purger) Python() string {
	return p.pip.Python()
}
