// pkg/pip/manager.go
package pip

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dbzix/pip-purger/pkg/resolver"
)

// ErrIndexUnavailable indicates the installed-package metadata could not be
// read at all, e.g. no usable pip environment is present.
var ErrIndexUnavailable = errors.New("installed package metadata unavailable")

// NewManager creates a pip manager. The interpreter is taken from the
// config, or auto-detected when unset; detection failure means there is no
// pip environment to read and surfaces as ErrIndexUnavailable.
func NewManager(cfg *Config, exec Executor) (*Manager, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if exec == nil {
		exec = SystemExecutor{}
	}

	logger := cfg.Logger
	if logger == nil {
		if cfg.Debug {
			logger = log.New(os.Stderr, "[PIP] ", log.LstdFlags)
		} else {
			logger = log.New(io.Discard, "", 0)
		}
	}

	python := cfg.Python
	if python == "" {
		detected, err := DetectInterpreter()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrIndexUnavailable, err)
		}
		python = detected
	}

	return &Manager{
		exec:   exec,
		config: cfg,
		logger: logger,
		python: python,
	}, nil
}

// Python returns the interpreter path pip commands run under.
func (m *Manager) Python() string {
	return m.python
}

// Snapshot reads the installed environment once and returns it as an
// immutable index: every installed package with its version and immediate
// requirement names. Two pip invocations back it (`pip list` for the
// package universe, `pip show` for the requirement edges), but callers see
// a single atomic read. Packages whose stanza is missing or unparseable are
// indexed with no requirements.
func (m *Manager) Snapshot(ctx context.Context) (resolver.Index, error) {
	out, err := m.pipOutput(ctx, "list", "--format=json")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexUnavailable, err)
	}

	entries, err := ParseList(out)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexUnavailable, err)
	}
	m.logger.Printf("pip list returned %d packages", len(entries))

	if len(entries) == 0 {
		return resolver.NewIndex(nil), nil
	}

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}

	// pip show exits non-zero when any requested name is unknown to it but
	// still prints the stanzas it found, so partial output is kept.
	showOut, err := m.pipOutput(ctx, append([]string{"show"}, names...)...)
	if err != nil && len(showOut) == 0 {
		return nil, fmt.Errorf("%w: %v", ErrIndexUnavailable, err)
	}

	infos, err := ParseShow(bytes.NewReader(showOut))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrIndexUnavailable, err)
	}

	requires := make(map[string][]string, len(infos))
	for _, info := range infos {
		requires[resolver.Normalize(info.Name)] = info.Requires
	}

	pkgs := make([]resolver.InstalledPackage, 0, len(entries))
	for _, e := range entries {
		pkgs = append(pkgs, resolver.InstalledPackage{
			Name:     e.Name,
			Version:  e.Version,
			Requires: requires[resolver.Normalize(e.Name)],
		})
	}

	return resolver.NewIndex(pkgs), nil
}

// Uninstall removes the given packages one at a time, in the order given,
// stopping at the first failure. Output streams to the terminal.
func (m *Manager) Uninstall(ctx context.Context, names ...string) error {
	for _, name := range names {
		m.logger.Printf("uninstalling %s", name)
		if err := m.pipRun(ctx, "uninstall", "-y", name); err != nil {
			return fmt.Errorf("uninstalling %s: %w", name, err)
		}
	}
	return nil
}

func (m *Manager) pipOutput(ctx context.Context, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, m.config.Timeout)
	defer cancel()
	return m.exec.Output(ctx, m.python, append([]string{"-m", "pip"}, args...)...)
}

func (m *Manager) pipRun(ctx context.Context, args ...string) error {
	ctx, cancel := context.WithTimeout(ctx, m.config.Timeout)
	defer cancel()
	return m.exec.Run(ctx, m.python, append([]string{"-m", "pip"}, args...)...)
}
