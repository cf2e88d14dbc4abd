package pip_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/dbzix/pip-purger/pkg/pip"
)

// fakeExecutor serves canned pip output instead of running commands.
type fakeExecutor struct {
	listOut []byte
	listErr error
	showOut []byte
	showErr error

	failOn string // uninstall of this package fails
	calls  [][]string
}

func (f *fakeExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	switch args[2] {
	case "list":
		return f.listOut, f.listErr
	case "show":
		return f.showOut, f.showErr
	}
	return nil, fmt.Errorf("unexpected pip subcommand %q", args[2])
}

func (f *fakeExecutor) Run(ctx context.Context, name string, args ...string) error {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.failOn != "" && args[len(args)-1] == f.failOn {
		return errors.New("uninstall failed")
	}
	return nil
}

func newTestManager(c *qt.C, exec pip.Executor) *pip.Manager {
	m, err := pip.NewManager(&pip.Config{Python: "/usr/bin/python3"}, exec)
	c.Assert(err, qt.IsNil)
	return m
}

func TestSnapshot(t *testing.T) {
	c := qt.New(t)

	exec := &fakeExecutor{
		listOut: []byte(`[{"name": "Flask", "version": "3.0.0"}, {"name": "Jinja2", "version": "3.1.3"}, {"name": "MarkupSafe", "version": "2.1.5"}]`),
		showOut: []byte(strings.Join([]string{
			"Name: Flask",
			"Version: 3.0.0",
			"Requires: Jinja2",
			"Required-by: ",
			"---",
			"Name: Jinja2",
			"Version: 3.1.3",
			"Requires: MarkupSafe",
			"Required-by: Flask",
			"---",
			"Name: MarkupSafe",
			"Version: 2.1.5",
			"Requires: ",
			"Required-by: Jinja2",
		}, "\n")),
	}

	idx, err := newTestManager(c, exec).Snapshot(context.Background())
	c.Assert(err, qt.IsNil)

	c.Assert(idx.Names(), qt.DeepEquals, []string{"flask", "jinja2", "markupsafe"})
	c.Assert(idx["flask"].Version, qt.Equals, "3.0.0")
	c.Assert(idx["flask"].Requires, qt.DeepEquals, []string{"jinja2"})
	c.Assert(idx["jinja2"].Requires, qt.DeepEquals, []string{"markupsafe"})
	c.Assert(idx["markupsafe"].Requires, qt.HasLen, 0)

	// One list query plus one show query for all names.
	c.Assert(exec.calls, qt.HasLen, 2)
	c.Assert(exec.calls[1][:4], qt.DeepEquals, []string{"/usr/bin/python3", "-m", "pip", "show"})
	c.Assert(exec.calls[1][4:], qt.DeepEquals, []string{"Flask", "Jinja2", "MarkupSafe"})
}

func TestSnapshotEmptyEnvironment(t *testing.T) {
	c := qt.New(t)

	exec := &fakeExecutor{listOut: []byte(`[]`)}
	idx, err := newTestManager(c, exec).Snapshot(context.Background())
	c.Assert(err, qt.IsNil)
	c.Assert(idx, qt.HasLen, 0)
	c.Assert(exec.calls, qt.HasLen, 1)
}

func TestSnapshotListFails(t *testing.T) {
	c := qt.New(t)

	exec := &fakeExecutor{listErr: errors.New("exec: no such file")}
	_, err := newTestManager(c, exec).Snapshot(context.Background())
	c.Assert(err, qt.ErrorIs, pip.ErrIndexUnavailable)
}

func TestSnapshotListGarbage(t *testing.T) {
	c := qt.New(t)

	exec := &fakeExecutor{listOut: []byte("not json at all")}
	_, err := newTestManager(c, exec).Snapshot(context.Background())
	c.Assert(err, qt.ErrorIs, pip.ErrIndexUnavailable)
}

func TestSnapshotKeepsPartialShowOutput(t *testing.T) {
	c := qt.New(t)

	// pip show exits non-zero when one name is unknown but still prints
	// the stanzas it found; the missing package gets an empty requirement
	// set instead of failing the snapshot.
	exec := &fakeExecutor{
		listOut: []byte(`[{"name": "good", "version": "1.0"}, {"name": "broken", "version": "0.1"}]`),
		showOut: []byte("Name: good\nVersion: 1.0\nRequires: \n"),
		showErr: errors.New("exit status 1"),
	}

	idx, err := newTestManager(c, exec).Snapshot(context.Background())
	c.Assert(err, qt.IsNil)
	c.Assert(idx.Names(), qt.DeepEquals, []string{"broken", "good"})
	c.Assert(idx["broken"].Requires, qt.HasLen, 0)
}

func TestSnapshotShowFailsCompletely(t *testing.T) {
	c := qt.New(t)

	exec := &fakeExecutor{
		listOut: []byte(`[{"name": "good", "version": "1.0"}]`),
		showErr: errors.New("exit status 2"),
	}

	_, err := newTestManager(c, exec).Snapshot(context.Background())
	c.Assert(err, qt.ErrorIs, pip.ErrIndexUnavailable)
}

func TestUninstallOrderAndStopOnFailure(t *testing.T) {
	c := qt.New(t)

	exec := &fakeExecutor{failOn: "jinja2"}
	err := newTestManager(c, exec).Uninstall(context.Background(), "flask", "jinja2", "markupsafe")
	c.Assert(err, qt.ErrorMatches, "uninstalling jinja2: .*")

	// flask and jinja2 were attempted in order; markupsafe never was.
	c.Assert(exec.calls, qt.HasLen, 2)
	c.Assert(exec.calls[0][3:], qt.DeepEquals, []string{"uninstall", "-y", "flask"})
	c.Assert(exec.calls[1][3:], qt.DeepEquals, []string{"uninstall", "-y", "jinja2"})
}

func TestUninstallNothing(t *testing.T) {
	c := qt.New(t)

	exec := &fakeExecutor{}
	err := newTestManager(c, exec).Uninstall(context.Background())
	c.Assert(err, qt.IsNil)
	c.Assert(exec.calls, qt.HasLen, 0)
}
