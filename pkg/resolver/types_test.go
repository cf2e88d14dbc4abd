package resolver_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/dbzix/pip-purger/pkg/resolver"
)

func TestNormalize(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		in   string
		want string
	}{
		{"Flask", "flask"},
		{"flask_sqlalchemy", "flask-sqlalchemy"},
		{"zope.interface", "zope-interface"},
		{"ruamel.yaml.clib", "ruamel-yaml-clib"},
		{"typing--extensions", "typing-extensions"},
		{"backports_._weakref", "backports-weakref"},
		{"  requests  ", "requests"},
		{"", ""},
		{"---", ""},
	}
	for _, test := range tests {
		c.Assert(resolver.Normalize(test.in), qt.Equals, test.want,
			qt.Commentf("input %q", test.in))
	}
}

func TestNewIndexNormalizesAndDeduplicates(t *testing.T) {
	c := qt.New(t)

	idx := resolver.NewIndex([]resolver.InstalledPackage{
		{
			Name:     "Flask",
			Version:  "3.0.0",
			Requires: []string{"Werkzeug", "jinja2", "werkzeug", "flask", ""},
		},
	})

	pkg, ok := idx["flask"]
	c.Assert(ok, qt.IsTrue)
	c.Assert(pkg.Version, qt.Equals, "3.0.0")
	// Sorted, deduplicated, self-reference and empty entries dropped.
	c.Assert(pkg.Requires, qt.DeepEquals, []string{"jinja2", "werkzeug"})
}

func TestIndexNames(t *testing.T) {
	c := qt.New(t)

	idx := resolver.NewIndex([]resolver.InstalledPackage{
		{Name: "werkzeug"},
		{Name: "blinker"},
		{Name: "flask"},
	})
	c.Assert(idx.Names(), qt.DeepEquals, []string{"blinker", "flask", "werkzeug"})
}

func TestIndexDependents(t *testing.T) {
	c := qt.New(t)

	idx := resolver.NewIndex([]resolver.InstalledPackage{
		{Name: "flask", Requires: []string{"jinja2", "werkzeug"}},
		{Name: "admin-panel", Requires: []string{"jinja2"}},
		{Name: "jinja2", Requires: []string{"markupsafe"}},
		{Name: "werkzeug"},
		{Name: "markupsafe"},
	})

	c.Assert(idx.Dependents("jinja2"), qt.DeepEquals, []string{"admin-panel", "flask"})
	c.Assert(idx.Dependents("Jinja2"), qt.DeepEquals, []string{"admin-panel", "flask"})
	c.Assert(idx.Dependents("flask"), qt.HasLen, 0)
}
