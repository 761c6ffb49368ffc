// Package routes declares the static route table of the client. Each route
// maps a path to a screen, its window title and the roles allowed to reach
// it. The table is built once and read-only at runtime; the navigation
// guard consumes it on every transition.
package routes

import (
	"fmt"

	"github.com/abimaelfv/titulacion-cli/roles"
)

// Route names used across the client. All route lookups go through these
// constants to prevent typos.
const (
	Login    = "login"
	Register = "register"
	Profile  = "profile"
)

// Route describes one navigable screen.
type Route struct {
	Path          string       // URL-style path, unique within the table
	Name          string       // Route name, unique within the table
	Title         string       // Window title set when the route is entered
	RequiredRoles []roles.Role // Empty means no role restriction
}

// RequiresRole reports whether the route restricts access by role.
func (r Route) RequiresRole() bool { return len(r.RequiredRoles) > 0 }

// Allows reports whether role may enter the route. Routes without role
// requirements allow everyone.
func (r Route) Allows(role roles.Role) bool {
	if !r.RequiresRole() {
		return true
	}
	for _, required := range r.RequiredRoles {
		if required == role {
			return true
		}
	}
	return false
}

// Table is an immutable collection of routes indexed by name and path.
type Table struct {
	byName map[string]Route
	byPath map[string]Route
	order  []string
}

// NewTable builds a table from the given routes. Duplicate names or paths
// are a build-time mistake and fail loudly.
func NewTable(rs ...Route) (*Table, error) {
	t := &Table{
		byName: make(map[string]Route, len(rs)),
		byPath: make(map[string]Route, len(rs)),
	}
	for _, r := range rs {
		if r.Name == "" || r.Path == "" {
			return nil, fmt.Errorf("route with empty name or path: %+v", r)
		}
		if _, ok := t.byName[r.Name]; ok {
			return nil, fmt.Errorf("duplicate route name %q", r.Name)
		}
		if _, ok := t.byPath[r.Path]; ok {
			return nil, fmt.Errorf("duplicate route path %q", r.Path)
		}
		t.byName[r.Name] = r
		t.byPath[r.Path] = r
		t.order = append(t.order, r.Name)
	}
	return t, nil
}

// Find returns the route with the given name.
func (t *Table) Find(name string) (Route, bool) {
	r, ok := t.byName[name]
	return r, ok
}

// FindByPath returns the route with the given path.
func (t *Table) FindByPath(path string) (Route, bool) {
	r, ok := t.byPath[path]
	return r, ok
}

// Names returns every route name in declaration order.
func (t *Table) Names() []string {
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}

// All returns every route in declaration order.
func (t *Table) All() []Route {
	rs := make([]Route, 0, len(t.order))
	for _, name := range t.order {
		rs = append(rs, t.byName[name])
	}
	return rs
}
