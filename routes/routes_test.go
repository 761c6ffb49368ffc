package routes_test

import (
	"testing"

	"github.com/abimaelfv/titulacion-cli/roles"
	"github.com/abimaelfv/titulacion-cli/routes"
	"github.com/stretchr/testify/require"
)

func TestDefaultTableLookups(t *testing.T) {
	table := routes.Default()

	login, ok := table.Find(routes.Login)
	require.True(t, ok)
	require.Equal(t, "/", login.Path)
	require.False(t, login.RequiresRole())

	byPath, ok := table.FindByPath("/estudiante/designacion-asesor")
	require.True(t, ok)
	require.Equal(t, "designacion-asesor", byPath.Name)
	require.True(t, byPath.Allows(roles.Estudiante))
	require.False(t, byPath.Allows(roles.Asesor))
}

func TestEveryProtectedRouteDeclaresRolesOrIsPublic(t *testing.T) {
	table := routes.Default()
	public := map[string]bool{routes.Login: true, routes.Register: true, routes.Profile: true}
	for _, r := range table.All() {
		if public[r.Name] {
			continue
		}
		require.True(t, r.RequiresRole(), "route %q must declare required roles", r.Name)
	}
}

func TestEveryRoleHomeExists(t *testing.T) {
	table := routes.Default()
	for _, r := range roles.All {
		_, ok := table.Find(r.Home())
		require.True(t, ok, "home route for role %q missing from table", r)
	}
}

func TestNewTableRejectsDuplicates(t *testing.T) {
	_, err := routes.NewTable(
		routes.Route{Path: "/a", Name: "a", Title: "A"},
		routes.Route{Path: "/b", Name: "a", Title: "B"},
	)
	require.Error(t, err)

	_, err = routes.NewTable(
		routes.Route{Path: "/a", Name: "a", Title: "A"},
		routes.Route{Path: "/a", Name: "b", Title: "B"},
	)
	require.Error(t, err)
}
