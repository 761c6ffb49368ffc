package guard_test

import (
	"testing"

	"github.com/abimaelfv/titulacion-cli/guard"
	"github.com/abimaelfv/titulacion-cli/roles"
	"github.com/abimaelfv/titulacion-cli/routes"
	"github.com/abimaelfv/titulacion-cli/session"
	"github.com/stretchr/testify/require"
)

var table = routes.Default()

func route(t *testing.T, name string) routes.Route {
	t.Helper()
	r, ok := table.Find(name)
	require.True(t, ok, "route %q missing", name)
	return r
}

func authenticated(role roles.Role) session.Session {
	return session.Session{
		ID:       "1",
		Token:    "tok",
		FullName: "Ana Quispe",
		Email:    "ana@udh.edu.pe",
		Role:     role,
	}
}

func TestAnonymousRedirectsToLoginEverywhere(t *testing.T) {
	anon := session.Session{}
	for _, r := range table.All() {
		decision := guard.Evaluate(r, anon)
		switch r.Name {
		case routes.Login, routes.Register:
			require.True(t, decision.Allow, "auth page %q must stay reachable", r.Name)
		default:
			require.False(t, decision.Allow, "route %q must be gated", r.Name)
			require.Equal(t, routes.Login, decision.RedirectTo)
		}
	}
}

func TestIncompleteProfileForcesProfileScreen(t *testing.T) {
	s := authenticated(roles.Estudiante)
	s.FullName = ""

	for _, r := range table.All() {
		decision := guard.Evaluate(r, s)
		switch r.Name {
		case routes.Profile:
			require.True(t, decision.Allow)
		case routes.Login, routes.Register:
			// Auth pages bounce to the role home, not to profile.
			require.Equal(t, "estudiante", decision.RedirectTo)
		default:
			require.Equal(t, routes.Profile, decision.RedirectTo, "route %q", r.Name)
		}
	}
}

func TestAuthenticatedBouncesOffAuthPages(t *testing.T) {
	for _, r := range roles.All {
		s := authenticated(r)
		for _, name := range []string{routes.Login, routes.Register} {
			decision := guard.Evaluate(route(t, name), s)
			require.False(t, decision.Allow)
			require.Equal(t, r.Home(), decision.RedirectTo)
		}
	}
}

func TestRoleGating(t *testing.T) {
	juryRoute := route(t, "solicitud-jurado")

	s := authenticated(roles.Estudiante)
	decision := guard.Evaluate(juryRoute, s)
	require.False(t, decision.Allow)
	require.Equal(t, "estudiante", decision.RedirectTo)

	// The jury flag overrides the role requirement.
	s.IsJury = true
	require.True(t, guard.Evaluate(juryRoute, s).Allow)
}

func TestOwnRoleRoutesAllowed(t *testing.T) {
	for _, r := range roles.All {
		s := authenticated(r)
		home := route(t, r.Home())
		require.True(t, guard.Evaluate(home, s).Allow, "role %q must reach its home", r)
	}
}

func TestProfileReachableByEveryAuthenticatedRole(t *testing.T) {
	for _, r := range roles.All {
		require.True(t, guard.Evaluate(route(t, routes.Profile), authenticated(r)).Allow)
	}
}

// Every route and session combination must produce exactly one decision:
// either allow, or a redirect naming a route that exists in the table.
func TestEvaluateIsTotal(t *testing.T) {
	states := []session.Session{{}}
	for _, r := range roles.All {
		full := authenticated(r)
		incomplete := full
		incomplete.FullName = ""
		jury := full
		jury.IsJury = true
		states = append(states, full, incomplete, jury)
	}

	for _, s := range states {
		for _, r := range table.All() {
			decision := guard.Evaluate(r, s)
			if decision.Allow {
				require.Empty(t, decision.RedirectTo)
				continue
			}
			_, ok := table.Find(decision.RedirectTo)
			require.True(t, ok, "redirect target %q must exist", decision.RedirectTo)
		}
	}
}
