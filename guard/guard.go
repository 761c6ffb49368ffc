// Package guard decides, before every route transition, whether the
// navigation proceeds or gets redirected. The decision is a pure function
// of the target route and the current session, total over both: every
// combination yields exactly one of allow, redirect-to-login,
// redirect-to-profile or redirect-to-role-home.
package guard

import (
	"github.com/abimaelfv/titulacion-cli/routes"
	"github.com/abimaelfv/titulacion-cli/session"
)

// Decision is the outcome of evaluating one navigation attempt.
type Decision struct {
	Allow      bool
	RedirectTo string // route name, set when Allow is false
}

func allow() Decision { return Decision{Allow: true} }
func redirect(name string) Decision { return Decision{RedirectTo: name} }

// Evaluate applies the guard rules in order; the first matching rule wins.
// The caller is responsible for the title side effect of entering the
// target route (see nav.Terminal).
//
// A session whose role has no home route panics inside roles.Home: that is
// a configuration error, not a navigable state.
func Evaluate(target routes.Route, s session.Session) Decision {
	authPage := target.Name == routes.Login || target.Name == routes.Register

	// Anonymous users only reach the auth pages.
	if !s.Authenticated() {
		if authPage {
			return allow()
		}
		return redirect(routes.Login)
	}

	// An incomplete profile blocks every workflow screen until filled in.
	if !s.ProfileComplete() && !authPage && target.Name != routes.Profile {
		return redirect(routes.Profile)
	}

	// Authenticated users bounce off the auth pages to their role home.
	if authPage {
		return redirect(s.Role.Home())
	}

	// Role gating, with the jury flag as an override.
	if target.RequiresRole() && !target.Allows(s.Role) && !s.IsJury {
		return redirect(s.Role.Home())
	}

	return allow()
}
