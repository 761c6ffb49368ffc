package nav_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/abimaelfv/titulacion-cli/nav"
	"github.com/abimaelfv/titulacion-cli/roles"
	"github.com/abimaelfv/titulacion-cli/routes"
	"github.com/abimaelfv/titulacion-cli/session"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type fixedSession struct{ s session.Session }

func (f fixedSession) Current() session.Session { return f.s }

func TestNavigateRendersTitleAndHeader(t *testing.T) {
	var out bytes.Buffer
	term := nav.NewTerminal(routes.Default(), nav.WithOutput(&out))
	term.Bind(fixedSession{session.Session{
		Token: "tok", FullName: "Ana", Role: roles.Estudiante,
	}})

	require.NoError(t, term.Navigate("designacion-asesor"))
	require.Equal(t, "designacion-asesor", term.Current())
	require.Contains(t, out.String(), "\x1b]0;Designación de Asesor\a")
	require.Contains(t, out.String(), "Designación de Asesor")
}

func TestNavigateFollowsGuardRedirect(t *testing.T) {
	var out bytes.Buffer
	term := nav.NewTerminal(routes.Default(), nav.WithOutput(&out))
	term.Bind(fixedSession{session.Session{}})

	require.NoError(t, term.Navigate("estudiante"))
	require.Equal(t, routes.Login, term.Current())
}

func TestNavigateBouncesAuthenticatedOffLogin(t *testing.T) {
	term := nav.NewTerminal(routes.Default(), nav.WithOutput(&strings.Builder{}))
	term.Bind(fixedSession{session.Session{
		Token: "tok", FullName: "Ana", Role: roles.Asesor,
	}})

	require.NoError(t, term.Navigate(routes.Login))
	require.Equal(t, "asesor", term.Current())
}

func TestNavigateUnknownRoute(t *testing.T) {
	term := nav.NewTerminal(routes.Default(), nav.WithOutput(&strings.Builder{}))
	term.Bind(fixedSession{session.Session{}})

	err := term.Navigate("no-existe")
	require.True(t, errors.Is(err, nav.ErrUnknownRoute))
}
