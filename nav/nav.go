// Package nav performs route transitions. Every transition runs through
// the navigation guard; redirects are followed until a route admits the
// current session, then the terminal title and screen header are updated.
package nav

import (
	"fmt"
	"io"
	"os"

	"github.com/abimaelfv/titulacion-cli/guard"
	"github.com/abimaelfv/titulacion-cli/routes"
	"github.com/abimaelfv/titulacion-cli/session"
	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Navigator pushes the client to a named route.
type Navigator interface {
	Navigate(route string) error
	Current() string
}

// SessionSource provides the session the guard evaluates against.
type SessionSource interface {
	Current() session.Session
}

// ErrUnknownRoute is returned when the requested route is not in the table.
var ErrUnknownRoute = errors.New("unknown route")

var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("42")).
	BorderStyle(lipgloss.NormalBorder()).
	BorderBottom(true)

// Terminal renders navigations on a terminal: it sets the window title via
// the OSC 0 escape and prints a screen header for the entered route.
type Terminal struct {
	table    *routes.Table
	sessions SessionSource
	out      io.Writer
	current  string
	log      zerolog.Logger
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithOutput redirects rendering, primarily for tests.
func WithOutput(w io.Writer) TerminalOption {
	return func(t *Terminal) { t.out = w }
}

// WithLogger attaches a logger.
func WithLogger(log zerolog.Logger) TerminalOption {
	return func(t *Terminal) { t.log = log }
}

// NewTerminal creates a navigator over the route table. Bind must be
// called with the session source before the first navigation.
func NewTerminal(table *routes.Table, opts ...TerminalOption) *Terminal {
	t := &Terminal{table: table, out: os.Stdout, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Bind attaches the session source. Separate from the constructor because
// the session store and the navigator reference each other.
func (t *Terminal) Bind(sessions SessionSource) { t.sessions = sessions }

var _ Navigator = (*Terminal)(nil)

// Navigate runs the guard for the named route, follows redirects until a
// route admits the session, and renders that route. Redirect chains are
// bounded by the table size; the guard's totality makes longer chains a
// table misconfiguration.
func (t *Terminal) Navigate(name string) error {
	target, ok := t.table.Find(name)
	if !ok {
		return errors.Wrapf(ErrUnknownRoute, "%q", name)
	}

	for hops := 0; hops < len(t.table.Names()); hops++ {
		decision := guard.Evaluate(target, t.sessions.Current())
		if decision.Allow {
			t.render(target)
			return nil
		}

		t.log.Debug().
			Str("from", target.Name).
			Str("to", decision.RedirectTo).
			Msg("guard redirect")

		next, ok := t.table.Find(decision.RedirectTo)
		if !ok {
			return errors.Wrapf(ErrUnknownRoute, "guard redirect target %q", decision.RedirectTo)
		}
		target = next
	}
	return errors.Errorf("redirect loop while navigating to %q", name)
}

// Current returns the name of the route currently on screen.
func (t *Terminal) Current() string { return t.current }

func (t *Terminal) render(target routes.Route) {
	t.current = target.Name
	// OSC 0 sets the terminal window title.
	fmt.Fprintf(t.out, "\x1b]0;%s\a", target.Title)
	fmt.Fprintln(t.out, headerStyle.Render(target.Title))
}
