package notify

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const defaultToastTimeout = 5 * time.Second

var severityColors = map[Severity]lipgloss.Color{
	Success:  lipgloss.Color("42"),  // emerald
	Error:    lipgloss.Color("196"), // red
	Question: lipgloss.Color("33"),  // blue
	Warning:  lipgloss.Color("214"), // amber
	Info:     lipgloss.Color("245"), // gray
}

// Terminal renders notifications on a terminal. Toasts are printed styled
// by severity and tracked until their dismiss timer fires; Confirm runs a
// blocking huh dialog with localized affirm/deny labels.
type Terminal struct {
	mu      sync.Mutex
	out     io.Writer
	timeout time.Duration
	active  *dismissTimer
}

// TerminalOption configures a Terminal.
type TerminalOption func(*Terminal)

// WithOutput redirects rendering, primarily for tests.
func WithOutput(w io.Writer) TerminalOption {
	return func(t *Terminal) { t.out = w }
}

// WithTimeout overrides the toast auto-dismiss timeout.
func WithTimeout(d time.Duration) TerminalOption {
	return func(t *Terminal) { t.timeout = d }
}

// NewTerminal creates a terminal notifier writing to stderr so toasts never
// mix with command output on stdout.
func NewTerminal(opts ...TerminalOption) *Terminal {
	t := &Terminal{out: os.Stderr, timeout: defaultToastTimeout}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var _ Notifier = (*Terminal)(nil)

// Toast renders a styled one-shot notification and arms its dismiss timer.
// Only one toast is tracked at a time; a new toast replaces the previous
// timer, matching how a toast stack collapses on small screens.
func (t *Terminal) Toast(message, title string, severity Severity) {
	color := severityColors[severity]
	if color == "" {
		color = severityColors[Question]
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(color).
		Padding(0, 1)
	header := lipgloss.NewStyle().Bold(true).Foreground(color).
		Render(Icon(severity) + " " + title)

	body := header
	if message != "" {
		body += "\n" + message
	}
	fmt.Fprintln(t.out, style.Render(body))

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active != nil {
		t.active.Stop()
	}
	t.active = newDismissTimer(t.timeout, nil)
}

// Pause suspends the active toast's dismiss countdown, the terminal
// equivalent of hovering it.
func (t *Terminal) Pause() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active != nil {
		t.active.Pause()
	}
}

// Resume restarts the suspended countdown.
func (t *Terminal) Resume() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active != nil {
		t.active.Resume()
	}
}

// ActiveToast reports whether a toast is still on display.
func (t *Terminal) ActiveToast() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active == nil {
		return false
	}
	select {
	case <-t.active.Done():
		return false
	default:
		return true
	}
}

// Confirm runs a blocking confirmation dialog. Dismissing the dialog
// (escape / ctrl-c) counts as a decline, never as an error.
func (t *Terminal) Confirm(message, title string, severity Severity) (bool, error) {
	confirmed := false
	confirm := huh.NewConfirm().
		Title(Icon(severity) + " " + title).
		Description(message).
		Affirmative("Confirmar").
		Negative("No").
		Value(&confirmed)

	if err := huh.NewForm(huh.NewGroup(confirm)).Run(); err != nil {
		if err == huh.ErrUserAborted {
			return false, nil
		}
		return false, fmt.Errorf("confirm dialog: %w", err)
	}
	return confirmed, nil
}
