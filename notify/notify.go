// Package notify is the user notification channel: fire-and-forget toasts
// and blocking confirmation dialogs. Severity only drives iconography and
// styling, never behavior.
package notify

// Severity classifies a notification for display purposes.
type Severity string

const (
	Success  Severity = "success"
	Error    Severity = "error"
	Question Severity = "question"
	Warning  Severity = "warning"
	Info     Severity = "info"
)

// Notifier is the notification channel consumed by the session store and
// the request pipeline.
type Notifier interface {
	// Toast shows a non-blocking notification that dismisses itself after
	// a fixed timeout.
	Toast(message, title string, severity Severity)

	// Confirm blocks until the user explicitly affirms or cancels.
	// The error is only returned when the dialog itself could not run;
	// a declined dialog is (false, nil).
	Confirm(message, title string, severity Severity) (bool, error)
}

// icons maps severities to their display glyphs.
var icons = map[Severity]string{
	Success:  "✔",
	Error:    "✘",
	Question: "?",
	Warning:  "!",
	Info:     "i",
}

// Icon returns the display glyph for a severity. Unknown severities fall
// back to the question glyph.
func Icon(s Severity) string {
	if icon, ok := icons[s]; ok {
		return icon
	}
	return icons[Question]
}
