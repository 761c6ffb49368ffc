package notifyfakes

import (
	"sync"

	"github.com/abimaelfv/titulacion-cli/notify"
)

var _ notify.Notifier = (*Recorder)(nil)

// ToastCall captures one Toast invocation.
type ToastCall struct {
	Message  string
	Title    string
	Severity notify.Severity
}

// ConfirmCall captures one Confirm invocation.
type ConfirmCall struct {
	Message  string
	Title    string
	Severity notify.Severity
}

// Recorder is a Notifier that records every call. Confirm answers with the
// scripted decisions in order, defaulting to affirm when the script runs
// out.
type Recorder struct {
	mu       sync.Mutex
	Toasts   []ToastCall
	Confirms []ConfirmCall
	Answers  []bool
}

func NewRecorder(answers ...bool) *Recorder {
	return &Recorder{Answers: answers}
}

func (r *Recorder) Toast(message, title string, severity notify.Severity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Toasts = append(r.Toasts, ToastCall{Message: message, Title: title, Severity: severity})
}

func (r *Recorder) Confirm(message, title string, severity notify.Severity) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Confirms = append(r.Confirms, ConfirmCall{Message: message, Title: title, Severity: severity})
	if len(r.Answers) == 0 {
		return true, nil
	}
	answer := r.Answers[0]
	r.Answers = r.Answers[1:]
	return answer, nil
}

// LastToast returns the most recent toast, if any.
func (r *Recorder) LastToast() (ToastCall, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Toasts) == 0 {
		return ToastCall{}, false
	}
	return r.Toasts[len(r.Toasts)-1], true
}
