// Package pipeline runs the confirm → call → notify → (navigate|callback)
// sequence every mutating workflow action goes through. One parameterized
// pipeline replaces the three near-identical variants of the original
// client (plain callback, delayed redirect, delayed redirect with
// celebration).
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/abimaelfv/titulacion-cli/apiclient"
	"github.com/abimaelfv/titulacion-cli/notify"
	"github.com/common-nighthawk/go-figure"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const defaultRedirectDelay = 1500 * time.Millisecond

// TokenSource provides the credential stamped on outgoing requests. It is
// read at call time, never cached, so a re-login between two submissions
// is picked up.
type TokenSource interface {
	Token() string
}

// Navigator pushes the client to a route after a successful submission.
type Navigator interface {
	Navigate(route string) error
}

// Request describes one mutating call.
type Request struct {
	Method  string
	URL     string
	Payload any
}

// Options selects the post-success behavior. OnSuccess takes precedence
// over RedirectTo; Celebrate only applies to the redirect path.
type Options struct {
	OnSuccess     func(data json.RawMessage)
	RedirectTo    string
	RedirectDelay time.Duration
	Celebrate     bool
}

// Pipeline wires the collaborators of the submit sequence.
type Pipeline struct {
	api      *apiclient.Client
	notifier notify.Notifier
	nav      Navigator
	tokens   TokenSource

	out          io.Writer
	sleep        func(time.Duration)
	log          zerolog.Logger
	defaultDelay time.Duration
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithOutput redirects the celebration banner, primarily for tests.
func WithOutput(w io.Writer) Option {
	return func(p *Pipeline) { p.out = w }
}

// WithSleep replaces the delay function, for tests.
func WithSleep(sleep func(time.Duration)) Option {
	return func(p *Pipeline) { p.sleep = sleep }
}

// WithLogger attaches a logger.
func WithLogger(log zerolog.Logger) Option {
	return func(p *Pipeline) { p.log = log }
}

// WithRedirectDelay overrides the default delay used when Options carries
// a redirect without its own delay.
func WithRedirectDelay(d time.Duration) Option {
	return func(p *Pipeline) { p.defaultDelay = d }
}

// New creates a Pipeline.
func New(api *apiclient.Client, notifier notify.Notifier, nav Navigator, tokens TokenSource, opts ...Option) *Pipeline {
	p := &Pipeline{
		api:          api,
		notifier:     notifier,
		nav:          nav,
		tokens:       tokens,
		out:          os.Stdout,
		sleep:        time.Sleep,
		log:          zerolog.Nop(),
		defaultDelay: defaultRedirectDelay,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ConfirmAndSend asks the user to confirm, then performs the request and
// surfaces the outcome as a notification. It returns the server-reported
// status string; an empty string means the call never completed — the
// user declined, or the request failed. No error ever propagates past this
// boundary.
func (p *Pipeline) ConfirmAndSend(ctx context.Context, message, title string, severity notify.Severity, req Request, opts Options) string {
	confirmed, err := p.notifier.Confirm(message, title, severity)
	if err != nil {
		p.log.Warn().Err(err).Msg("confirmation dialog failed")
		return ""
	}
	if !confirmed {
		return ""
	}

	reqID := uuid.NewString()
	logger := p.log.With().Str("request_id", reqID).Str("url", req.URL).Logger()

	ok, err := p.api.Do(ctx, req.Method, req.URL, req.Payload, p.tokens.Token())
	if err != nil {
		logger.Debug().Err(err).Msg("submission rejected")
		p.notifyFailure(err)
		return ""
	}
	logger.Debug().Str("status", ok.Status).Msg("submission accepted")

	p.notifier.Toast(ok.Message, "Éxito", notify.Success)

	switch {
	case opts.OnSuccess != nil:
		opts.OnSuccess(ok.Data)
	case opts.RedirectTo != "":
		if opts.Celebrate {
			p.celebrate()
		}
		delay := opts.RedirectDelay
		if delay <= 0 {
			delay = p.defaultDelay
		}
		p.sleep(delay)
		if err := p.nav.Navigate(opts.RedirectTo); err != nil {
			logger.Warn().Err(err).Str("route", opts.RedirectTo).Msg("post-success navigation failed")
		}
	}
	return ok.Status
}

func (p *Pipeline) notifyFailure(err error) {
	if remote, ok := apiclient.AsRemote(err); ok {
		p.notifier.Toast(apiclient.JoinMessages(remote.Messages), "error", notify.Error)
		return
	}
	p.notifier.Toast(err.Error(), "error", notify.Error)
}

func (p *Pipeline) celebrate() {
	banner := figure.NewFigure("Aprobado!", "cybermedium", false)
	figure.Write(p.out, banner)
	fmt.Fprintln(p.out)
}
