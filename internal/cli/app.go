// Package cli wires the client together and exposes it as cobra commands.
// Commands play the part of the workflow screens: they collect input and
// call into the session store or the request pipeline; every navigation
// they trigger runs through the guard.
package cli

import (
	"context"

	"github.com/abimaelfv/titulacion-cli/apiclient"
	"github.com/abimaelfv/titulacion-cli/credential"
	"github.com/abimaelfv/titulacion-cli/internal/config"
	"github.com/abimaelfv/titulacion-cli/internal/validate"
	"github.com/abimaelfv/titulacion-cli/nav"
	"github.com/abimaelfv/titulacion-cli/notify"
	"github.com/abimaelfv/titulacion-cli/pipeline"
	"github.com/abimaelfv/titulacion-cli/routes"
	"github.com/abimaelfv/titulacion-cli/session"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// App holds the wired components shared by all commands.
type App struct {
	Config   *config.Config
	Store    *session.Store
	Pipeline *pipeline.Pipeline
	Nav      *nav.Terminal
	Notifier notify.Notifier
	Log      zerolog.Logger
}

// NewApp assembles the client from configuration. The persisted session is
// rehydrated here, so commands start from the same state the previous run
// left behind.
func NewApp(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*App, error) {
	validate.Init(cfg.InstitutionalDomain)

	api := apiclient.New(cfg.BaseURL, apiclient.WithLogger(log))
	notifier := notify.NewTerminal(notify.WithTimeout(cfg.ToastTimeout))
	navigator := nav.NewTerminal(routes.Default(), nav.WithLogger(log))

	storeOpts := []session.Option{
		session.WithRedirectDelay(cfg.AuthRedirectDelay),
		session.WithLogger(log),
	}
	if cfg.GoogleClientID != "" {
		if verifier, err := credential.NewVerifier(ctx, cfg.GoogleClientID); err != nil {
			log.Warn().Err(err).Msg("google verification unavailable, falling back to unverified decoding")
		} else {
			storeOpts = append(storeOpts, session.WithDecoder(
				credential.DecoderFunc(func(raw string) (credential.Decoded, error) {
					return verifier.Decode(ctx, raw)
				}),
			))
		}
	}

	store := session.New(api, session.NewFileStorage(cfg.StateDir), notifier, navigator, storeOpts...)
	navigator.Bind(store)
	if err := store.Hydrate(); err != nil {
		return nil, err
	}

	pipe := pipeline.New(api, notifier, navigator, store,
		pipeline.WithLogger(log),
		pipeline.WithRedirectDelay(cfg.SubmitRedirectDelay),
	)

	return &App{
		Config:   cfg,
		Store:    store,
		Pipeline: pipe,
		Nav:      navigator,
		Notifier: notifier,
		Log:      log,
	}, nil
}

// Root builds the command tree.
func (a *App) Root() *cobra.Command {
	root := &cobra.Command{
		Use:           "titulacion",
		Short:         "Cliente del proceso de titulación UDH",
		Long:          "Terminal client for the UDH thesis approval workflow: session, navigation and workflow submissions.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		a.loginCmd(),
		a.registerCmd(),
		a.googleCmd(),
		a.logoutCmd(),
		a.whoamiCmd(),
		a.openCmd(),
		a.submitCmd(),
	)
	return root
}
