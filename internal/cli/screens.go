package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/abimaelfv/titulacion-cli/notify"
	"github.com/abimaelfv/titulacion-cli/pipeline"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true).Width(10)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

func (a *App) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Mostrar la sesión actual",
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.Store.Current()
			out := cmd.OutOrStdout()
			if !s.Authenticated() {
				fmt.Fprintln(out, dimStyle.Render("sin sesión"))
				return nil
			}
			fmt.Fprintln(out, labelStyle.Render("Nombre")+s.FullName)
			fmt.Fprintln(out, labelStyle.Render("Correo")+s.Email)
			fmt.Fprintln(out, labelStyle.Render("Rol")+s.Role.String())
			if s.IsJury {
				fmt.Fprintln(out, labelStyle.Render("Jurado")+"sí")
			}
			return nil
		},
	}
}

func (a *App) openCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "open <ruta>",
		Short: "Navegar a una pantalla del proceso",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Nav.Navigate(args[0])
		},
	}
}

// submitCmd is the generic mutating action of a workflow screen: confirm,
// send, notify, and optionally move on. Screens with dedicated commands
// would each call the pipeline exactly like this.
func (a *App) submitCmd() *cobra.Command {
	var (
		method    string
		url       string
		data      string
		message   string
		title     string
		redirect  string
		delay     time.Duration
		celebrate bool
	)

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Enviar una acción del flujo de titulación",
		RunE: func(cmd *cobra.Command, args []string) error {
			if url == "" {
				return errors.New("--url is required")
			}
			var payload any
			if data != "" {
				if err := json.Unmarshal([]byte(data), &payload); err != nil {
					return errors.Wrap(err, "parsing --data")
				}
			}

			status := a.Pipeline.ConfirmAndSend(cmd.Context(),
				message, title, notify.Question,
				pipeline.Request{Method: method, URL: url, Payload: payload},
				pipeline.Options{
					RedirectTo:    redirect,
					RedirectDelay: delay,
					Celebrate:     celebrate,
				})
			if status != "" {
				fmt.Fprintln(cmd.OutOrStdout(), status)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&method, "method", "POST", "HTTP method")
	cmd.Flags().StringVar(&url, "url", "", "endpoint path, e.g. /api/solicitud-asesor")
	cmd.Flags().StringVar(&data, "data", "", "JSON request body")
	cmd.Flags().StringVar(&message, "message", "¿Confirmar el envío?", "confirmation message")
	cmd.Flags().StringVar(&title, "title", "Confirmación", "confirmation title")
	cmd.Flags().StringVar(&redirect, "redirect", "", "route to open after success")
	cmd.Flags().DurationVar(&delay, "delay", 0, "delay before the redirect")
	cmd.Flags().BoolVar(&celebrate, "celebrate", false, "show the celebration banner on success")
	return cmd
}
