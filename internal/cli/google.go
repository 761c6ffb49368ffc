package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/abimaelfv/titulacion-cli/credential"
)

const loopbackRedirect = "http://127.0.0.1/callback"

func (a *App) googleCmd() *cobra.Command {
	var raw string
	var register bool

	cmd := &cobra.Command{
		Use:   "google",
		Short: "Iniciar sesión o registrarse con Google",
		Long: `Exchanges a Google ID token for a session. Pass the raw credential with
--credential or pipe it on stdin. The "url" subcommand prints the
browser URL that produces the credential.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if raw == "" {
				scanner := bufio.NewScanner(os.Stdin)
				if scanner.Scan() {
					raw = strings.TrimSpace(scanner.Text())
				}
			}
			if raw == "" {
				return errors.New("no credential provided")
			}

			if register {
				a.Store.GoogleRegister(cmd.Context(), raw)
			} else {
				a.Store.GoogleLogin(cmd.Context(), raw)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&raw, "credential", "", "raw Google ID token")
	cmd.Flags().BoolVar(&register, "register", false, "register instead of logging in")
	cmd.AddCommand(a.googleURLCmd())
	return cmd
}

// googleURLCmd prints the authorization URL that starts the interactive
// credential flow. Kept separate so scripted environments can obtain the
// credential out-of-band and feed it back through `google --credential`.
func (a *App) googleURLCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "url",
		Short: "Mostrar la URL de autorización de Google",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.Config.GoogleClientID == "" {
				return errors.New("googleClientID is not configured")
			}
			verifier, err := credential.NewVerifier(cmd.Context(), a.Config.GoogleClientID)
			if err != nil {
				return err
			}
			state, nonce := uuid.NewString(), uuid.NewString()
			fmt.Fprintln(cmd.OutOrStdout(), verifier.AuthCodeURL(loopbackRedirect, state, nonce))
			return nil
		},
	}
}
