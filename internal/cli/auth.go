package cli

import (
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// promptCredentials asks for email and password when they were not passed
// as flags.
func promptCredentials(email, password *string) error {
	var fields []huh.Field
	if *email == "" {
		fields = append(fields, huh.NewInput().
			Title("Correo institucional").
			Placeholder("nombre@udh.edu.pe").
			Value(email))
	}
	if *password == "" {
		fields = append(fields, huh.NewInput().
			Title("Contraseña").
			EchoMode(huh.EchoModePassword).
			Value(password))
	}
	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

func (a *App) loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Iniciar sesión con correo institucional",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := promptCredentials(&email, &password); err != nil {
				return err
			}
			// Outcomes surface through notifications; login itself
			// never returns an error.
			a.Store.Login(cmd.Context(), email, password)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "institutional email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func (a *App) registerCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Registrarse con correo institucional",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := promptCredentials(&email, &password); err != nil {
				return err
			}
			a.Store.Register(cmd.Context(), email, password)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "institutional email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}

func (a *App) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Cerrar la sesión actual",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.Store.Logout()
			return nil
		},
	}
}
