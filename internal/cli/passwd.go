package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BruksfildServices01/quickcut/internal/server"
	"github.com/BruksfildServices01/quickcut/internal/validators"
)

func newPasswdCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "passwd <new-password>",
		Short: "Reset the admin password and revoke every session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password := args[0]
			if len(password) < validators.MinPasswordLength {
				return fmt.Errorf("password must be at least %d characters", validators.MinPasswordLength)
			}

			app, err := server.Bootstrap(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer app.Close()

			if username == "" {
				username = cfg.AdminUsername
			}
			if err := app.Auth.SetPassword(cmd.Context(), username, password); err != nil {
				return err
			}
			fmt.Fprintf(out(cmd), "password updated for %s (%s)\n", username, validators.PasswordStrength(password))
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "admin username (default ADMIN_USERNAME)")
	return cmd
}
