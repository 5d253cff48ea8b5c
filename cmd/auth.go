package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func authCommands(app *hemolinkInstance) *cobra.Command {
	var email string
	var password string

	signinCmd := &cobra.Command{
		Use:   "signin",
		Short: "sign in and store the session tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.client.SignIn(cmd.Context(), email, password); err != nil {
				return err
			}
			fmt.Println("Successfully logged in!")
			return nil
		},
	}
	signinCmd.Flags().StringVar(&email, "email", "", "account email")
	signinCmd.Flags().StringVar(&password, "password", "", "account password")
	_ = signinCmd.MarkFlagRequired("email")
	_ = signinCmd.MarkFlagRequired("password")

	signoutCmd := &cobra.Command{
		Use:   "signout",
		Short: "clear the stored session tokens",
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.client.SignOut()
		},
	}

	authCmd := &cobra.Command{
		Use:   "auth",
		Short: "manage the session",
	}
	authCmd.AddCommand(signinCmd, signoutCmd)

	return authCmd
}
