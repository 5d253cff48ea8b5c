package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hemolink/hemolink/model"
)

func profileCommands(app *hemolinkInstance) *cobra.Command {
	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "show the signed-in donor's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.client.GetProfile(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("%s %s %s (%s)\n", profile.FirstName, profile.MiddleName, profile.LastName, profile.Username)
			fmt.Printf("%s | %s | %s\n", profile.Email, profile.Contact, profile.Address)
			return nil
		},
	}

	var patch model.ProfileUpdate
	updateCmd := &cobra.Command{
		Use:   "update",
		Short: "edit profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.client.UpdateProfile(cmd.Context(), patch)
			if err != nil {
				return err
			}
			fmt.Printf("profile updated: %s %s\n", profile.FirstName, profile.LastName)
			return nil
		},
	}
	updateCmd.Flags().StringVar(&patch.FirstName, "first-name", "", "first name")
	updateCmd.Flags().StringVar(&patch.MiddleName, "middle-name", "", "middle name")
	updateCmd.Flags().StringVar(&patch.LastName, "last-name", "", "last name")
	updateCmd.Flags().StringVar(&patch.Username, "username", "", "username")
	updateCmd.Flags().StringVar(&patch.Contact, "contact", "", "contact number")
	updateCmd.Flags().StringVar(&patch.Address, "address", "", "address")
	updateCmd.Flags().StringVar(&patch.Gender, "gender", "", "gender")
	updateCmd.Flags().StringVar(&patch.Email, "email", "", "email")

	profileCmd.AddCommand(updateCmd)

	return profileCmd
}
