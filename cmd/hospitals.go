package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func hospitalCommands(app *hemolinkInstance) *cobra.Command {
	hospitalsCmd := &cobra.Command{
		Use:   "hospitals",
		Short: "list donation centers",
		RunE: func(cmd *cobra.Command, args []string) error {
			hospitals, err := app.client.ListHospitals(cmd.Context())
			if err != nil {
				return err
			}
			for _, h := range hospitals {
				fmt.Printf("%d\t%s\t%s\n", h.ID, h.Name, h.Location)
			}
			return nil
		},
	}

	return hospitalsCmd
}
