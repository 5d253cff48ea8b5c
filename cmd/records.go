package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func recordCommands(app *hemolinkInstance) *cobra.Command {
	recordsCmd := &cobra.Command{
		Use:   "records",
		Short: "list appointed donations and blood requests",
		RunE: func(cmd *cobra.Command, args []string) error {
			records, err := app.client.ListDonationRecords(cmd.Context())
			if err != nil {
				return err
			}
			for _, d := range records.AppointedDonations {
				fmt.Printf("donation\t%s\t%s\t%s\n", d.Hospital.Name, d.BloodType, d.Status)
			}
			for _, r := range records.AppointedRequests {
				fmt.Printf("request\t%s\t%s\t%s\n", r.PatientName, r.BloodType, r.Status)
			}
			return nil
		},
	}

	return recordsCmd
}
