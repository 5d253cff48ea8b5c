package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/hemolink/hemolink/internal/apierror"
	"github.com/hemolink/hemolink/model"
)

// loadIDCard reads the identification image and sniffs its media type
// from the leading bytes.
func loadIDCard(application *model.DonorApplication, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "reading id card")
	}
	application.AttachIDDocument(filepath.Base(path), http.DetectContentType(data), data)
	return nil
}

func donateCommands(app *hemolinkInstance) *cobra.Command {
	var formFile string
	var idCardFile string
	var hospitalID int64

	donateCmd := &cobra.Command{
		Use:   "donate",
		Short: "submit a donor eligibility application",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(formFile)
			if err != nil {
				return errors.Wrap(err, "reading application form")
			}

			application := model.NewDonorApplication()
			if err := json.Unmarshal(data, application); err != nil {
				return errors.Wrap(err, "parsing application form")
			}
			if hospitalID != 0 {
				application.Hospital = hospitalID
			}
			if idCardFile != "" {
				if err := loadIDCard(application, idCardFile); err != nil {
					return err
				}
			}

			err = app.client.SubmitDonation(cmd.Context(), application)
			if apiErr, ok := err.(apierror.APIError); ok {
				for _, msg := range apierror.Messages(apiErr) {
					fmt.Fprintln(os.Stderr, msg)
				}
				return err
			}
			if err != nil {
				return err
			}

			fmt.Println("Thank you for your willingness to donate blood!")
			return nil
		},
	}

	donateCmd.Flags().StringVar(&formFile, "form", "", "JSON file holding the donor application")
	donateCmd.Flags().StringVar(&idCardFile, "id-card", "", "identification image to attach")
	donateCmd.Flags().Int64Var(&hospitalID, "hospital", 0, "donation center id, overrides the form")
	_ = donateCmd.MarkFlagRequired("form")

	return donateCmd
}
