/*
Copyright 2025 Hemolink Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package hemolink

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hemolink/hemolink/config"
	"github.com/hemolink/hemolink/internal/apierror"
	"github.com/hemolink/hemolink/internal/request"
	"github.com/hemolink/hemolink/model"
)

const (
	intakeEndpoint = "/api/blood_donation/"

	// Multipart field name the identification image is attached under.
	idCardField = "id_card"
)

// SubmitDonation gates the application through the eligibility rule set
// and, when admissible, performs exactly one submission attempt against
// the donation-intake endpoint. No retry is made on failure; the caller
// corrects the application and resubmits.
//
// On a 201 the application is reset to its empty shape and the
// identification attachment released. On any failure the entered fields
// are preserved so the donor can fix them, and the returned error is an
// apierror.APIError carrying displayable messages.
func (h Hemolink) SubmitDonation(ctx context.Context, application *model.DonorApplication) error {
	cnf, err := config.Fetch()
	if err != nil {
		return err
	}

	if !application.StartSubmission() {
		return apierror.NewAPIError(apierror.ErrUnexpected, "a submission for this application is already in progress", nil)
	}
	defer application.FinishSubmission()

	if err := application.ValidateForSubmission(time.Now()); err != nil {
		return apierror.NewAPIError(apierror.ErrValidation,
			"the application failed eligibility validation", model.ValidationMessages(err))
	}

	doc := application.IDDocument
	body, contentType, err := request.ToMultipartReq(intakeFields(application), &request.FilePart{
		FieldName:   idCardField,
		FileName:    doc.FileName,
		ContentType: doc.ContentType,
		Data:        doc.Data,
	})
	if err != nil {
		return apierror.NewAPIError(apierror.ErrUnexpected, "could not encode the submission", err.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, cnf.RequestTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cnf.Api.BaseUrl+intakeEndpoint, body)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrUnexpected, "could not build the submission request", err.Error())
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := h.client.Do(req)
	if err != nil {
		return classifyRequestError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return apierror.NewAPIError(apierror.ErrNetwork, "could not read the server response", err.Error())
	}

	if resp.StatusCode == http.StatusCreated {
		logrus.WithField("hospital", application.Hospital).Info("donor application submitted")
		application.Reset()
		return nil
	}

	return apierror.FromServerResponse(resp.StatusCode, respBody)
}

// intakeFields maps the application onto the intake endpoint's multipart
// fields, in wire order. Every questionnaire answer becomes a named
// boolean flag.
func intakeFields(a *model.DonorApplication) []request.FormField {
	fields := []request.FormField{
		{Name: "hospital", Value: strconv.FormatInt(a.Hospital, 10)},
		{Name: "first_name", Value: a.FirstName},
		{Name: "middle_name", Value: a.MiddleName},
		{Name: "last_name", Value: a.LastName},
		{Name: "phone_number", Value: a.Phone},
		{Name: "address", Value: a.Address},
		{Name: "date_of_birth", Value: a.DateOfBirth},
		{Name: "email", Value: a.Email},
		{Name: "age", Value: strconv.Itoa(a.Age)},
		{Name: "weight", Value: a.Weight.String()},
		{Name: "gender", Value: string(a.Gender)},
		{Name: "blood_type", Value: string(a.BloodType)},
		{Name: "last_donation_date", Value: a.LastDonationDate},
	}
	for q := model.HealthQuestion(0); q < model.NumHealthQuestions; q++ {
		fields = append(fields, request.FormField{
			Name:  q.FieldName(),
			Value: strconv.FormatBool(a.Health[q] == model.AnswerYes),
		})
	}
	return append(fields, request.FormField{
		Name:  "meets_eligibility",
		Value: strconv.FormatBool(a.EligibilityConfirmed),
	})
}
