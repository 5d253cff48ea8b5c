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
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jarcoal/httpmock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/hemolink/hemolink/config"
	"github.com/hemolink/hemolink/internal/apierror"
	"github.com/hemolink/hemolink/internal/tokenstore"
	"github.com/hemolink/hemolink/model"
)

const testBaseURL = "http://coordination.example.com"

// newTestClient wires a Hemolink client to httpmock and a throwaway
// token file.
func newTestClient(t *testing.T) Hemolink {
	t.Helper()
	config.MockConfig(&config.Configuration{
		ProjectName: "Hemolink Test",
		Api:         config.ApiConfig{BaseUrl: testBaseURL},
		Token:       config.TokenConfig{File: filepath.Join(t.TempDir(), "tokens.json")},
	})

	client := &http.Client{}
	httpmock.ActivateNonDefault(client)
	t.Cleanup(httpmock.DeactivateAndReset)

	cnf, err := config.Fetch()
	assert.NoError(t, err)
	return Hemolink{client: client, tokens: tokenstore.New(cnf.Token.File)}
}

func validApplication() *model.DonorApplication {
	app := model.NewDonorApplication()
	app.Hospital = 3
	app.FirstName = gofakeit.FirstName()
	app.LastName = gofakeit.LastName()
	app.Address = gofakeit.Address().Address
	// A birthday 34 years and a few weeks ago keeps the entered age
	// consistent with the derived age regardless of when the test runs.
	app.DateOfBirth = time.Now().AddDate(-34, 0, -40).Format(model.DateLayout)
	app.Age = 34
	app.Weight = decimal.RequireFromString("150.5")
	app.Gender = model.GenderMale
	app.BloodType = model.BloodOPositive
	app.Phone = "+1 555-012-3456"
	app.Email = gofakeit.Email()
	for q := model.HealthQuestion(0); q < model.NumHealthQuestions; q++ {
		app.SetAnswer(q, false)
	}
	app.EligibilityConfirmed = true
	app.AttachIDDocument("id.png", "image/png", []byte("fake image bytes"))
	return app
}

func TestSubmitDonationSuccess(t *testing.T) {
	h := newTestClient(t)
	app := validApplication()

	httpmock.RegisterResponder("POST", testBaseURL+"/api/blood_donation/",
		func(req *http.Request) (*http.Response, error) {
			assert.NoError(t, req.ParseMultipartForm(8<<20))

			assert.Equal(t, "3", req.FormValue("hospital"))
			assert.Equal(t, app.FirstName, req.FormValue("first_name"))
			assert.Equal(t, app.DateOfBirth, req.FormValue("date_of_birth"))
			assert.Equal(t, "150.5", req.FormValue("weight"))
			assert.Equal(t, "O+", req.FormValue("blood_type"))
			assert.Equal(t, "false", req.FormValue("recent_illness"))
			assert.Equal(t, "false", req.FormValue("tattoo_or_piercing_last_six_months"))
			assert.Equal(t, "true", req.FormValue("meets_eligibility"))

			files := req.MultipartForm.File["id_card"]
			if assert.Len(t, files, 1) {
				assert.Equal(t, "id.png", files[0].Filename)
				assert.Equal(t, "image/png", files[0].Header.Get("Content-Type"))
			}

			return httpmock.NewStringResponse(http.StatusCreated, `{"id": 42}`), nil
		})

	err := h.SubmitDonation(context.Background(), app)
	assert.NoError(t, err)

	// 201 resets the form to its initial shape and releases the file.
	assert.Equal(t, model.DonorApplication{}, *app)
	assert.Nil(t, app.IDDocument)
	assert.Equal(t, 1, httpmock.GetTotalCallCount())
}

func TestSubmitDonationClientValidationSkipsNetwork(t *testing.T) {
	h := newTestClient(t)

	app := validApplication()
	app.EligibilityConfirmed = false
	app.SetAnswer(model.QuestionHepatitisOrHIV, true)

	err := h.SubmitDonation(context.Background(), app)
	assert.Error(t, err)

	apiErr, ok := err.(apierror.APIError)
	assert.True(t, ok)
	assert.Equal(t, apierror.ErrValidation, apiErr.Code)

	msgs := apierror.Messages(apiErr)
	assert.Contains(t, msgs, "you must confirm that you meet all donation requirements")
	assert.Equal(t, 0, httpmock.GetTotalCallCount())

	// The entered fields survive so the donor can correct and resubmit.
	assert.NotEmpty(t, app.FirstName)
	assert.NotNil(t, app.IDDocument)
}

func TestSubmitDonationServerFieldErrors(t *testing.T) {
	h := newTestClient(t)
	app := validApplication()

	httpmock.RegisterResponder("POST", testBaseURL+"/api/blood_donation/",
		httpmock.NewStringResponder(http.StatusBadRequest,
			`{"email": ["Enter a valid email address."], "phone_number": ["This field may not be blank."]}`))

	err := h.SubmitDonation(context.Background(), app)
	apiErr, ok := err.(apierror.APIError)
	assert.True(t, ok)
	assert.Equal(t, apierror.ErrServerValidation, apiErr.Code)

	msgs := apierror.Messages(apiErr)
	assert.Contains(t, msgs, "email: Enter a valid email address.")
	assert.Contains(t, msgs, "phone_number: This field may not be blank.")

	assert.NotEmpty(t, app.FirstName)
	assert.NotNil(t, app.IDDocument)
}

func TestSubmitDonationDetailError(t *testing.T) {
	h := newTestClient(t)
	app := validApplication()

	httpmock.RegisterResponder("POST", testBaseURL+"/api/blood_donation/",
		httpmock.NewStringResponder(http.StatusInternalServerError, `{"detail": "intake service unavailable"}`))

	err := h.SubmitDonation(context.Background(), app)
	apiErr, ok := err.(apierror.APIError)
	assert.True(t, ok)
	assert.Equal(t, apierror.ErrServerValidation, apiErr.Code)
	assert.Equal(t, "intake service unavailable", apiErr.Message)
}

func TestSubmitDonationUnparseableErrorBody(t *testing.T) {
	h := newTestClient(t)
	app := validApplication()

	httpmock.RegisterResponder("POST", testBaseURL+"/api/blood_donation/",
		httpmock.NewStringResponder(http.StatusBadGateway, "Bad Gateway"))

	err := h.SubmitDonation(context.Background(), app)
	apiErr, ok := err.(apierror.APIError)
	assert.True(t, ok)
	assert.Equal(t, apierror.ErrNetwork, apiErr.Code)
	assert.Contains(t, apiErr.Message, "502")
}

func TestSubmitDonationTimeout(t *testing.T) {
	h := newTestClient(t)
	app := validApplication()

	httpmock.RegisterResponder("POST", testBaseURL+"/api/blood_donation/",
		httpmock.NewErrorResponder(context.DeadlineExceeded))

	err := h.SubmitDonation(context.Background(), app)
	apiErr, ok := err.(apierror.APIError)
	assert.True(t, ok)
	assert.Equal(t, apierror.ErrTimeout, apiErr.Code)
}

func TestSubmitDonationGuardsConcurrentSubmit(t *testing.T) {
	h := newTestClient(t)
	app := validApplication()

	assert.True(t, app.StartSubmission())
	err := h.SubmitDonation(context.Background(), app)
	apiErr, ok := err.(apierror.APIError)
	assert.True(t, ok)
	assert.Equal(t, apierror.ErrUnexpected, apiErr.Code)
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}
