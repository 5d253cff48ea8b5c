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
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used across the intake API.
const DateLayout = "2006-01-02"

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
	GenderOther  Gender = "Other"
)

type BloodType string

const (
	BloodAPositive  BloodType = "A+"
	BloodANegative  BloodType = "A-"
	BloodBPositive  BloodType = "B+"
	BloodBNegative  BloodType = "B-"
	BloodABPositive BloodType = "AB+"
	BloodABNegative BloodType = "AB-"
	BloodOPositive  BloodType = "O+"
	BloodONegative  BloodType = "O-"
)

// BloodTypes lists every ABO/Rh type accepted by the intake endpoint.
var BloodTypes = []BloodType{
	BloodAPositive, BloodANegative,
	BloodBPositive, BloodBNegative,
	BloodABPositive, BloodABNegative,
	BloodOPositive, BloodONegative,
}

// Answer is the tri-state response to a health screening question.
// The zero value means the donor has not answered yet.
type Answer string

const (
	AnswerUnset Answer = ""
	AnswerYes   Answer = "yes"
	AnswerNo    Answer = "no"
)

// HealthQuestion indexes the fixed eligibility questionnaire.
type HealthQuestion int

const (
	QuestionRecentIllness HealthQuestion = iota
	QuestionTakingAntibiotics
	QuestionHeartDisease
	QuestionPregnantOrGivenBirth
	QuestionBloodTransfusionLastYear
	QuestionTraveledMalariaRiskArea
	QuestionHepatitisOrHIV
	QuestionTattooOrPiercing

	NumHealthQuestions = iota
)

var healthQuestionTexts = [NumHealthQuestions]string{
	"Have you had a recent illness or infection?",
	"Are you currently taking antibiotics?",
	"Do you have a history of heart disease?",
	"Are you pregnant or have you recently given birth?",
	"Have you received a blood transfusion in the last year?",
	"Have you traveled to a malaria-risk area in the past 12 months?",
	"Do you have a history of hepatitis or HIV?",
	"Have you had a tattoo or piercing in the last 6 months?",
}

var healthQuestionFields = [NumHealthQuestions]string{
	"recent_illness",
	"taking_antibiotics",
	"heart_disease",
	"pregnant_or_given_birth",
	"blood_transfusion_last_year",
	"traveled_malaria_risk_area",
	"hepatitis_or_hiv",
	"tattoo_or_piercing_last_six_months",
}

// Text returns the donor-facing wording of the question.
func (q HealthQuestion) Text() string {
	return healthQuestionTexts[q]
}

// FieldName returns the multipart form field the answer maps to.
func (q HealthQuestion) FieldName() string {
	return healthQuestionFields[q]
}

// HealthAnswers holds one answer slot per questionnaire question, in order.
type HealthAnswers [NumHealthQuestions]Answer

// IDDocument is the identification image attached to an application.
// The application owns the bytes exclusively until the submission
// completes, at which point the reference is released.
type IDDocument struct {
	FileName    string `json:"file_name"`
	ContentType string `json:"content_type"`
	Data        []byte `json:"-"`
}

// Size returns the attachment size in bytes.
func (d *IDDocument) Size() int64 {
	if d == nil {
		return 0
	}
	return int64(len(d.Data))
}

// DonorApplication is the transient form state a prospective donor fills
// in for a single donation center. It is created empty, mutated field by
// field, and reset after a successful submission.
type DonorApplication struct {
	Hospital         int64           `json:"hospital"`
	FirstName        string          `json:"first_name"`
	MiddleName       string          `json:"middle_name,omitempty"`
	LastName         string          `json:"last_name"`
	DateOfBirth      string          `json:"date_of_birth"`
	Age              int             `json:"age"`
	Weight           decimal.Decimal `json:"weight"`
	Gender           Gender          `json:"gender"`
	BloodType        BloodType       `json:"blood_type"`
	LastDonationDate string          `json:"last_donation_date,omitempty"`
	Phone            string          `json:"phone_number"`
	Email            string          `json:"email"`
	Address          string          `json:"address"`
	Health           HealthAnswers   `json:"health_answers"`

	EligibilityConfirmed bool `json:"meets_eligibility"`
	ParentalConsent      bool `json:"parental_consent"`

	IDDocument *IDDocument `json:"id_card,omitempty"`

	// All form interaction is event-driven on a single goroutine; the
	// guard only has to stop a second submit for the same instance
	// while one is outstanding.
	inFlight bool
}

// NewDonorApplication returns an empty application bound to no hospital.
func NewDonorApplication() *DonorApplication {
	return &DonorApplication{}
}

// SetAnswer records the donor's answer to one questionnaire question.
func (a *DonorApplication) SetAnswer(q HealthQuestion, yes bool) {
	if yes {
		a.Health[q] = AnswerYes
	} else {
		a.Health[q] = AnswerNo
	}
}

// AttachIDDocument takes ownership of the identification image.
func (a *DonorApplication) AttachIDDocument(fileName, contentType string, data []byte) {
	a.IDDocument = &IDDocument{FileName: fileName, ContentType: contentType, Data: data}
}

// ReleaseIDDocument drops the attachment reference so the bytes can be
// collected once the submission is done with them.
func (a *DonorApplication) ReleaseIDDocument() {
	a.IDDocument = nil
}

// StartSubmission marks the application as having a submission in
// flight. It returns false if one is already in progress, enforcing
// at most one outstanding request per application instance.
func (a *DonorApplication) StartSubmission() bool {
	if a.inFlight {
		return false
	}
	a.inFlight = true
	return true
}

// FinishSubmission clears the in-flight mark.
func (a *DonorApplication) FinishSubmission() {
	a.inFlight = false
}

// Reset returns the application to its initial empty shape and releases
// the attachment. Called after a successful submission; a failed one
// keeps the entered fields so the donor can correct and resubmit.
func (a *DonorApplication) Reset() {
	*a = DonorApplication{}
}

// DerivedAge computes calendar-correct whole years between dateOfBirth
// and now, decrementing when the current month/day precedes the birth
// month/day.
func DerivedAge(dateOfBirth, now time.Time) int {
	years := now.Year() - dateOfBirth.Year()
	if now.Month() < dateOfBirth.Month() ||
		(now.Month() == dateOfBirth.Month() && now.Day() < dateOfBirth.Day()) {
		years--
	}
	return years
}

// RequiredIntervalDays returns the minimum number of days that must have
// passed since the donor's last donation: 84 for female donors, 56
// otherwise.
func RequiredIntervalDays(g Gender) int {
	if g == GenderFemale {
		return 84
	}
	return 56
}
