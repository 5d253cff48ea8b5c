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
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

const (
	MinDonorAge = 16
	MaxDonorAge = 120

	// Donor weight window, in pounds.
	MinDonorWeightLbs = 110
	MaxDonorWeightLbs = 500

	// Entered age may drift from the age derived from the date of
	// birth by at most one year.
	ageToleranceYears = 1

	adultAge = 18

	MaxIDDocumentBytes = 5 << 20
)

var (
	minDonorWeight = decimal.NewFromInt(MinDonorWeightLbs)
	maxDonorWeight = decimal.NewFromInt(MaxDonorWeightLbs)

	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s-]*$`)
)

// AcceptedDocumentTypes are the MIME types allowed for the
// identification attachment.
var AcceptedDocumentTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// ValidateForSubmission runs the full eligibility rule set against the
// application as of the given instant. Every violated rule is collected
// and returned together, so a caller can surface the complete list in
// one pass. A nil return means the application is admissible.
func (a *DonorApplication) ValidateForSubmission(now time.Time) error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Hospital,
			validation.Required.Error("no donation center selected"),
			validation.Min(int64(1)).Error("no donation center selected"),
		),
		validation.Field(&a.FirstName, validation.Required.Error("first name is required")),
		validation.Field(&a.LastName, validation.Required.Error("last name is required")),
		validation.Field(&a.Address, validation.Required.Error("address is required")),
		validation.Field(&a.DateOfBirth,
			validation.Required.Error("date of birth is required"),
			validation.Date(DateLayout).Error("date of birth must be a valid date (YYYY-MM-DD)").
				Max(now).RangeError("date of birth cannot be in the future"),
		),
		validation.Field(&a.Age,
			validation.Required.Error("age is required"),
			validation.Min(MinDonorAge).Error(fmt.Sprintf("age must be between %d and %d", MinDonorAge, MaxDonorAge)),
			validation.Max(MaxDonorAge).Error(fmt.Sprintf("age must be between %d and %d", MinDonorAge, MaxDonorAge)),
			validation.By(a.ageMatchesDateOfBirth(now)),
		),
		validation.Field(&a.Weight, validation.By(weightInRange)),
		validation.Field(&a.Gender,
			validation.Required.Error("gender is required"),
			validation.In(GenderMale, GenderFemale, GenderOther).Error("gender must be Male, Female or Other"),
		),
		validation.Field(&a.BloodType,
			validation.Required.Error("blood type is required"),
			validation.In(bloodTypeValues()...).Error("blood type must be one of the eight ABO/Rh types"),
		),
		validation.Field(&a.Phone,
			validation.Required.Error("phone number is required"),
			validation.By(validPhone),
		),
		validation.Field(&a.Email,
			validation.Required.Error("email is required"),
			validation.Match(emailPattern).Error("email must be a valid address"),
		),
		validation.Field(&a.LastDonationDate,
			validation.When(a.LastDonationDate != "",
				validation.Date(DateLayout).Error("last donation date must be a valid date (YYYY-MM-DD)").
					Max(now).RangeError("last donation date cannot be in the future"),
				validation.By(a.donationIntervalElapsed(now)),
			),
		),
		validation.Field(&a.Health,
			validation.By(answersComplete),
			validation.By(noAffirmativeAnswers),
		),
		validation.Field(&a.EligibilityConfirmed, validation.By(mustBeConfirmed)),
		validation.Field(&a.ParentalConsent, validation.By(a.consentCoversMinors)),
		validation.Field(&a.IDDocument, validation.By(acceptableDocument)),
	)
}

func (a *DonorApplication) ageMatchesDateOfBirth(now time.Time) validation.RuleFunc {
	return func(value interface{}) error {
		dob, err := time.Parse(DateLayout, a.DateOfBirth)
		if err != nil {
			// The date of birth carries its own error already.
			return nil
		}
		derived := DerivedAge(dob, now)
		diff := a.Age - derived
		if diff < 0 {
			diff = -diff
		}
		if diff > ageToleranceYears {
			return fmt.Errorf("entered age %d does not match age %d derived from date of birth", a.Age, derived)
		}
		return nil
	}
}

func (a *DonorApplication) donationIntervalElapsed(now time.Time) validation.RuleFunc {
	return func(value interface{}) error {
		last, err := time.Parse(DateLayout, a.LastDonationDate)
		if err != nil || last.After(now) {
			return nil
		}
		required := RequiredIntervalDays(a.Gender)
		elapsed := int(midnight(now).Sub(last) / (24 * time.Hour))
		if elapsed < required {
			return fmt.Errorf("you must wait at least %d days between donations (%d days since your last donation)", required, elapsed)
		}
		return nil
	}
}

func (a *DonorApplication) consentCoversMinors(value interface{}) error {
	if a.Age > 0 && a.Age < adultAge && !a.ParentalConsent {
		return errors.New("parental consent is required for donors under 18")
	}
	return nil
}

func weightInRange(value interface{}) error {
	w, ok := value.(decimal.Decimal)
	if !ok || w.IsZero() {
		return errors.New("weight is required")
	}
	if w.LessThan(minDonorWeight) || w.GreaterThan(maxDonorWeight) {
		return fmt.Errorf("weight must be between %d and %d lbs", MinDonorWeightLbs, MaxDonorWeightLbs)
	}
	return nil
}

func validPhone(value interface{}) error {
	s, _ := value.(string)
	if s == "" {
		return nil
	}
	if !phonePattern.MatchString(s) {
		return errors.New("phone number may only contain digits, spaces, hyphens and a leading +")
	}
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits < 10 {
		return errors.New("phone number must contain at least 10 digits")
	}
	return nil
}

func answersComplete(value interface{}) error {
	answers, ok := value.(HealthAnswers)
	if !ok {
		return errors.New("invalid health answers")
	}
	var missing []string
	for q := HealthQuestion(0); q < NumHealthQuestions; q++ {
		if answers[q] == AnswerUnset {
			missing = append(missing, q.Text())
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("please answer every health question: %s", strings.Join(missing, "; "))
	}
	return nil
}

func noAffirmativeAnswers(value interface{}) error {
	answers, ok := value.(HealthAnswers)
	if !ok {
		return errors.New("invalid health answers")
	}
	for q := HealthQuestion(0); q < NumHealthQuestions; q++ {
		if answers[q] == AnswerYes {
			// Policy: an affirmative screening answer blocks
			// submission rather than warning.
			return errors.New("based on your answers you may not be eligible to donate at this time; please consult a healthcare professional")
		}
	}
	return nil
}

func mustBeConfirmed(value interface{}) error {
	confirmed, _ := value.(bool)
	if !confirmed {
		return errors.New("you must confirm that you meet all donation requirements")
	}
	return nil
}

func acceptableDocument(value interface{}) error {
	doc, _ := value.(*IDDocument)
	if doc == nil || len(doc.Data) == 0 {
		return errors.New("an identification document is required")
	}
	if !AcceptedDocumentTypes[strings.ToLower(doc.ContentType)] {
		return errors.New("identification document must be a JPEG, PNG, WebP or GIF image")
	}
	if doc.Size() > MaxIDDocumentBytes {
		return errors.New("identification document must be 5 MB or smaller")
	}
	return nil
}

func bloodTypeValues() []interface{} {
	values := make([]interface{}, len(BloodTypes))
	for i, bt := range BloodTypes {
		values[i] = bt
	}
	return values
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidationMessages flattens a validation error into the ordered list
// of human-readable messages a caller can display in one pass.
func ValidationMessages(err error) []string {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validation.Errors)
	if !ok {
		return []string{err.Error()}
	}
	keys := make([]string, 0, len(verrs))
	for k := range verrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	messages := make([]string, 0, len(keys))
	for _, k := range keys {
		messages = append(messages, verrs[k].Error())
	}
	return messages
}
