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
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// TransfusionOrder is a request for blood on behalf of a patient.
type TransfusionOrder struct {
	PatientName     string    `json:"patient_name"`
	BloodProduct    BloodType `json:"blood_product"`
	Amount          string    `json:"amount"`
	TransfusionRate string    `json:"transfusion_rate"`
	Reason          string    `json:"reason"`
}

func (o *TransfusionOrder) Validate() error {
	return validation.ValidateStruct(o,
		validation.Field(&o.PatientName, validation.Required.Error("patient name is required")),
		validation.Field(&o.BloodProduct,
			validation.Required.Error("blood product is required"),
			validation.In(bloodTypeValues()...).Error("blood product must be one of the eight ABO/Rh types"),
		),
		validation.Field(&o.Amount, validation.Required.Error("amount is required")),
		validation.Field(&o.TransfusionRate, validation.Required.Error("transfusion rate is required")),
		validation.Field(&o.Reason, validation.Required.Error("reason is required")),
	)
}
