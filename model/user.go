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

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// UserProfile is the signed-in donor's account record.
type UserProfile struct {
	FirstName  string `json:"first_name"`
	MiddleName string `json:"middle_name,omitempty"`
	LastName   string `json:"last_name"`
	Username   string `json:"username"`
	Contact    string `json:"contact"`
	Address    string `json:"address"`
	Gender     string `json:"gender"`
	Email      string `json:"email"`
}

// ProfileUpdate carries the fields of a partial profile edit. Empty
// fields are omitted from the PATCH body.
type ProfileUpdate struct {
	FirstName  string `json:"first_name,omitempty"`
	MiddleName string `json:"middle_name,omitempty"`
	LastName   string `json:"last_name,omitempty"`
	Username   string `json:"username,omitempty"`
	Contact    string `json:"contact,omitempty"`
	Address    string `json:"address,omitempty"`
	Gender     string `json:"gender,omitempty"`
	Email      string `json:"email,omitempty"`
}

// SignUpForm is a new account registration.
type SignUpForm struct {
	FirstName       string `json:"first_name"`
	MiddleName      string `json:"middle_name,omitempty"`
	LastName        string `json:"last_name"`
	Username        string `json:"username"`
	Contact         string `json:"contact"`
	Address         string `json:"address"`
	Gender          string `json:"gender"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (f *SignUpForm) Validate() error {
	return validation.ValidateStruct(f,
		validation.Field(&f.FirstName,
			validation.Required.Error("first name is required"),
			validation.Length(0, 50).Error("first name must be at most 50 characters"),
		),
		validation.Field(&f.MiddleName,
			validation.Length(0, 50).Error("middle name must be at most 50 characters"),
		),
		validation.Field(&f.LastName,
			validation.Required.Error("last name is required"),
			validation.Length(0, 50).Error("last name must be at most 50 characters"),
		),
		validation.Field(&f.Username,
			validation.Required.Error("username is required"),
			validation.Length(0, 50).Error("username must be at most 50 characters"),
		),
		validation.Field(&f.Contact,
			validation.Required.Error("contact is required"),
			validation.Length(0, 15).Error("contact must be at most 15 characters"),
		),
		validation.Field(&f.Address, validation.Required.Error("address is required")),
		validation.Field(&f.Gender, validation.Required.Error("gender is required")),
		validation.Field(&f.Email,
			validation.Required.Error("email is required"),
			validation.Match(emailPattern).Error("email must be a valid address"),
		),
		validation.Field(&f.Password,
			validation.Required.Error("password is required"),
			validation.Length(0, 128).Error("password must be at most 128 characters"),
		),
		validation.Field(&f.ConfirmPassword, validation.By(f.passwordsMatch)),
	)
}

func (f *SignUpForm) passwordsMatch(value interface{}) error {
	if f.ConfirmPassword != f.Password {
		return errors.New("passwords do not match")
	}
	return nil
}
