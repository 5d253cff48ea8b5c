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

// Hospital is a donation center from the directory. It is read-only
// context supplied to an application; nothing in this module mutates it.
type Hospital struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Location      string `json:"location"`
	ContactNumber string `json:"contact_number,omitempty"`
	Image         string `json:"image,omitempty"`
}

// DonationRecord is one appointed donation in the donor's history.
type DonationRecord struct {
	ID        int64    `json:"id"`
	Hospital  Hospital `json:"hospital"`
	BloodType string   `json:"blood_type"`
	Status    string   `json:"status"`
	CreatedAt string   `json:"created_at,omitempty"`
}

// BloodRequestRecord is one transfusion request in the donor's history.
type BloodRequestRecord struct {
	ID          int64  `json:"id"`
	BloodType   string `json:"blood_type"`
	RequestDate string `json:"request_date"`
	Status      string `json:"status"`
	PatientName string `json:"patient_name"`
}

// AppointedRecords is the payload of the records endpoint: the donor's
// appointed donations alongside their blood requests.
type AppointedRecords struct {
	AppointedDonations []DonationRecord     `json:"appointed_donations"`
	AppointedRequests  []BloodRequestRecord `json:"appointed_requests"`
}
