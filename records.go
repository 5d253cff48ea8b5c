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

	"github.com/hemolink/hemolink/model"
)

const recordsEndpoint = "/api/appointed-records/"

// ListDonationRecords fetches the signed-in donor's appointed donations
// and blood requests.
func (h Hemolink) ListDonationRecords(ctx context.Context) (*model.AppointedRecords, error) {
	var records model.AppointedRecords
	if err := h.doAuthed(ctx, http.MethodGet, recordsEndpoint, nil, &records); err != nil {
		return nil, err
	}
	return &records, nil
}
