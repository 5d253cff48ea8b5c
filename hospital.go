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

	"github.com/hemolink/hemolink/config"
	"github.com/hemolink/hemolink/internal/request"
	"github.com/hemolink/hemolink/model"
)

const hospitalsEndpoint = "/api/hospitals/"

// ListHospitals fetches the donation center directory. The directory is
// read-only context for donor applications.
func (h Hemolink) ListHospitals(ctx context.Context) ([]model.Hospital, error) {
	cnf, err := config.Fetch()
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cnf.Api.BaseUrl+hospitalsEndpoint, nil)
	if err != nil {
		return nil, err
	}

	var hospitals []model.Hospital
	if _, err := request.Call(h.client, req, &hospitals); err != nil {
		return nil, classifyRequestError(err)
	}
	return hospitals, nil
}
