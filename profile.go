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

const profileEndpoint = "/api/users/profile/"

// GetProfile fetches the signed-in donor's account record.
func (h Hemolink) GetProfile(ctx context.Context) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := h.doAuthed(ctx, http.MethodGet, profileEndpoint, nil, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies a partial edit to the donor's account record
// and returns the updated profile.
func (h Hemolink) UpdateProfile(ctx context.Context, patch model.ProfileUpdate) (*model.UserProfile, error) {
	var profile model.UserProfile
	if err := h.doAuthed(ctx, http.MethodPatch, profileEndpoint, patch, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}
