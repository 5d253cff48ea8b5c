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
	"encoding/json"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"

	"github.com/hemolink/hemolink/internal/apierror"
	"github.com/hemolink/hemolink/internal/tokenstore"
)

func TestSignInStoresTokens(t *testing.T) {
	h := newTestClient(t)

	httpmock.RegisterResponder("POST", testBaseURL+"/api/users/signin/",
		func(req *http.Request) (*http.Response, error) {
			var creds map[string]string
			assert.NoError(t, json.NewDecoder(req.Body).Decode(&creds))
			assert.Equal(t, "donor@example.com", creds["email"])

			return httpmock.NewStringResponse(http.StatusOK, `{"access": "a-token", "refresh": "r-token"}`), nil
		})

	err := h.SignIn(context.Background(), "donor@example.com", "hunter22hunter22")
	assert.NoError(t, err)

	tokens, err := h.tokens.Load()
	assert.NoError(t, err)
	assert.Equal(t, "a-token", tokens.Access)
	assert.Equal(t, "r-token", tokens.Refresh)
}

func TestSignInRejected(t *testing.T) {
	h := newTestClient(t)

	httpmock.RegisterResponder("POST", testBaseURL+"/api/users/signin/",
		httpmock.NewStringResponder(http.StatusUnauthorized, `{"error": "Invalid email or password."}`))

	err := h.SignIn(context.Background(), "donor@example.com", "wrong")
	apiErr, ok := err.(apierror.APIError)
	assert.True(t, ok)
	assert.Equal(t, "Invalid email or password.", apiErr.Message)
}

func TestSignInRequiresCredentials(t *testing.T) {
	h := newTestClient(t)

	err := h.SignIn(context.Background(), "", "")
	assert.EqualError(t, err, "please fill in all fields")
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}

func TestAuthedCallRefreshesOnceOn401(t *testing.T) {
	h := newTestClient(t)
	assert.NoError(t, h.tokens.Save(&tokenstore.Tokens{Access: "stale", Refresh: "r-token"}))

	httpmock.RegisterResponder("GET", testBaseURL+"/api/users/profile/",
		func(req *http.Request) (*http.Response, error) {
			if req.Header.Get("Authorization") == "Bearer fresh" {
				return httpmock.NewStringResponse(http.StatusOK,
					`{"first_name": "Ada", "last_name": "Reyes", "username": "areyes", "email": "ada@example.com"}`), nil
			}
			return httpmock.NewStringResponse(http.StatusUnauthorized, `{"detail": "token expired"}`), nil
		})
	httpmock.RegisterResponder("POST", testBaseURL+"/api/users/token/refresh/",
		func(req *http.Request) (*http.Response, error) {
			var body map[string]string
			assert.NoError(t, json.NewDecoder(req.Body).Decode(&body))
			assert.Equal(t, "r-token", body["refresh"])

			return httpmock.NewStringResponse(http.StatusOK, `{"access": "fresh"}`), nil
		})

	profile, err := h.GetProfile(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "Ada", profile.FirstName)

	tokens, err := h.tokens.Load()
	assert.NoError(t, err)
	assert.Equal(t, "fresh", tokens.Access)
}

func TestSessionExpiresWhenRefreshFails(t *testing.T) {
	h := newTestClient(t)
	assert.NoError(t, h.tokens.Save(&tokenstore.Tokens{Access: "stale", Refresh: "r-token"}))

	httpmock.RegisterResponder("GET", testBaseURL+"/api/users/profile/",
		httpmock.NewStringResponder(http.StatusUnauthorized, `{"detail": "token expired"}`))
	httpmock.RegisterResponder("POST", testBaseURL+"/api/users/token/refresh/",
		httpmock.NewStringResponder(http.StatusUnauthorized, `{"detail": "refresh token expired"}`))

	_, err := h.GetProfile(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)

	// Both tokens are cleared; the user has to sign in again.
	tokens, loadErr := h.tokens.Load()
	assert.NoError(t, loadErr)
	assert.Nil(t, tokens)
}

func TestAuthedCallWithoutTokens(t *testing.T) {
	h := newTestClient(t)

	_, err := h.GetProfile(context.Background())
	assert.ErrorIs(t, err, ErrNotSignedIn)
	assert.Equal(t, 0, httpmock.GetTotalCallCount())
}

func TestSignOutClearsTokens(t *testing.T) {
	h := newTestClient(t)
	assert.NoError(t, h.tokens.Save(&tokenstore.Tokens{Access: "a", Refresh: "r"}))

	assert.NoError(t, h.SignOut())

	tokens, err := h.tokens.Load()
	assert.NoError(t, err)
	assert.Nil(t, tokens)
}
