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
	"errors"
	"net/http"

	"github.com/hemolink/hemolink/config"
	"github.com/hemolink/hemolink/internal/request"
	"github.com/hemolink/hemolink/internal/tokenstore"
)

const (
	signinEndpoint  = "/api/users/signin/"
	refreshEndpoint = "/api/users/token/refresh/"
)

// SignIn exchanges the credentials for an access/refresh token pair and
// persists it in the token store. Token issuance itself happens on the
// backend; this client only holds the result.
func (h Hemolink) SignIn(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return errors.New("please fill in all fields")
	}

	cnf, err := config.Fetch()
	if err != nil {
		return err
	}

	payload, err := request.ToJsonReq(map[string]string{"email": email, "password": password})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cnf.Api.BaseUrl+signinEndpoint, payload)
	if err != nil {
		return err
	}

	var tokens tokenstore.Tokens
	if _, err := request.Call(h.client, req, &tokens); err != nil {
		return classifyRequestError(err)
	}
	return h.tokens.Save(&tokens)
}

// SignOut clears the persisted tokens; purely local.
func (h Hemolink) SignOut() error {
	return h.tokens.Clear()
}

// RefreshToken replaces the stored access token using the stored
// refresh token.
func (h Hemolink) RefreshToken(ctx context.Context) error {
	tokens, err := h.tokens.Load()
	if err != nil {
		return err
	}
	if tokens == nil {
		return ErrNotSignedIn
	}
	return h.refresh(ctx, tokens)
}

// refresh swaps the expired access token for a fresh one. A missing or
// rejected refresh token ends the session: the stored pair is cleared
// and the caller gets ErrSessionExpired.
func (h Hemolink) refresh(ctx context.Context, tokens *tokenstore.Tokens) error {
	cnf, err := config.Fetch()
	if err != nil {
		return err
	}
	if tokens.Refresh == "" {
		_ = h.tokens.Clear()
		return ErrSessionExpired
	}

	payload, err := request.ToJsonReq(map[string]string{"refresh": tokens.Refresh})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, cnf.Api.BaseUrl+refreshEndpoint, payload)
	if err != nil {
		return err
	}

	var refreshed struct {
		Access string `json:"access"`
	}
	if _, err := request.Call(h.client, req, &refreshed); err != nil {
		_ = h.tokens.Clear()
		return ErrSessionExpired
	}

	tokens.Access = refreshed.Access
	return h.tokens.Save(tokens)
}
