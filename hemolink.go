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
	"io"
	"net"
	"net/http"
	"net/url"

	"github.com/hemolink/hemolink/config"
	"github.com/hemolink/hemolink/internal/apierror"
	"github.com/hemolink/hemolink/internal/request"
	"github.com/hemolink/hemolink/internal/tokenstore"
)

var (
	// ErrNotSignedIn is returned by operations that need an access
	// token when none is stored. Callers are expected to redirect the
	// user to sign-in.
	ErrNotSignedIn = errors.New("not signed in, please sign in first")

	// ErrSessionExpired is returned when the refresh token is missing
	// or rejected; the local tokens have been cleared.
	ErrSessionExpired = errors.New("session expired, please log in again")
)

// Hemolink is the client for the blood-donation coordination API.
type Hemolink struct {
	client *http.Client
	tokens *tokenstore.Store
}

// NewHemolink initializes a client from the loaded configuration. The
// HTTP client is bounded by the configured request timeout, so every
// call gets at most one timeout-limited attempt.
func NewHemolink() (*Hemolink, error) {
	cnf, err := config.Fetch()
	if err != nil {
		return nil, err
	}
	return &Hemolink{
		client: &http.Client{Timeout: cnf.RequestTimeout()},
		tokens: tokenstore.New(cnf.Token.File),
	}, nil
}

// doAuthed performs a JSON request against an endpoint that requires a
// bearer token. On a 401 the access token is refreshed once and the
// request replayed, mirroring the web client's behavior.
func (h Hemolink) doAuthed(ctx context.Context, method, path string, payload, out interface{}) error {
	cnf, err := config.Fetch()
	if err != nil {
		return err
	}
	tokens, err := h.tokens.Load()
	if err != nil {
		return err
	}
	if tokens == nil || tokens.Access == "" {
		return ErrNotSignedIn
	}

	attempt := func(access string) (*http.Response, error) {
		var body io.Reader
		if payload != nil {
			buf, err := request.ToJsonReq(payload)
			if err != nil {
				return nil, err
			}
			body = buf
		}
		req, err := http.NewRequestWithContext(ctx, method, cnf.Api.BaseUrl+path, body)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+access)
		return request.Call(h.client, req, out)
	}

	resp, err := attempt(tokens.Access)
	if resp != nil && resp.StatusCode == http.StatusUnauthorized {
		if rErr := h.refresh(ctx, tokens); rErr != nil {
			return rErr
		}
		_, err = attempt(tokens.Access)
	}
	if err != nil {
		return classifyRequestError(err)
	}
	return nil
}

// classifyRequestError folds any failure from the request layer into
// the error taxonomy: structured server errors pass through, deadline
// and transport timeouts become TIMEOUT, other transport failures
// become NETWORK_ERROR, and everything else is reported generically.
func classifyRequestError(err error) error {
	var apiErr apierror.APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return apierror.NewAPIError(apierror.ErrTimeout, "the request timed out, please try again", nil)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return apierror.NewAPIError(apierror.ErrTimeout, "the request timed out, please try again", nil)
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return apierror.NewAPIError(apierror.ErrNetwork, "could not reach the server, please check your connection", nil)
	}

	return apierror.NewAPIError(apierror.ErrUnexpected, "an unexpected error occurred", err.Error())
}
