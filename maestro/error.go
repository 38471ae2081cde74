// Copyright (C) BotCity. All rights reserved.
//
// SPDX-License-Identifier: Apache-2.0

package maestro

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Configuration errors returned by Login before any request is made.
var (
	ErrMissingServer = errors.New("server is required")
	ErrMissingLogin  = errors.New("login is required")
	ErrMissingKey    = errors.New("key is required")
)

// ErrNotLoggedIn is returned by every authenticated method when no
// access token is available. No request is made in that case.
var ErrNotLoggedIn = errors.New("access token not available: call Login first")

// APIError is returned when the portal responds to an authenticated
// request with a non-200 status. Message is the server-provided
// "message" field when the body is the standard JSON envelope, and
// the raw body text otherwise.
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Status     string
	Message    string
}

func (e *APIError) Error() string {
	s := fmt.Sprintf("request failed: %s %s: %s", e.Method, e.URL, e.Status)
	if e.Message != "" {
		s = s + ": " + e.Message
	}
	return s
}

func newAPIError(resp *http.Response, buf []byte) *APIError {
	e := &APIError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
	}
	if resp.Request != nil {
		e.Method = resp.Request.Method
		e.URL = requestURL(resp.Request)
	}
	var envelope struct {
		Message string `json:"message"`
	}
	if json.Unmarshal(buf, &envelope) == nil && envelope.Message != "" {
		e.Message = envelope.Message
	} else {
		e.Message = strings.TrimSpace(string(buf))
	}
	return e
}

// LoginError is returned when the login endpoint responds with a
// non-200 status.
type LoginError struct {
	StatusCode int
	Body       string
}

func (e *LoginError) Error() string {
	return fmt.Sprintf("error during login: server returned %d: %s", e.StatusCode, e.Body)
}

// ProtocolError is returned when a 200 response body does not match
// the endpoint's documented shape.
type ProtocolError struct {
	URL string
	Err error
}

func (e *ProtocolError) Error() string {
	return fmt.Sprintf("unexpected response from %s: %v", e.URL, e.Err)
}

func (e *ProtocolError) Unwrap() error {
	return e.Err
}
