// Package gateway implements the client of the external PPOB backend.
// This file defines the error types shared by all gateway calls so
// handlers can distinguish the failure scenarios: an invalid session
// (AuthError) must trigger logout and a redirect, a rejected request
// (RequestError) is rendered inline, and a transport failure
// (NetworkError) gets a retry affordance.
package gateway

import (
	"errors"
	"fmt"
)

// MaxImageBytes is the largest profile image the backend accepts. The
// check runs client-side before any network call.
const MaxImageBytes = 100 * 1024

// ErrNoToken is returned when an authenticated call is attempted with
// an empty token. No HTTP request is issued in that case.
var ErrNoToken = errors.New("no token found")

// AuthError signals a 401/403 response from an authenticated call.
// Callers must treat it as "token invalid" and end the session.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return "unauthorized"
	}
	return e.Message
}

// RequestError carries the server-supplied message for any other
// non-success response, including HTTP 200 bodies whose envelope
// status field signals failure.
type RequestError struct {
	HTTPStatus int    // HTTP status code of the response
	APIStatus  int    // status field from the response envelope
	Message    string // server-supplied message
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("request failed (http %d, status %d)", e.HTTPStatus, e.APIStatus)
}

// NetworkError wraps a transport failure: the call never completed and
// no response envelope exists.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "network error: " + e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// FileSizeError rejects a profile image exceeding MaxImageBytes before
// any upload is attempted.
type FileSizeError struct {
	Size int64
}

func (e *FileSizeError) Error() string {
	return fmt.Sprintf("image size %d exceeds maximum of %d bytes", e.Size, MaxImageBytes)
}
