package api

import (
	"fmt"
	"net/http"

	"github.com/pkg/errors"
)

// Kind classifies a client failure.
type Kind int

const (
	// KindUnknown is returned by KindOf for errors not produced by this package.
	KindUnknown Kind = iota
	// KindNetwork means the request never produced an HTTP response.
	KindNetwork
	// KindAuth means the backend answered 401 or 403.
	KindAuth
	// KindValidation means the backend answered 400 or 422.
	KindValidation
	// KindStatus is any other non-success status.
	KindStatus
	// KindDecode means the response body was not the expected JSON.
	KindDecode
)

func (k Kind) String() (name string) {
	switch k {
	case KindNetwork:
		name = "network"
	case KindAuth:
		name = "auth"
	case KindValidation:
		name = "validation"
	case KindStatus:
		name = "status"
	case KindDecode:
		name = "decode"
	default:
		name = "unknown"
	}
	return name
}

// Error is returned by every Client method.
type Error struct {
	Kind   Kind
	Op     string
	Status int
	Err    error
}

func (e *Error) Error() (msg string) {
	switch {
	case e.Status != 0:
		msg = fmt.Sprintf("%s: API error: %d %s", e.Op, e.Status, http.StatusText(e.Status))
	case e.Err != nil:
		msg = fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		msg = fmt.Sprintf("%s: %s error", e.Op, e.Kind)
	}
	return msg
}

// Unwrap returns the underlying transport or decode error, if any.
func (e *Error) Unwrap() (err error) {
	err = e.Err
	return err
}

// KindOf reports the kind of err, or KindUnknown.
func KindOf(err error) (kind Kind) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		kind = apiErr.Kind
	}
	return kind
}

// StatusOf reports the HTTP status carried by err, or 0.
func StatusOf(err error) (status int) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		status = apiErr.Status
	}
	return status
}

// IsAuth reports whether err is an authentication failure.
func IsAuth(err error) (ok bool) {
	ok = KindOf(err) == KindAuth
	return ok
}

// IsNetwork reports whether err is a transport failure.
func IsNetwork(err error) (ok bool) {
	ok = KindOf(err) == KindNetwork
	return ok
}

// IsValidation reports whether the backend rejected the payload.
func IsValidation(err error) (ok bool) {
	ok = KindOf(err) == KindValidation
	return ok
}

func statusError(op string, status int) (err error) {
	kind := KindStatus
	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		kind = KindAuth
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		kind = KindValidation
	}
	err = &Error{Kind: kind, Op: op, Status: status}
	return err
}
