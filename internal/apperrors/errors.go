// Package apperrors defines the coded errors returned to API clients.
// Codes such as "ATHR-002" are part of the public contract.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind groups errors that share an HTTP status.
type Kind string

const (
	KindSignUpRestricted     Kind = "SignUpRestricted"
	KindAuthenticationFailed Kind = "AuthenticationFailed"
	KindAuthorizationFailed  Kind = "AuthorizationFailed"
	KindSignOutRestricted    Kind = "SignOutRestricted"
	KindUserNotFound         Kind = "UserNotFound"
	KindInvalidQuestion      Kind = "InvalidQuestion"
	KindAnswerNotFound       Kind = "AnswerNotFound"
	KindValidation           Kind = "Validation"
	KindInternal             Kind = "Internal"
)

var kindStatus = map[Kind]int{
	KindSignUpRestricted:     http.StatusConflict,
	KindAuthenticationFailed: http.StatusUnauthorized,
	KindAuthorizationFailed:  http.StatusForbidden,
	KindSignOutRestricted:    http.StatusUnauthorized,
	KindUserNotFound:         http.StatusNotFound,
	KindInvalidQuestion:      http.StatusNotFound,
	KindAnswerNotFound:       http.StatusNotFound,
	KindValidation:           http.StatusBadRequest,
	KindInternal:             http.StatusInternalServerError,
}

// Error is an application error carrying a stable short code.
type Error struct {
	Kind    Kind
	Code    string
	Message string
}

// New creates an Error.
func New(kind Kind, code, message string) *Error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%s): %s", e.Code, e.Kind, e.Message)
}

// Is matches on kind and code so that per-endpoint message variants of the
// same code compare equal.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Code == t.Code
}

// HTTPStatus returns the status code the error is reported with.
func (e *Error) HTTPStatus() int {
	if status, ok := kindStatus[e.Kind]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// As extracts an *Error from err.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Sign up
var (
	ErrUsernameTaken = New(KindSignUpRestricted, "SGR-001", "Try any other Username, this Username has already been taken")
	ErrEmailTaken    = New(KindSignUpRestricted, "SGR-002", "This user has already been registered, try with any other emailId")
)

// Sign in / sign out
var (
	ErrUnknownUser        = New(KindAuthenticationFailed, "ATH-001", "This username does not exist")
	ErrBadPassword        = New(KindAuthenticationFailed, "ATH-002", "Password failed")
	ErrSignOutNotSignedIn = New(KindSignOutRestricted, "SGR-001", "User is not Signed in")
	ErrExternalAuthFailed = New(KindAuthenticationFailed, "ATH-003", "Google sign in failed")
)

// Authorization
var (
	ErrNotSignedIn = New(KindAuthorizationFailed, "ATHR-001", "User has not signed in")
	ErrNotAdmin    = New(KindAuthorizationFailed, "ATHR-003", "Unauthorized Access, Entered user is not an admin")
)

var (
	ErrAnswerNotFound = New(KindAnswerNotFound, "ANS-001", "Entered answer uuid does not exist")
	ErrInternal       = New(KindInternal, "INT-001", "Internal server error")
)

// SignedOut builds the ATHR-002 error. The message varies per endpoint.
func SignedOut(message string) *Error {
	return New(KindAuthorizationFailed, "ATHR-002", message)
}

// Forbidden builds the ATHR-003 error for ownership denials.
func Forbidden(message string) *Error {
	return New(KindAuthorizationFailed, "ATHR-003", message)
}

// UserNotFound builds the USR-001 error.
func UserNotFound(message string) *Error {
	return New(KindUserNotFound, "USR-001", message)
}

// InvalidQuestion builds the QUES-001 error.
func InvalidQuestion(message string) *Error {
	return New(KindInvalidQuestion, "QUES-001", message)
}

// Validation builds a REQ-001 error for malformed requests.
func Validation(message string) *Error {
	return New(KindValidation, "REQ-001", message)
}
