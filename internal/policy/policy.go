// Package policy decides whether a signed-in user may perform an operation.
// Decisions are pure: callers load the session, user and owner beforehand.
package policy

import (
	"QUORA_BACK-END/internal/models"
)

type Operation int

const (
	OpRead Operation = iota
	OpCreate
	OpEdit
	OpDelete
)

func (o Operation) String() string {
	switch o {
	case OpRead:
		return "read"
	case OpCreate:
		return "create"
	case OpEdit:
		return "edit"
	case OpDelete:
		return "delete"
	}
	return "unknown"
}

// Denial explains why a request was refused.
type Denial int

const (
	NotSignedIn Denial = iota + 1
	SignedOut
	NotAdmin
	NotOwner
	NotOwnerOrAdmin
)

func (d Denial) Error() string {
	switch d {
	case NotSignedIn:
		return "not signed in"
	case SignedOut:
		return "signed out"
	case NotAdmin:
		return "not an admin"
	case NotOwner:
		return "not the owner"
	case NotOwnerOrAdmin:
		return "neither owner nor admin"
	}
	return "denied"
}

// Request is the input to Decide. OwnerID is nil for operations that do
// not touch an owned resource.
type Request struct {
	Session      *models.UserAuthToken
	User         *models.User
	OwnerID      *int64
	Operation    Operation
	RequireAdmin bool
}

// Decide returns nil when the request is allowed. Checks run in order:
// session, admin role, then ownership. Editing is owner-only; deleting is
// allowed for the owner or an admin.
func Decide(req Request) error {
	if req.Session == nil {
		return NotSignedIn
	}
	if req.Session.SignedOut() {
		return SignedOut
	}
	if req.RequireAdmin && !req.User.IsAdmin() {
		return NotAdmin
	}
	if req.OwnerID == nil {
		return nil
	}

	owner := req.User != nil && req.User.ID == *req.OwnerID
	switch req.Operation {
	case OpEdit:
		if !owner {
			return NotOwner
		}
	case OpDelete:
		if !owner && !req.User.IsAdmin() {
			return NotOwnerOrAdmin
		}
	}
	return nil
}
