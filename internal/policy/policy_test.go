package policy

import (
	"errors"
	"testing"
	"time"

	"QUORA_BACK-END/internal/models"

	"github.com/stretchr/testify/assert"
)

func ptr(v int64) *int64 { return &v }

func TestDecide(t *testing.T) {
	live := &models.UserAuthToken{ID: 1}
	out := time.Now()
	signedOut := &models.UserAuthToken{ID: 2, LogoutAt: &out}

	owner := &models.User{ID: 10, Role: models.RoleNonAdmin}
	other := &models.User{ID: 11, Role: models.RoleNonAdmin}
	admin := &models.User{ID: 12, Role: models.RoleAdmin}

	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"no session", Request{User: owner, Operation: OpRead}, NotSignedIn},
		{"signed out", Request{Session: signedOut, User: owner, Operation: OpRead}, SignedOut},
		{"signed out before ownership", Request{Session: signedOut, User: other, OwnerID: ptr(10), Operation: OpEdit}, SignedOut},
		{"read allowed", Request{Session: live, User: other, Operation: OpRead}, nil},
		{"create allowed", Request{Session: live, User: other, Operation: OpCreate}, nil},

		{"owner edits", Request{Session: live, User: owner, OwnerID: ptr(10), Operation: OpEdit}, nil},
		{"other edits", Request{Session: live, User: other, OwnerID: ptr(10), Operation: OpEdit}, NotOwner},
		{"admin edits someone else's", Request{Session: live, User: admin, OwnerID: ptr(10), Operation: OpEdit}, NotOwner},

		{"owner deletes", Request{Session: live, User: owner, OwnerID: ptr(10), Operation: OpDelete}, nil},
		{"admin deletes", Request{Session: live, User: admin, OwnerID: ptr(10), Operation: OpDelete}, nil},
		{"other deletes", Request{Session: live, User: other, OwnerID: ptr(10), Operation: OpDelete}, NotOwnerOrAdmin},

		{"admin only as admin", Request{Session: live, User: admin, Operation: OpDelete, RequireAdmin: true}, nil},
		{"admin only as nonadmin", Request{Session: live, User: owner, Operation: OpDelete, RequireAdmin: true}, NotAdmin},
		{"admin only without user", Request{Session: live, Operation: OpDelete, RequireAdmin: true}, NotAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Decide(tt.req)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestDenial_IsComparable(t *testing.T) {
	var d Denial
	assert.True(t, errors.As(error(NotOwner), &d))
	assert.Equal(t, NotOwner, d)
	assert.Equal(t, "not the owner", d.Error())
}

func TestOperation_String(t *testing.T) {
	assert.Equal(t, "edit", OpEdit.String())
	assert.Equal(t, "unknown", Operation(99).String())
}
