package services

import (
	"context"
	"errors"
	"fmt"

	"QUORA_BACK-END/internal/apperrors"
	"QUORA_BACK-END/internal/models"
	"QUORA_BACK-END/internal/policy"
	"QUORA_BACK-END/internal/repository"
)

type AdminService struct {
	*core
}

// DeleteUser removes the user with userUUID together with their sessions,
// questions and answers. The caller must be an admin.
func (s *AdminService) DeleteUser(ctx context.Context, accessToken, userUUID string) (*models.User, error) {
	msgs := denyMessages{signedOut: "User is signed out"}

	var (
		admin  caller
		victim *models.User
	)
	err := s.write(ctx, func(tx repository.Store) error {
		who, err := s.resolve(ctx, tx, accessToken)
		if err != nil {
			return err
		}
		req := policy.Request{Session: who.Session, User: who.User, Operation: policy.OpDelete, RequireAdmin: true}
		if err := authorize(req, msgs); err != nil {
			return err
		}
		admin = who

		victim, err = tx.Users().GetByUUID(ctx, userUUID)
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.UserNotFound("User with entered uuid to be deleted does not exist")
		}
		if err != nil {
			return fmt.Errorf("load user: %w", err)
		}
		if err := tx.Users().Delete(ctx, victim.ID); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info(ctx, "user deleted", "user_uuid", victim.UUID, "admin_uuid", admin.User.UUID)
	return victim, nil
}
