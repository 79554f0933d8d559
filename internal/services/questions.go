package services

import (
	"context"
	"errors"
	"fmt"

	"QUORA_BACK-END/internal/apperrors"
	"QUORA_BACK-END/internal/models"
	"QUORA_BACK-END/internal/policy"
	"QUORA_BACK-END/internal/repository"

	"github.com/google/uuid"
)

type QuestionService struct {
	*core
}

const questionMissing = "Entered question uuid does not exist"

func (s *QuestionService) Create(ctx context.Context, accessToken string, content Content) (*models.Question, error) {
	msgs := denyMessages{signedOut: "User is signed out.Sign in first to post a question"}

	var q *models.Question
	err := s.write(ctx, func(tx repository.Store) error {
		who, err := s.gate(ctx, tx, accessToken, policy.OpCreate, msgs)
		if err != nil {
			return err
		}
		if err := content.validate("content", models.MaxQuestionContentLength); err != nil {
			return err
		}

		q = &models.Question{
			UUID:    uuid.NewString(),
			Content: content.Text,
			Date:    s.Now(),
			UserID:  who.User.ID,
		}
		if err := tx.Questions().Create(ctx, q); err != nil {
			return fmt.Errorf("create question: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info(ctx, "question created", "question_uuid", q.UUID)
	return q, nil
}

// List returns every question in creation order.
func (s *QuestionService) List(ctx context.Context, accessToken string) ([]models.Question, error) {
	msgs := denyMessages{signedOut: "User is signed out.Sign in first to get all questions"}
	if _, err := s.gate(ctx, s.Store, accessToken, policy.OpRead, msgs); err != nil {
		return nil, err
	}

	questions, err := s.Store.Questions().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}

// ListByUser returns the questions posted by userUUID. An unknown user and
// a user without questions are both reported as USR-001.
func (s *QuestionService) ListByUser(ctx context.Context, accessToken, userUUID string) ([]models.Question, error) {
	msgs := denyMessages{signedOut: "User is signed out.Sign in first to get all questions posted by a specific user"}
	if _, err := s.gate(ctx, s.Store, accessToken, policy.OpRead, msgs); err != nil {
		return nil, err
	}

	notFound := apperrors.UserNotFound("User with entered uuid whose question details are to be seen does not exist")
	owner, err := s.Store.Users().GetByUUID(ctx, userUUID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, notFound
	}
	if err != nil {
		return nil, fmt.Errorf("load user: %w", err)
	}

	questions, err := s.Store.Questions().ListByUser(ctx, owner.ID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	if len(questions) == 0 {
		return nil, notFound
	}
	return questions, nil
}

// Edit replaces the content of a question. Only its owner may edit it.
func (s *QuestionService) Edit(ctx context.Context, accessToken, questionUUID string, content Content) (*models.Question, error) {
	msgs := denyMessages{
		signedOut: "User is signed out.Sign in first to edit the question",
		forbidden: "Only the question owner can edit the question",
	}

	var q *models.Question
	err := s.write(ctx, func(tx repository.Store) error {
		who, err := s.gate(ctx, tx, accessToken, policy.OpEdit, msgs)
		if err != nil {
			return err
		}
		q, err = s.load(ctx, tx, questionUUID)
		if err != nil {
			return err
		}
		if err := checkOwner(who, q.UserID, policy.OpEdit, msgs); err != nil {
			return err
		}
		if err := content.validate("content", models.MaxQuestionContentLength); err != nil {
			return err
		}

		now := s.Now()
		if err := tx.Questions().UpdateContent(ctx, q.ID, content.Text, now); err != nil {
			return fmt.Errorf("update question: %w", err)
		}
		q.Content, q.Date = content.Text, now
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info(ctx, "question edited", "question_uuid", q.UUID)
	return q, nil
}

// Delete removes a question and its answers. The owner or an admin may
// delete it.
func (s *QuestionService) Delete(ctx context.Context, accessToken, questionUUID string) (*models.Question, error) {
	msgs := denyMessages{
		signedOut: "User is signed out.Sign in first to delete a question",
		forbidden: "Only the question owner or admin can delete the question",
	}

	var q *models.Question
	err := s.write(ctx, func(tx repository.Store) error {
		who, err := s.gate(ctx, tx, accessToken, policy.OpDelete, msgs)
		if err != nil {
			return err
		}
		q, err = s.load(ctx, tx, questionUUID)
		if err != nil {
			return err
		}
		if err := checkOwner(who, q.UserID, policy.OpDelete, msgs); err != nil {
			return err
		}
		if err := tx.Questions().Delete(ctx, q.ID); err != nil {
			return fmt.Errorf("delete question: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info(ctx, "question deleted", "question_uuid", q.UUID)
	return q, nil
}

func (s *QuestionService) load(ctx context.Context, store repository.Store, questionUUID string) (*models.Question, error) {
	q, err := store.Questions().GetByUUID(ctx, questionUUID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.InvalidQuestion(questionMissing)
	}
	if err != nil {
		return nil, fmt.Errorf("load question: %w", err)
	}
	return q, nil
}
