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

type AnswerService struct {
	*core
}

// Create posts an answer to the question with questionUUID.
func (s *AnswerService) Create(ctx context.Context, accessToken, questionUUID string, content Content) (*models.Answer, error) {
	msgs := denyMessages{signedOut: "User is signed out.Sign in first to post an answer"}

	var a *models.Answer
	err := s.write(ctx, func(tx repository.Store) error {
		who, err := s.gate(ctx, tx, accessToken, policy.OpCreate, msgs)
		if err != nil {
			return err
		}
		q, err := tx.Questions().GetByUUID(ctx, questionUUID)
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.InvalidQuestion("The question entered is invalid")
		}
		if err != nil {
			return fmt.Errorf("load question: %w", err)
		}
		if err := content.validate("answer", models.MaxAnswerContentLength); err != nil {
			return err
		}

		a = &models.Answer{
			UUID:       uuid.NewString(),
			Content:    content.Text,
			Date:       s.Now(),
			UserID:     who.User.ID,
			QuestionID: q.ID,
		}
		if err := tx.Answers().Create(ctx, a); err != nil {
			return fmt.Errorf("create answer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info(ctx, "answer created", "answer_uuid", a.UUID, "question_uuid", questionUUID)
	return a, nil
}

// Edit replaces the content of an answer. Only its owner may edit it.
func (s *AnswerService) Edit(ctx context.Context, accessToken, answerUUID string, content Content) (*models.Answer, error) {
	msgs := denyMessages{
		signedOut: "User is signed out.Sign in first to post an answer",
		forbidden: "Only the answer owner can edit the answer",
	}

	var a *models.Answer
	err := s.write(ctx, func(tx repository.Store) error {
		who, err := s.gate(ctx, tx, accessToken, policy.OpEdit, msgs)
		if err != nil {
			return err
		}
		a, err = s.load(ctx, tx, answerUUID)
		if err != nil {
			return err
		}
		if err := checkOwner(who, a.UserID, policy.OpEdit, msgs); err != nil {
			return err
		}
		if err := content.validate("answer", models.MaxAnswerContentLength); err != nil {
			return err
		}

		now := s.Now()
		if err := tx.Answers().UpdateContent(ctx, a.ID, content.Text, now); err != nil {
			return fmt.Errorf("update answer: %w", err)
		}
		a.Content, a.Date = content.Text, now
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info(ctx, "answer edited", "answer_uuid", a.UUID)
	return a, nil
}

// Delete removes an answer. The owner or an admin may delete it.
func (s *AnswerService) Delete(ctx context.Context, accessToken, answerUUID string) (*models.Answer, error) {
	msgs := denyMessages{
		signedOut: "User is signed out.Sign in first to delete an answer",
		forbidden: "Only the answer owner or admin can delete the answer",
	}

	var a *models.Answer
	err := s.write(ctx, func(tx repository.Store) error {
		who, err := s.gate(ctx, tx, accessToken, policy.OpDelete, msgs)
		if err != nil {
			return err
		}
		a, err = s.load(ctx, tx, answerUUID)
		if err != nil {
			return err
		}
		if err := checkOwner(who, a.UserID, policy.OpDelete, msgs); err != nil {
			return err
		}
		if err := tx.Answers().Delete(ctx, a.ID); err != nil {
			return fmt.Errorf("delete answer: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.Logger.Info(ctx, "answer deleted", "answer_uuid", a.UUID)
	return a, nil
}

// ListByQuestion returns a question together with its answers.
func (s *AnswerService) ListByQuestion(ctx context.Context, accessToken, questionUUID string) (*models.Question, []models.Answer, error) {
	msgs := denyMessages{signedOut: "User is signed out.Sign in first to get the answers"}
	if _, err := s.gate(ctx, s.Store, accessToken, policy.OpRead, msgs); err != nil {
		return nil, nil, err
	}

	q, err := s.Store.Questions().GetByUUID(ctx, questionUUID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil, apperrors.InvalidQuestion("The question with entered uuid whose details are to be seen does not exist")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("load question: %w", err)
	}

	answers, err := s.Store.Answers().ListByQuestion(ctx, q.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("list answers: %w", err)
	}
	return q, answers, nil
}

func (s *AnswerService) load(ctx context.Context, store repository.Store, answerUUID string) (*models.Answer, error) {
	a, err := store.Answers().GetByUUID(ctx, answerUUID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperrors.ErrAnswerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load answer: %w", err)
	}
	return a, nil
}
