package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"QUORA_BACK-END/internal/apperrors"
)

// Content is the text of a question or answer write. Err holds a failure to
// read it from the request and is reported only once the caller has passed
// the session and ownership checks.
type Content struct {
	Text string
	Err  error
}

func (c Content) validate(field string, limit int) error {
	if c.Err != nil {
		return c.Err
	}
	if strings.TrimSpace(c.Text) == "" {
		return apperrors.Validation(field + " is required")
	}
	if utf8.RuneCountInString(c.Text) > limit {
		return apperrors.Validation(fmt.Sprintf("%s must be at most %d characters", field, limit))
	}
	return nil
}
