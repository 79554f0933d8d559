package models

import (
	"time"
)

// Column sizes of question.content and answer.ans
const (
	MaxQuestionContentLength = 500
	MaxAnswerContentLength   = 255
)

// Question is a question posted by a user
type Question struct {
	ID      int64     `json:"-" db:"id"`
	UUID    string    `json:"id" db:"uuid"`
	Content string    `json:"content" db:"content"`
	Date    time.Time `json:"date" db:"date"`
	UserID  int64     `json:"-" db:"user_id"`
}

// Answer is an answer to a question, owned by the user who posted it
type Answer struct {
	ID         int64     `json:"-" db:"id"`
	UUID       string    `json:"id" db:"uuid"`
	Content    string    `json:"answer" db:"ans"`
	Date       time.Time `json:"date" db:"date"`
	UserID     int64     `json:"-" db:"user_id"`
	QuestionID int64     `json:"-" db:"question_id"`
}
