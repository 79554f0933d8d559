package dto

// QuestionRequest is the body of question create and edit requests
type QuestionRequest struct {
	Content string `json:"content" validate:"required,max=500"`
}

// QuestionResponse acknowledges a question mutation
type QuestionResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// QuestionDetailsResponse is one element of a question listing
type QuestionDetailsResponse struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

const (
	StatusQuestionCreated = "QUESTION CREATED"
	StatusQuestionEdited  = "QUESTION EDITED"
	StatusQuestionDeleted = "QUESTION DELETED"
)
