package dto

// AnswerRequest is the body of an answer create request
type AnswerRequest struct {
	Answer string `json:"answer" validate:"required,max=255"`
}

// AnswerEditRequest is the body of an answer edit request
type AnswerEditRequest struct {
	Content string `json:"content" validate:"required,max=255"`
}

// AnswerResponse acknowledges an answer mutation
type AnswerResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// AnswerDetailsResponse is one element of an answer listing
type AnswerDetailsResponse struct {
	ID              string `json:"id"`
	QuestionContent string `json:"questionContent"`
	AnswerContent   string `json:"answerContent"`
}

const (
	StatusAnswerCreated = "ANSWER CREATED"
	StatusAnswerEdited  = "ANSWER EDITED"
	StatusAnswerDeleted = "ANSWER DELETED"
)
