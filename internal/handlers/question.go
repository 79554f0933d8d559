package handlers

import (
	"net/http"

	"QUORA_BACK-END/internal/dto"
	"QUORA_BACK-END/internal/logging"
	"QUORA_BACK-END/internal/middleware"
	"QUORA_BACK-END/internal/models"
	"QUORA_BACK-END/internal/services"
	"QUORA_BACK-END/internal/utils"
)

// QuestionHandler handles question endpoints
type QuestionHandler struct {
	questions *services.QuestionService
	logger    logging.Logger
}

func NewQuestionHandler(questions *services.QuestionService, logger logging.Logger) *QuestionHandler {
	return &QuestionHandler{questions: questions, logger: logger}
}

func questionDetails(questions []models.Question) []dto.QuestionDetailsResponse {
	out := make([]dto.QuestionDetailsResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, dto.QuestionDetailsResponse{ID: q.UUID, Content: q.Content})
	}
	return out
}

// CreateQuestion posts a question
// @Summary Create a question
// @Tags question
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer access token"
// @Param request body dto.QuestionRequest true "Question content"
// @Success 201 {object} dto.QuestionResponse "Question created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Not signed in or signed out"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /question/create [post]
func (h *QuestionHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req dto.QuestionRequest
	decodeErr := utils.DecodeJSONRequest(w, r, &req)

	q, err := h.questions.Create(r.Context(), middleware.AccessToken(r.Context()), services.Content{Text: req.Content, Err: decodeErr})
	if err != nil {
		utils.WriteAppError(w, r, h.logger, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, dto.QuestionResponse{ID: q.UUID, Status: dto.StatusQuestionCreated})
}

// GetAllQuestions lists every question
// @Summary List all questions
// @Tags question
// @Produce json
// @Param Authorization header string true "Bearer access token"
// @Success 200 {array} dto.QuestionDetailsResponse "Questions"
// @Failure 403 {object} dto.ErrorResponse "Not signed in or signed out"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /question/all [get]
func (h *QuestionHandler) GetAllQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questions.List(r.Context(), middleware.AccessToken(r.Context()))
	if err != nil {
		utils.WriteAppError(w, r, h.logger, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, questionDetails(questions))
}

// GetAllQuestionsByUser lists the questions posted by one user
// @Summary List questions of a user
// @Tags question
// @Produce json
// @Param Authorization header string true "Bearer access token"
// @Param userId path string true "User uuid"
// @Success 200 {array} dto.QuestionDetailsResponse "Questions"
// @Failure 403 {object} dto.ErrorResponse "Not signed in or signed out"
// @Failure 404 {object} dto.ErrorResponse "User not found or has no questions"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /question/all/{userId} [get]
func (h *QuestionHandler) GetAllQuestionsByUser(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questions.ListByUser(r.Context(), middleware.AccessToken(r.Context()), r.PathValue("userId"))
	if err != nil {
		utils.WriteAppError(w, r, h.logger, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, questionDetails(questions))
}

// EditQuestionContent replaces the content of a question
// @Summary Edit a question
// @Description Only the owner may edit a question
// @Tags question
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer access token"
// @Param questionId path string true "Question uuid"
// @Param request body dto.QuestionRequest true "New content"
// @Success 200 {object} dto.QuestionResponse "Question edited"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Not signed in, signed out or not the owner"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /question/edit/{questionId} [put]
func (h *QuestionHandler) EditQuestionContent(w http.ResponseWriter, r *http.Request) {
	var req dto.QuestionRequest
	decodeErr := utils.DecodeJSONRequest(w, r, &req)

	q, err := h.questions.Edit(r.Context(), middleware.AccessToken(r.Context()), r.PathValue("questionId"),
		services.Content{Text: req.Content, Err: decodeErr})
	if err != nil {
		utils.WriteAppError(w, r, h.logger, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.QuestionResponse{ID: q.UUID, Status: dto.StatusQuestionEdited})
}

// DeleteQuestion removes a question and its answers
// @Summary Delete a question
// @Description The owner or an admin may delete a question
// @Tags question
// @Produce json
// @Param Authorization header string true "Bearer access token"
// @Param questionId path string true "Question uuid"
// @Success 200 {object} dto.QuestionResponse "Question deleted"
// @Failure 403 {object} dto.ErrorResponse "Not signed in, signed out or not allowed"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /question/delete/{questionId} [delete]
func (h *QuestionHandler) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	q, err := h.questions.Delete(r.Context(), middleware.AccessToken(r.Context()), r.PathValue("questionId"))
	if err != nil {
		utils.WriteAppError(w, r, h.logger, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.QuestionResponse{ID: q.UUID, Status: dto.StatusQuestionDeleted})
}
