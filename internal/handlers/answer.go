package handlers

import (
	"net/http"

	"QUORA_BACK-END/internal/dto"
	"QUORA_BACK-END/internal/logging"
	"QUORA_BACK-END/internal/middleware"
	"QUORA_BACK-END/internal/services"
	"QUORA_BACK-END/internal/utils"
)

// AnswerHandler handles answer endpoints
type AnswerHandler struct {
	answers *services.AnswerService
	logger  logging.Logger
}

func NewAnswerHandler(answers *services.AnswerService, logger logging.Logger) *AnswerHandler {
	return &AnswerHandler{answers: answers, logger: logger}
}

// CreateAnswer posts an answer to a question
// @Summary Answer a question
// @Tags answer
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer access token"
// @Param questionId path string true "Question uuid"
// @Param request body dto.AnswerRequest true "Answer content"
// @Success 201 {object} dto.AnswerResponse "Answer created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Not signed in or signed out"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /question/{questionId}/answer/create [post]
func (h *AnswerHandler) CreateAnswer(w http.ResponseWriter, r *http.Request) {
	var req dto.AnswerRequest
	decodeErr := utils.DecodeJSONRequest(w, r, &req)

	a, err := h.answers.Create(r.Context(), middleware.AccessToken(r.Context()), r.PathValue("questionId"),
		services.Content{Text: req.Answer, Err: decodeErr})
	if err != nil {
		utils.WriteAppError(w, r, h.logger, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusCreated, dto.AnswerResponse{ID: a.UUID, Status: dto.StatusAnswerCreated})
}

// EditAnswerContent replaces the content of an answer
// @Summary Edit an answer
// @Description Only the owner may edit an answer
// @Tags answer
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer access token"
// @Param answerId path string true "Answer uuid"
// @Param request body dto.AnswerEditRequest true "New content"
// @Success 200 {object} dto.AnswerResponse "Answer edited"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Not signed in, signed out or not the owner"
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /answer/edit/{answerId} [put]
func (h *AnswerHandler) EditAnswerContent(w http.ResponseWriter, r *http.Request) {
	var req dto.AnswerEditRequest
	decodeErr := utils.DecodeJSONRequest(w, r, &req)

	a, err := h.answers.Edit(r.Context(), middleware.AccessToken(r.Context()), r.PathValue("answerId"),
		services.Content{Text: req.Content, Err: decodeErr})
	if err != nil {
		utils.WriteAppError(w, r, h.logger, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.AnswerResponse{ID: a.UUID, Status: dto.StatusAnswerEdited})
}

// DeleteAnswer removes an answer
// @Summary Delete an answer
// @Description The owner or an admin may delete an answer
// @Tags answer
// @Produce json
// @Param Authorization header string true "Bearer access token"
// @Param answerId path string true "Answer uuid"
// @Success 200 {object} dto.AnswerResponse "Answer deleted"
// @Failure 403 {object} dto.ErrorResponse "Not signed in, signed out or not allowed"
// @Failure 404 {object} dto.ErrorResponse "Answer not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /answer/delete/{answerId} [delete]
func (h *AnswerHandler) DeleteAnswer(w http.ResponseWriter, r *http.Request) {
	a, err := h.answers.Delete(r.Context(), middleware.AccessToken(r.Context()), r.PathValue("answerId"))
	if err != nil {
		utils.WriteAppError(w, r, h.logger, err)
		return
	}
	utils.WriteJSONResponse(w, http.StatusOK, dto.AnswerResponse{ID: a.UUID, Status: dto.StatusAnswerDeleted})
}

// GetAllAnswersToQuestion lists the answers of a question
// @Summary List answers of a question
// @Tags answer
// @Produce json
// @Param Authorization header string true "Bearer access token"
// @Param questionId path string true "Question uuid"
// @Success 200 {array} dto.AnswerDetailsResponse "Answers"
// @Failure 403 {object} dto.ErrorResponse "Not signed in or signed out"
// @Failure 404 {object} dto.ErrorResponse "Question not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /answer/all/{questionId} [get]
func (h *AnswerHandler) GetAllAnswersToQuestion(w http.ResponseWriter, r *http.Request) {
	q, answers, err := h.answers.ListByQuestion(r.Context(), middleware.AccessToken(r.Context()), r.PathValue("questionId"))
	if err != nil {
		utils.WriteAppError(w, r, h.logger, err)
		return
	}

	out := make([]dto.AnswerDetailsResponse, 0, len(answers))
	for _, a := range answers {
		out = append(out, dto.AnswerDetailsResponse{
			ID:              a.UUID,
			QuestionContent: q.Content,
			AnswerContent:   a.Content,
		})
	}
	utils.WriteJSONResponse(w, http.StatusOK, out)
}
