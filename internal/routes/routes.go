package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"QUORA_BACK-END/internal/handlers"
	"QUORA_BACK-END/internal/middleware"
)

// Handlers bundles the HTTP handlers wired by SetupRoutes. Google is
// optional and its routes are skipped when nil.
type Handlers struct {
	Auth     *handlers.AuthHandler
	Profile  *handlers.ProfileHandler
	Question *handlers.QuestionHandler
	Answer   *handlers.AnswerHandler
	Admin    *handlers.AdminHandler
	Health   *handlers.HealthHandler
	Google   *handlers.GoogleAuthHandler
}

// SetupRoutes configures all application routes on mux
func SetupRoutes(mux *http.ServeMux, h Handlers) {
	// Health check routes
	mux.HandleFunc("GET /healthz", h.Health.HealthCheck)
	mux.HandleFunc("GET /livez", h.Health.LivenessCheck)
	mux.HandleFunc("GET /readyz", h.Health.ReadinessCheck)

	// User routes
	mux.HandleFunc("POST /user/signup", h.Auth.Signup)
	mux.HandleFunc("POST /user/signin", h.Auth.Signin)
	mux.HandleFunc("POST /user/signout", middleware.BearerToken(h.Auth.Signout))
	if h.Google != nil {
		mux.HandleFunc("GET /user/signin/google", h.Google.GoogleLogin)
		mux.HandleFunc("GET /user/signin/google/callback", h.Google.GoogleCallback)
	}

	mux.HandleFunc("GET /userprofile/{userId}", middleware.BearerToken(h.Profile.UserProfile))

	// Question routes
	mux.HandleFunc("POST /question/create", middleware.BearerToken(h.Question.CreateQuestion))
	mux.HandleFunc("GET /question/all", middleware.BearerToken(h.Question.GetAllQuestions))
	mux.HandleFunc("GET /question/all/{userId}", middleware.BearerToken(h.Question.GetAllQuestionsByUser))
	mux.HandleFunc("PUT /question/edit/{questionId}", middleware.BearerToken(h.Question.EditQuestionContent))
	mux.HandleFunc("DELETE /question/delete/{questionId}", middleware.BearerToken(h.Question.DeleteQuestion))

	// Answer routes
	mux.HandleFunc("POST /question/{questionId}/answer/create", middleware.BearerToken(h.Answer.CreateAnswer))
	mux.HandleFunc("PUT /answer/edit/{answerId}", middleware.BearerToken(h.Answer.EditAnswerContent))
	mux.HandleFunc("DELETE /answer/delete/{answerId}", middleware.BearerToken(h.Answer.DeleteAnswer))
	mux.HandleFunc("GET /answer/all/{questionId}", middleware.BearerToken(h.Answer.GetAllAnswersToQuestion))

	// Admin routes
	mux.HandleFunc("DELETE /admin/user/{userId}", middleware.BearerToken(h.Admin.DeleteUser))

	// Swagger UI
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Root route
	mux.HandleFunc("GET /{$}", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Quora backend is running."))
}
