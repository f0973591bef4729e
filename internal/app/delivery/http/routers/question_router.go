package routers

import (
	"formbuilder-service/internal/app/delivery/http/middlewares"
	"formbuilder-service/internal/app/services/questions"

	"github.com/go-chi/chi/v5"
)

func attachQuestionRoutes(router chi.Router, middlewares *middlewares.Middlewares, questionController *questions.QuestionController) {
	router.With(middlewares.RequireFormNameHeader).Get("/questions", questionController.FindQuestionsByFormName)
	router.With(middlewares.RequireFormNameHeader).Post("/question", questionController.AddQuestion)
}
