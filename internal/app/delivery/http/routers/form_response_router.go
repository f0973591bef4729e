package routers

import (
	"formbuilder-service/internal/app/delivery/http/middlewares"
	"formbuilder-service/internal/app/services/formresponses"

	"github.com/go-chi/chi/v5"
)

func attachFormResponseRoutes(router chi.Router, middlewares *middlewares.Middlewares, formResponseController *formresponses.FormResponseController) {
	router.With(
		middlewares.RequireFormNameHeader,
		middlewares.RequireUserIDHeader,
	).Post("/response", formResponseController.SubmitResponses)
}
