package routers

import (
	"formbuilder-service/internal/app/config"
	"formbuilder-service/internal/app/delivery/http/middlewares"
	"formbuilder-service/internal/app/services/formresponses"
	"formbuilder-service/internal/app/services/questions"
	"formbuilder-service/internal/pkg/constvars"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	questionController *questions.QuestionController,
	formResponseController *formresponses.FormResponseController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", constvars.HeaderFormName, constvars.HeaderUserID, constvars.HeaderXRequestID},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestID)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	router.Get("/", greeting)

	attachQuestionRoutes(router, middlewares, questionController)
	attachFormResponseRoutes(router, middlewares, formResponseController)
}

func greeting(w http.ResponseWriter, r *http.Request) {
	w.Header().Set(constvars.HeaderContentType, constvars.MIMETextPlainCharsetUTF8)
	w.WriteHeader(constvars.StatusOK)
	w.Write([]byte("Hello from the form builder service!"))
}
