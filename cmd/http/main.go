package main

import (
	"context"
	"formbuilder-service/internal/app/config"
	"formbuilder-service/internal/app/delivery/http/middlewares"
	"formbuilder-service/internal/app/delivery/http/routers"
	"formbuilder-service/internal/app/drivers/database"
	"formbuilder-service/internal/app/drivers/logger"
	"formbuilder-service/internal/app/services/formresponses"
	"formbuilder-service/internal/app/services/questions"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)
	defer log.Sync()

	mongoDB := database.NewMongoDB(driverConfig, log)
	chiRouter := chi.NewRouter()

	bootstrapTheApp(config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	})

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		log.Info("Server starting", zap.String("port", internalConfig.App.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	err = mongoDB.Disconnect(shutdownCtx)
	if err != nil {
		log.Error("Failed to disconnect from mongo database", zap.Error(err))
	}

	log.Info("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Question
	questionMongoRepository := questions.NewQuestionMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	questionUsecase := questions.NewQuestionUsecase(questionMongoRepository)
	questionController := questions.NewQuestionController(bootstrap.Logger, questionUsecase)

	// Form response
	formResponseMongoRepository := formresponses.NewFormResponseMongoRepository(
		bootstrap.MongoDB,
		bootstrap.DriverConfig.MongoDB.DbName,
	)
	formResponseUsecase := formresponses.NewFormResponseUsecase(formResponseMongoRepository)
	formResponseController := formresponses.NewFormResponseController(bootstrap.Logger, formResponseUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, middlewares, questionController, formResponseController)
}
