package database

import (
	"context"
	"fmt"
	"formbuilder-service/internal/app/config"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// NewMongoDB builds the process-wide mongo client. A failed ping is logged
// but does not abort startup: the service keeps serving and every store
// operation surfaces an explicit error response instead.
func NewMongoDB(driverConfig *config.DriverConfig, log *zap.Logger) *mongo.Client {
	connectionString := mongoURI(driverConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dbOptions := options.Client().ApplyURI(connectionString)
	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		log.Fatal("Failed to construct mongo client", zap.Error(err))
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Error("Failed to ping mongo database, continuing without a verified connection", zap.Error(err))
		return client
	}
	log.Info("Successfully connected to mongo database")
	return client
}

func mongoURI(driverConfig *config.DriverConfig) string {
	if driverConfig.MongoDB.Username == "" {
		return fmt.Sprintf("mongodb://%s:%s",
			driverConfig.MongoDB.Host,
			driverConfig.MongoDB.Port,
		)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%s",
		driverConfig.MongoDB.Username,
		driverConfig.MongoDB.Password,
		driverConfig.MongoDB.Host,
		driverConfig.MongoDB.Port,
	)
}
