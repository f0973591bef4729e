package formresponses

import (
	"context"
	"formbuilder-service/internal/app/models"
	"formbuilder-service/internal/pkg/constvars"
	"formbuilder-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type FormResponseMongoRepository struct {
	Collection *mongo.Collection
}

func NewFormResponseMongoRepository(db *mongo.Client, dbName string) FormResponseRepository {
	return &FormResponseMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionResponses),
	}
}

func (repo *FormResponseMongoRepository) UpsertResponse(ctx context.Context, responseModel *models.FormResponse) (*models.FormResponse, error) {
	filter := bson.M{
		"formName": responseModel.FormName,
		"userId":   responseModel.UserID,
		"question": responseModel.Question,
	}
	_, err := repo.Collection.ReplaceOne(ctx, filter, responseModel, options.Replace().SetUpsert(true))
	if err != nil {
		return nil, exceptions.ErrMongoDBUpsertDocument(err)
	}
	return responseModel, nil
}
