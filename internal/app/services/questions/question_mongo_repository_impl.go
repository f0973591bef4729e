package questions

import (
	"context"
	"formbuilder-service/internal/app/models"
	"formbuilder-service/internal/pkg/constvars"
	"formbuilder-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuestionMongoRepository struct {
	Collection *mongo.Collection
}

func NewQuestionMongoRepository(db *mongo.Client, dbName string) QuestionRepository {
	return &QuestionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionQuestions),
	}
}

func (repo *QuestionMongoRepository) CreateQuestion(ctx context.Context, questionModel *models.Question) (*models.Question, error) {
	result, err := repo.Collection.InsertOne(ctx, questionModel)
	if err != nil {
		return nil, exceptions.ErrMongoDBInsertDocument(err)
	}
	questionModel.ID = result.InsertedID.(primitive.ObjectID)
	return questionModel, nil
}

func (repo *QuestionMongoRepository) FindByFormName(ctx context.Context, formName string) ([]models.Question, error) {
	var questions []models.Question
	cursor, err := repo.Collection.Find(ctx, bson.M{"formName": formName})
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	err = cursor.All(ctx, &questions)
	if err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return questions, nil
}
