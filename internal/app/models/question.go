package models

import (
	"formbuilder-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Question struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Question string             `bson:"question"`
	Options  []string           `bson:"options"`
	FormName string             `bson:"formName"`
}

func (q Question) ConvertIntoResponse() responses.Question {
	options := q.Options
	if options == nil {
		options = []string{}
	}
	return responses.Question{
		Question: q.Question,
		Options:  options,
	}
}
