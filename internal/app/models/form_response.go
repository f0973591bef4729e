package models

import (
	"formbuilder-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FormResponse duplicates the question text rather than referencing the
// Question document; a response is matched to its question by string
// equality on (formName, question).
type FormResponse struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Question string             `bson:"question"`
	Options  []string           `bson:"options"`
	FormName string             `bson:"formName"`
	UserID   string             `bson:"userId"`
}

func (r FormResponse) ConvertIntoResponse() responses.FormResponse {
	options := r.Options
	if options == nil {
		options = []string{}
	}
	return responses.FormResponse{
		Question: r.Question,
		Options:  options,
	}
}
