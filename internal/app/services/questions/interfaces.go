package questions

import (
	"context"
	"formbuilder-service/internal/app/models"
	"formbuilder-service/internal/pkg/dto/requests"
	"formbuilder-service/internal/pkg/dto/responses"
)

type QuestionUsecase interface {
	AddQuestion(ctx context.Context, formName string, request *requests.CreateQuestion) (*responses.Question, error)
	FindQuestionsByFormName(ctx context.Context, formName string) ([]responses.Question, error)
}

type QuestionRepository interface {
	CreateQuestion(ctx context.Context, questionModel *models.Question) (*models.Question, error)
	FindByFormName(ctx context.Context, formName string) ([]models.Question, error)
}
