package questions

import (
	"context"
	"formbuilder-service/internal/app/models"
	"formbuilder-service/internal/pkg/dto/requests"
	"formbuilder-service/internal/pkg/dto/responses"
)

type QuestionUsecaseImpl struct {
	QuestionRepository QuestionRepository
}

func NewQuestionUsecase(questionRepository QuestionRepository) QuestionUsecase {
	return &QuestionUsecaseImpl{
		QuestionRepository: questionRepository,
	}
}

func (uc *QuestionUsecaseImpl) AddQuestion(ctx context.Context, formName string, request *requests.CreateQuestion) (*responses.Question, error) {
	questionModel := &models.Question{
		Question: request.Question,
		Options:  request.Options,
		FormName: formName,
	}
	if questionModel.Options == nil {
		questionModel.Options = []string{}
	}

	savedQuestion, err := uc.QuestionRepository.CreateQuestion(ctx, questionModel)
	if err != nil {
		return nil, err
	}

	response := savedQuestion.ConvertIntoResponse()
	return &response, nil
}

func (uc *QuestionUsecaseImpl) FindQuestionsByFormName(ctx context.Context, formName string) ([]responses.Question, error) {
	questionModels, err := uc.QuestionRepository.FindByFormName(ctx, formName)
	if err != nil {
		return nil, err
	}

	// Always an array on the wire, even for an unknown form.
	questions := make([]responses.Question, 0, len(questionModels))
	for _, questionModel := range questionModels {
		questions = append(questions, questionModel.ConvertIntoResponse())
	}
	return questions, nil
}
