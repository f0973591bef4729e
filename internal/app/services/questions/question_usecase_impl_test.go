package questions

import (
	"context"
	"errors"
	"formbuilder-service/internal/app/models"
	"formbuilder-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeQuestionRepository struct {
	byForm map[string][]models.Question
	err    error
}

func newFakeQuestionRepository() *fakeQuestionRepository {
	return &fakeQuestionRepository{byForm: make(map[string][]models.Question)}
}

func (f *fakeQuestionRepository) CreateQuestion(ctx context.Context, questionModel *models.Question) (*models.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.byForm[questionModel.FormName] = append(f.byForm[questionModel.FormName], *questionModel)
	return questionModel, nil
}

func (f *fakeQuestionRepository) FindByFormName(ctx context.Context, formName string) ([]models.Question, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.byForm[formName], nil
}

func TestQuestionUsecase_AddQuestion(t *testing.T) {
	t.Run("attaches the form name and projects the saved question", func(t *testing.T) {
		repo := newFakeQuestionRepository()
		uc := NewQuestionUsecase(repo)

		result, err := uc.AddQuestion(context.Background(), "Survey1", &requests.CreateQuestion{
			Question: "Color?",
			Options:  []string{"Red", "Blue"},
		})

		assert.NoError(t, err)
		assert.Equal(t, "Color?", result.Question)
		assert.Equal(t, []string{"Red", "Blue"}, result.Options)

		stored := repo.byForm["Survey1"]
		assert.Len(t, stored, 1)
		assert.Equal(t, "Survey1", stored[0].FormName)
	})

	t.Run("defaults absent options to an empty slice", func(t *testing.T) {
		repo := newFakeQuestionRepository()
		uc := NewQuestionUsecase(repo)

		result, err := uc.AddQuestion(context.Background(), "Survey1", &requests.CreateQuestion{
			Question: "Any remarks?",
		})

		assert.NoError(t, err)
		assert.NotNil(t, result.Options)
		assert.Empty(t, result.Options)
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		repo := newFakeQuestionRepository()
		repo.err = errors.New("insert failed")
		uc := NewQuestionUsecase(repo)

		result, err := uc.AddQuestion(context.Background(), "Survey1", &requests.CreateQuestion{Question: "Color?"})

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestQuestionUsecase_FindQuestionsByFormName(t *testing.T) {
	t.Run("returns only questions of the requested form", func(t *testing.T) {
		repo := newFakeQuestionRepository()
		uc := NewQuestionUsecase(repo)

		_, err := uc.AddQuestion(context.Background(), "F1", &requests.CreateQuestion{Question: "Q1", Options: []string{"A", "B"}})
		assert.NoError(t, err)
		_, err = uc.AddQuestion(context.Background(), "F2", &requests.CreateQuestion{Question: "Q2"})
		assert.NoError(t, err)

		result, err := uc.FindQuestionsByFormName(context.Background(), "F1")
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, "Q1", result[0].Question)
		assert.Equal(t, []string{"A", "B"}, result[0].Options)
	})

	t.Run("returns an empty slice for an unknown form", func(t *testing.T) {
		repo := newFakeQuestionRepository()
		uc := NewQuestionUsecase(repo)

		result, err := uc.FindQuestionsByFormName(context.Background(), "nope")
		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("propagates repository failures", func(t *testing.T) {
		repo := newFakeQuestionRepository()
		repo.err = errors.New("store unreachable")
		uc := NewQuestionUsecase(repo)

		result, err := uc.FindQuestionsByFormName(context.Background(), "F1")
		assert.Error(t, err)
		assert.Nil(t, result)
	})
}
