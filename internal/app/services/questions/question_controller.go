package questions

import (
	"context"
	"encoding/json"
	"formbuilder-service/internal/app/delivery/http/middlewares"
	"formbuilder-service/internal/pkg/constvars"
	"formbuilder-service/internal/pkg/dto/requests"
	"formbuilder-service/internal/pkg/exceptions"
	"formbuilder-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type QuestionController struct {
	Log             *zap.Logger
	QuestionUsecase QuestionUsecase
}

func NewQuestionController(logger *zap.Logger, questionUsecase QuestionUsecase) *QuestionController {
	return &QuestionController{
		Log:             logger,
		QuestionUsecase: questionUsecase,
	}
}

// AddQuestion handles POST /question. The owning form comes from the
// form-name header, extracted and validated by middleware.
func (ctrl *QuestionController) AddQuestion(w http.ResponseWriter, r *http.Request) {
	formName := r.Context().Value(middlewares.ContextFormNameKey).(string)

	request := new(requests.CreateQuestion)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.QuestionUsecase.AddQuestion(ctx, formName, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, result)
}

// FindQuestionsByFormName handles GET /questions.
func (ctrl *QuestionController) FindQuestionsByFormName(w http.ResponseWriter, r *http.Request) {
	formName := r.Context().Value(middlewares.ContextFormNameKey).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.QuestionUsecase.FindQuestionsByFormName(ctx, formName)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, result)
}
