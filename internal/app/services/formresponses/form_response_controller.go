package formresponses

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

type FormResponseController struct {
	Log                 *zap.Logger
	FormResponseUsecase FormResponseUsecase
}

func NewFormResponseController(logger *zap.Logger, formResponseUsecase FormResponseUsecase) *FormResponseController {
	return &FormResponseController{
		Log:                 logger,
		FormResponseUsecase: formResponseUsecase,
	}
}

// SubmitResponses handles POST /response. The body is an array of answered
// questions; form-name and user-id headers are extracted by middleware.
func (ctrl *FormResponseController) SubmitResponses(w http.ResponseWriter, r *http.Request) {
	formName := r.Context().Value(middlewares.ContextFormNameKey).(string)
	userID := r.Context().Value(middlewares.ContextUserIDKey).(string)

	var request []requests.SubmitResponse
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	for i := range request {
		err = utils.ValidateStruct(&request[i])
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
			return
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.FormResponseUsecase.SubmitResponses(ctx, formName, userID, request)
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
