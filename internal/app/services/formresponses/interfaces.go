package formresponses

import (
	"context"
	"formbuilder-service/internal/app/models"
	"formbuilder-service/internal/pkg/dto/requests"
	"formbuilder-service/internal/pkg/dto/responses"
)

type FormResponseUsecase interface {
	SubmitResponses(ctx context.Context, formName, userID string, request []requests.SubmitResponse) ([]responses.FormResponse, error)
}

type FormResponseRepository interface {
	// UpsertResponse persists a response keyed on (formName, userId,
	// question); resubmitting the same question replaces the earlier
	// answer, latest wins.
	UpsertResponse(ctx context.Context, responseModel *models.FormResponse) (*models.FormResponse, error)
}
