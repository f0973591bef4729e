package formresponses

import (
	"context"
	"formbuilder-service/internal/app/models"
	"formbuilder-service/internal/pkg/dto/requests"
	"formbuilder-service/internal/pkg/dto/responses"
	"sync"
)

type FormResponseUsecaseImpl struct {
	FormResponseRepository FormResponseRepository
}

func NewFormResponseUsecase(formResponseRepository FormResponseRepository) FormResponseUsecase {
	return &FormResponseUsecaseImpl{
		FormResponseRepository: formResponseRepository,
	}
}

// SubmitResponses persists every item of a submission concurrently and
// joins all saves before returning. The result slice is indexed by
// submission position, so the caller gets exactly one projected entry per
// item, in the order submitted, no matter how slow the store is. A failed
// save fails the whole call; items that were already persisted stay
// persisted.
func (uc *FormResponseUsecaseImpl) SubmitResponses(ctx context.Context, formName, userID string, request []requests.SubmitResponse) ([]responses.FormResponse, error) {
	results := make([]responses.FormResponse, len(request))
	errs := make([]error, len(request))

	var wg sync.WaitGroup
	for i, item := range request {
		responseModel := &models.FormResponse{
			Question: item.Question,
			Options:  item.Options,
			FormName: formName,
			UserID:   userID,
		}
		if responseModel.Options == nil {
			responseModel.Options = []string{}
		}

		wg.Add(1)
		go func(i int, responseModel *models.FormResponse) {
			defer wg.Done()
			savedResponse, err := uc.FormResponseRepository.UpsertResponse(ctx, responseModel)
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = savedResponse.ConvertIntoResponse()
		}(i, responseModel)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}
