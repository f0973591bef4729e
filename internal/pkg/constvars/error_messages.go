package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"dive":     "contains an invalid element",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min": true,
	"max": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientMissingRequiredHeader         = "the %s header is required"
)

// Error messages for developers
const (
	ErrDevInvalidInput               = "invalid input"
	ErrDevValidationFailed           = "request validation failed"
	ErrDevCannotParseJSON            = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON          = "cannot convert struct or other data types to JSON"
	ErrDevMissingRequiredHeader      = "required header %s is missing or empty"
	ErrDevServerDeadlineExceeded     = "server deadline exceeded while processing the request"
	ErrDevServerProcess              = "server failed to process the request"
	ErrDevDBFailedToInsertDocument   = "database failed to insert the document"
	ErrDevDBFailedToFindDocument     = "database failed to find the document"
	ErrDevDBFailedToIterateDocuments = "database failed to iterate over the documents"
	ErrDevDBFailedToUpsertDocument   = "database failed to upsert the document"

	ResponseUnknown = "unknown"
)
