package constvars

const (
	MongoCollectionQuestions = "Questions"
	MongoCollectionResponses = "Responses"
)
