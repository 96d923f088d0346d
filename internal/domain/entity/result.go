package entity

// InsertResult acknowledges an insert. A skipped insert carries a Message and
// a nil InsertedID.
type InsertResult struct {
	Acknowledged bool    `json:"acknowledged,omitempty"`
	InsertedID   *string `json:"insertedId"`
	Message      string  `json:"message,omitempty"`
}

// Skipped builds the acknowledgement returned when an insert is not performed
// because a matching document already exists.
func Skipped(message string) *InsertResult {
	return &InsertResult{Message: message}
}

func Inserted(id string) *InsertResult {
	return &InsertResult{Acknowledged: true, InsertedID: &id}
}

type UpdateResult struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedCount int64   `json:"upsertedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
