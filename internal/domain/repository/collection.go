package repository

import (
	"context"
	"errors"

	"myshop/internal/domain/entity"
)

// Names of the collections the marketplace stores its documents in.
const (
	CollectionUsers      = "users"
	CollectionProducts   = "products"
	CollectionCarts      = "carts"
	CollectionWishlists  = "wishlists"
	CollectionCategories = "categories"
	CollectionBanners    = "banners"
)

// FieldID is the filter key that selects a document by its identifier. Its
// value is the string form of the ID; backends convert it to their native type.
const FieldID = "_id"

var (
	// ErrNoDocuments is returned by FindOne when nothing matches the filter.
	ErrNoDocuments = errors.New("no documents in result")

	// ErrInvalidID is returned when an identifier is not in the backend's format.
	ErrInvalidID = errors.New("invalid document id")

	// ErrDuplicate is returned when an insert violates a unique constraint.
	ErrDuplicate = errors.New("duplicate document")
)

// Filter matches documents whose fields equal every given value. An empty
// filter matches all documents.
type Filter map[string]interface{}

// ByID returns a filter selecting the document with the given identifier.
func ByID(id string) Filter {
	return Filter{FieldID: id}
}

// Fields is a partial update. A nil value removes the field from the stored
// document; any other value overwrites it.
type Fields map[string]interface{}

// Collection is the gateway to one named collection of the document store.
type Collection interface {
	FindOne(ctx context.Context, filter Filter, out interface{}) error
	// Find decodes every match into out, which must be a pointer to a slice.
	// Documents come back in the backend's natural order (insertion order for
	// MongoDB and memory, document ID order for Firestore).
	Find(ctx context.Context, filter Filter, out interface{}) error
	InsertOne(ctx context.Context, doc interface{}) (*entity.InsertResult, error)
	UpdateOne(ctx context.Context, filter Filter, fields Fields) (*entity.UpdateResult, error)
	DeleteOne(ctx context.Context, filter Filter) (*entity.DeleteResult, error)
}

// Store hands out collections and reports backend health.
type Store interface {
	Collection(name string) Collection
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
