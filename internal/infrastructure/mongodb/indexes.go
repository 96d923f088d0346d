package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"myshop/internal/domain/repository"
	"myshop/pkg/logger"
)

// uniqueIndexes makes the insert itself reject a second user per email and a
// second cart or wishlist entry per (productId, email).
var uniqueIndexes = map[string]bson.D{
	repository.CollectionUsers:     {{Key: "email", Value: 1}},
	repository.CollectionCarts:     {{Key: "productId", Value: 1}, {Key: "email", Value: 1}},
	repository.CollectionWishlists: {{Key: "productId", Value: 1}, {Key: "email", Value: 1}},
}

// EnsureUniqueIndexes creates the unique indexes. Creation fails when the
// collection already holds duplicates, which must be cleaned up first.
func (s *Store) EnsureUniqueIndexes(ctx context.Context) error {
	for name, keys := range uniqueIndexes {
		model := mongo.IndexModel{
			Keys:    keys,
			Options: options.Index().SetUnique(true).SetName("uniq_" + name),
		}
		if _, err := s.db.Collection(name).Indexes().CreateOne(ctx, model); err != nil {
			return fmt.Errorf("create unique index on %s: %w", name, err)
		}
		logger.Info("Unique index ensured on %s", name)
	}
	return nil
}
