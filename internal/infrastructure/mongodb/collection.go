package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"myshop/internal/domain/entity"
	"myshop/internal/domain/repository"
)

type Collection struct {
	coll *mongo.Collection
}

func (c *Collection) FindOne(ctx context.Context, filter repository.Filter, out interface{}) error {
	query, err := toQuery(filter)
	if err != nil {
		return err
	}

	err = c.coll.FindOne(ctx, query).Decode(out)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return repository.ErrNoDocuments
	}
	return err
}

func (c *Collection) Find(ctx context.Context, filter repository.Filter, out interface{}) error {
	query, err := toQuery(filter)
	if err != nil {
		return err
	}

	cursor, err := c.coll.Find(ctx, query)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, out)
}

func (c *Collection) InsertOne(ctx context.Context, doc interface{}) (*entity.InsertResult, error) {
	res, err := c.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, repository.ErrDuplicate
		}
		return nil, err
	}
	return entity.Inserted(idString(res.InsertedID)), nil
}

func (c *Collection) UpdateOne(ctx context.Context, filter repository.Filter, fields repository.Fields) (*entity.UpdateResult, error) {
	query, err := toQuery(filter)
	if err != nil {
		return nil, err
	}

	res, err := c.coll.UpdateOne(ctx, query, updateDocument(fields))
	if err != nil {
		return nil, err
	}
	return toUpdateResult(res), nil
}

func (c *Collection) DeleteOne(ctx context.Context, filter repository.Filter) (*entity.DeleteResult, error) {
	query, err := toQuery(filter)
	if err != nil {
		return nil, err
	}

	res, err := c.coll.DeleteOne(ctx, query)
	if err != nil {
		return nil, err
	}
	return toDeleteResult(res), nil
}

// updateDocument splits fields into $set and $unset. An operator is left out
// when it has nothing to apply, since the server rejects an empty $set.
func updateDocument(fields repository.Fields) bson.M {
	set, unset := bson.M{}, bson.M{}
	for k, v := range fields {
		if v == nil {
			unset[k] = ""
			continue
		}
		set[k] = v
	}

	update := bson.M{}
	if len(set) > 0 {
		update["$set"] = set
	}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	return update
}

// The driver returns ErrUnacknowledgedWrite instead of a result for writes
// the server did not acknowledge, so any result it hands back was acknowledged.
func toUpdateResult(res *mongo.UpdateResult) *entity.UpdateResult {
	result := &entity.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if res.UpsertedID != nil {
		id := idString(res.UpsertedID)
		result.UpsertedID = &id
	}
	return result
}

func toDeleteResult(res *mongo.DeleteResult) *entity.DeleteResult {
	return &entity.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}

// toQuery turns a gateway filter into a BSON filter, converting the string ID
// to an ObjectID.
func toQuery(filter repository.Filter) (bson.M, error) {
	query := bson.M{}
	for k, v := range filter {
		if k == repository.FieldID {
			s, ok := v.(string)
			if !ok {
				return nil, repository.ErrInvalidID
			}
			oid, err := primitive.ObjectIDFromHex(s)
			if err != nil {
				return nil, fmt.Errorf("%w: %q", repository.ErrInvalidID, s)
			}
			query[k] = oid
			continue
		}
		query[k] = v
	}
	return query, nil
}

func idString(id interface{}) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}
