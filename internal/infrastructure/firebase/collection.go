package firebase

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"myshop/internal/domain/entity"
	"myshop/internal/domain/repository"
)

// identifiable is implemented by entities whose ID lives in the document
// reference rather than in the document data.
type identifiable interface {
	SetID(id string)
}

// Collection adapts a Firestore collection to repository.Collection. Document
// IDs are Firestore auto IDs; queries return documents in ID order.
type Collection struct {
	ref *firestore.CollectionRef
}

func (c *Collection) FindOne(ctx context.Context, filter repository.Filter, out interface{}) error {
	snaps, err := c.lookup(ctx, filter, 1)
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		return repository.ErrNoDocuments
	}
	return decode(snaps[0], out)
}

func (c *Collection) Find(ctx context.Context, filter repository.Filter, out interface{}) error {
	slice := reflect.ValueOf(out)
	if slice.Kind() != reflect.Ptr || slice.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("firestore: Find expects a pointer to a slice, got %T", out)
	}

	snaps, err := c.lookup(ctx, filter, 0)
	if err != nil {
		return err
	}

	elemType := slice.Elem().Type().Elem()
	result := reflect.MakeSlice(slice.Elem().Type(), 0, len(snaps))
	for _, snap := range snaps {
		elem := reflect.New(elemType)
		if err := decode(snap, elem.Interface()); err != nil {
			return err
		}
		result = reflect.Append(result, elem.Elem())
	}
	slice.Elem().Set(result)
	return nil
}

func (c *Collection) InsertOne(ctx context.Context, doc interface{}) (*entity.InsertResult, error) {
	ref := c.ref.NewDoc()
	if _, err := ref.Create(ctx, doc); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return nil, repository.ErrDuplicate
		}
		return nil, err
	}
	return entity.Inserted(ref.ID), nil
}

func (c *Collection) UpdateOne(ctx context.Context, filter repository.Filter, fields repository.Fields) (*entity.UpdateResult, error) {
	snaps, err := c.lookup(ctx, filter, 1)
	if err != nil {
		return nil, err
	}

	result := &entity.UpdateResult{Acknowledged: true}
	if len(snaps) == 0 {
		return result, nil
	}
	result.MatchedCount = 1

	current := snaps[0].Data()
	var updates []firestore.Update
	for k, v := range fields {
		old, present := current[k]
		if v == nil {
			if present {
				updates = append(updates, firestore.Update{Path: k, Value: firestore.Delete})
			}
			continue
		}
		if !present || !valuesEqual(old, v) {
			updates = append(updates, firestore.Update{Path: k, Value: v})
		}
	}
	if len(updates) == 0 {
		return result, nil
	}

	if _, err := snaps[0].Ref.Update(ctx, updates); err != nil {
		if status.Code(err) == codes.NotFound {
			result.MatchedCount = 0
			return result, nil
		}
		return nil, err
	}
	result.ModifiedCount = 1
	return result, nil
}

func (c *Collection) DeleteOne(ctx context.Context, filter repository.Filter) (*entity.DeleteResult, error) {
	snaps, err := c.lookup(ctx, filter, 1)
	if err != nil {
		return nil, err
	}

	result := &entity.DeleteResult{Acknowledged: true}
	if len(snaps) == 0 {
		return result, nil
	}
	if _, err := snaps[0].Ref.Delete(ctx); err != nil {
		return nil, err
	}
	result.DeletedCount = 1
	return result, nil
}

// lookup returns up to limit matching snapshots (all when limit is 0). A
// filter on the ID reads the document directly; other fields become equality
// clauses.
func (c *Collection) lookup(ctx context.Context, filter repository.Filter, limit int) ([]*firestore.DocumentSnapshot, error) {
	if raw, ok := filter[repository.FieldID]; ok {
		id, ok := raw.(string)
		if !ok || !validID(id) {
			return nil, fmt.Errorf("%w: %v", repository.ErrInvalidID, raw)
		}

		snap, err := c.ref.Doc(id).Get(ctx)
		if err != nil {
			if status.Code(err) == codes.NotFound {
				return nil, nil
			}
			return nil, err
		}

		data := snap.Data()
		for k, v := range filter {
			if k != repository.FieldID && !valuesEqual(data[k], v) {
				return nil, nil
			}
		}
		return []*firestore.DocumentSnapshot{snap}, nil
	}

	query := c.ref.Query
	for k, v := range filter {
		query = query.Where(k, "==", v)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var snaps []*firestore.DocumentSnapshot
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}
	return snaps, nil
}

func validID(id string) bool {
	return id != "" && len(id) <= 1500 && !strings.Contains(id, "/") && id != "." && id != ".."
}

func decode(snap *firestore.DocumentSnapshot, out interface{}) error {
	if err := snap.DataTo(out); err != nil {
		return err
	}
	if doc, ok := out.(identifiable); ok {
		doc.SetID(snap.Ref.ID)
	}
	return nil
}

// valuesEqual compares a stored Firestore value with a Go value, treating all
// numeric kinds alike since Firestore widens integers to int64.
func valuesEqual(stored, v interface{}) bool {
	if a, ok := toFloat(stored); ok {
		if b, ok := toFloat(v); ok {
			return a == b
		}
	}
	return reflect.DeepEqual(stored, v)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}
