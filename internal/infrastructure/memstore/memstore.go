// Package memstore keeps collections in process memory. Documents go through
// the BSON codec so they decode exactly as they would from MongoDB.
package memstore

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"myshop/internal/domain/entity"
	"myshop/internal/domain/repository"
)

type Store struct {
	mu          sync.Mutex
	collections map[string]*Collection
	unique      map[string][][]string
}

type Option func(*Store)

// WithUniqueIndex rejects inserts into collection whose values for fields
// equal those of an existing document.
func WithUniqueIndex(collection string, fields ...string) Option {
	return func(s *Store) {
		s.unique[collection] = append(s.unique[collection], fields)
	}
}

func New(opts ...Option) *Store {
	s := &Store{
		collections: make(map[string]*Collection),
		unique:      make(map[string][][]string),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Collection(name string) repository.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[name]
	if !ok {
		c = &Collection{name: name, unique: s.unique[name]}
		s.collections[name] = c
	}
	return c
}

func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) Close(ctx context.Context) error {
	return nil
}

type Collection struct {
	name   string
	mu     sync.RWMutex
	docs   []bson.M
	unique [][]string
}

func (c *Collection) FindOne(ctx context.Context, filter repository.Filter, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	query, err := compileFilter(filter)
	if err != nil {
		return err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, doc := range c.docs {
		if matches(doc, query) {
			return decode(doc, out)
		}
	}
	return repository.ErrNoDocuments
}

func (c *Collection) Find(ctx context.Context, filter repository.Filter, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	query, err := compileFilter(filter)
	if err != nil {
		return err
	}

	slice := reflect.ValueOf(out)
	if slice.Kind() != reflect.Ptr || slice.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("memstore: Find expects a pointer to a slice, got %T", out)
	}
	elemType := slice.Elem().Type().Elem()
	result := reflect.MakeSlice(slice.Elem().Type(), 0, 0)

	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, doc := range c.docs {
		if !matches(doc, query) {
			continue
		}
		elem := reflect.New(elemType)
		if err := decode(doc, elem.Interface()); err != nil {
			return err
		}
		result = reflect.Append(result, elem.Elem())
	}
	slice.Elem().Set(result)
	return nil
}

func (c *Collection) InsertOne(ctx context.Context, doc interface{}) (*entity.InsertResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	stored, err := toDocument(doc)
	if err != nil {
		return nil, err
	}

	var id primitive.ObjectID
	switch v := stored[repository.FieldID].(type) {
	case nil:
		id = primitive.NewObjectID()
	case primitive.ObjectID:
		id = v
	case string:
		if id, err = primitive.ObjectIDFromHex(v); err != nil {
			return nil, repository.ErrInvalidID
		}
	default:
		return nil, fmt.Errorf("memstore: unsupported _id type %T", v)
	}
	stored[repository.FieldID] = id

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.checkUnique(stored); err != nil {
		return nil, err
	}
	c.docs = append(c.docs, stored)

	return entity.Inserted(id.Hex()), nil
}

func (c *Collection) UpdateOne(ctx context.Context, filter repository.Filter, fields repository.Fields) (*entity.UpdateResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	query, err := compileFilter(filter)
	if err != nil {
		return nil, err
	}
	values, err := toDocument(bson.M(fields))
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	result := &entity.UpdateResult{Acknowledged: true}
	for _, doc := range c.docs {
		if !matches(doc, query) {
			continue
		}
		result.MatchedCount = 1

		modified := false
		for key := range fields {
			newValue, set := values[key]
			oldValue, present := doc[key]
			switch {
			case newValue == nil || !set:
				if present {
					delete(doc, key)
					modified = true
				}
			case !present || !reflect.DeepEqual(oldValue, newValue):
				doc[key] = newValue
				modified = true
			}
		}
		if modified {
			result.ModifiedCount = 1
		}
		break
	}
	return result, nil
}

func (c *Collection) DeleteOne(ctx context.Context, filter repository.Filter) (*entity.DeleteResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	query, err := compileFilter(filter)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	result := &entity.DeleteResult{Acknowledged: true}
	for i, doc := range c.docs {
		if matches(doc, query) {
			c.docs = append(c.docs[:i], c.docs[i+1:]...)
			result.DeletedCount = 1
			break
		}
	}
	return result, nil
}

// Len reports how many documents the collection holds.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}

func (c *Collection) checkUnique(doc bson.M) error {
	for _, fields := range c.unique {
		for _, existing := range c.docs {
			same := true
			for _, f := range fields {
				if !valuesEqual(existing[f], doc[f]) {
					same = false
					break
				}
			}
			if same {
				return repository.ErrDuplicate
			}
		}
	}
	return nil
}

// compileFilter converts the string ID in filter to an ObjectID.
func compileFilter(filter repository.Filter) (bson.M, error) {
	query := make(bson.M, len(filter))
	for k, v := range filter {
		if k == repository.FieldID {
			s, ok := v.(string)
			if !ok {
				return nil, repository.ErrInvalidID
			}
			oid, err := primitive.ObjectIDFromHex(s)
			if err != nil {
				return nil, repository.ErrInvalidID
			}
			query[k] = oid
			continue
		}
		query[k] = v
	}
	return query, nil
}

func matches(doc, query bson.M) bool {
	for k, v := range query {
		if !valuesEqual(doc[k], v) {
			return false
		}
	}
	return true
}

func valuesEqual(a, b interface{}) bool {
	if fa, ok := toFloat(a); ok {
		if fb, ok := toFloat(b); ok {
			return fa == fb
		}
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

func toDocument(v interface{}) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func decode(doc bson.M, out interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, out)
}
