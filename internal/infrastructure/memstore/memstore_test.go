package memstore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"myshop/internal/domain/repository"
)

type doc struct {
	ID    string `bson:"_id,omitempty"`
	Email string `bson:"email"`
	Count int    `bson:"count,omitempty"`
	Note  string `bson:"note,omitempty"`
}

func TestInsertFindDecodesHexID(t *testing.T) {
	ctx := context.Background()
	coll := New().Collection("docs")

	res, err := coll.InsertOne(ctx, doc{Email: "a@x.com", Count: 2})
	require.NoError(t, err)
	require.NotNil(t, res.InsertedID)
	assert.Len(t, *res.InsertedID, 24)

	var got doc
	require.NoError(t, coll.FindOne(ctx, repository.ByID(*res.InsertedID), &got))
	assert.Equal(t, doc{ID: *res.InsertedID, Email: "a@x.com", Count: 2}, got)

	err = coll.FindOne(ctx, repository.Filter{"email": "b@x.com"}, &got)
	assert.True(t, errors.Is(err, repository.ErrNoDocuments))

	err = coll.FindOne(ctx, repository.ByID("nope"), &got)
	assert.True(t, errors.Is(err, repository.ErrInvalidID))
}

func TestFindKeepsInsertionOrder(t *testing.T) {
	ctx := context.Background()
	coll := New().Collection("docs")

	var none []doc
	require.NoError(t, coll.Find(ctx, repository.Filter{}, &none))
	assert.NotNil(t, none)
	assert.Empty(t, none)

	for _, email := range []string{"c@x.com", "a@x.com", "b@x.com"} {
		_, err := coll.InsertOne(ctx, doc{Email: email})
		require.NoError(t, err)
	}

	var all []doc
	require.NoError(t, coll.Find(ctx, repository.Filter{}, &all))
	require.Len(t, all, 3)
	assert.Equal(t, "c@x.com", all[0].Email)
	assert.Equal(t, "b@x.com", all[2].Email)

	assert.Error(t, coll.Find(ctx, repository.Filter{}, all))
}

func TestUpdateSetsAndUnsets(t *testing.T) {
	ctx := context.Background()
	coll := New().Collection("docs")

	res, err := coll.InsertOne(ctx, doc{Email: "a@x.com", Count: 1, Note: "hi"})
	require.NoError(t, err)
	id := *res.InsertedID

	upd, err := coll.UpdateOne(ctx, repository.ByID(id), repository.Fields{"count": 5, "note": nil})
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.MatchedCount)
	assert.Equal(t, int64(1), upd.ModifiedCount)

	var got doc
	require.NoError(t, coll.FindOne(ctx, repository.ByID(id), &got))
	assert.Equal(t, 5, got.Count)
	assert.Empty(t, got.Note)

	upd, err = coll.UpdateOne(ctx, repository.ByID(id), repository.Fields{"count": 5, "note": nil})
	require.NoError(t, err)
	assert.Equal(t, int64(1), upd.MatchedCount)
	assert.Equal(t, int64(0), upd.ModifiedCount)

	upd, err = coll.UpdateOne(ctx, repository.Filter{"email": "z@x.com"}, repository.Fields{"count": 1})
	require.NoError(t, err)
	assert.Equal(t, int64(0), upd.MatchedCount)
}

func TestDeleteAndUniqueIndex(t *testing.T) {
	ctx := context.Background()
	store := New(WithUniqueIndex("docs", "email"))
	coll := store.Collection("docs")

	res, err := coll.InsertOne(ctx, doc{Email: "a@x.com"})
	require.NoError(t, err)

	_, err = coll.InsertOne(ctx, doc{Email: "a@x.com"})
	assert.True(t, errors.Is(err, repository.ErrDuplicate))

	del, err := coll.DeleteOne(ctx, repository.ByID(*res.InsertedID))
	require.NoError(t, err)
	assert.Equal(t, int64(1), del.DeletedCount)
	assert.Equal(t, 0, coll.(*Collection).Len())

	_, err = coll.InsertOne(ctx, doc{Email: "a@x.com"})
	assert.NoError(t, err)
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := New()
	assert.Error(t, store.Ping(ctx))
	_, err := store.Collection("docs").InsertOne(ctx, doc{Email: "a@x.com"})
	assert.True(t, errors.Is(err, context.Canceled))
}
