package repository

import (
	"context"
	"errors"

	"myshop/internal/domain/repository"
	apperrors "myshop/pkg/errors"
)

// translate turns a gateway error into the application error the API reports.
func translate(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, repository.ErrInvalidID):
		return apperrors.Validation("invalid id", err)
	case errors.Is(err, repository.ErrDuplicate):
		return apperrors.Conflict("duplicate document", err)
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.ServiceUnavailable("store did not respond in time", err)
	}
	return apperrors.StoreFailure(err.Error(), err)
}

// findOne decodes the first match into out and reports whether there was one.
func findOne(ctx context.Context, coll repository.Collection, filter repository.Filter, out interface{}) (bool, error) {
	err := coll.FindOne(ctx, filter, out)
	if errors.Is(err, repository.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, translate(err)
	}
	return true, nil
}

// findAll decodes every match, always yielding a non-nil slice.
func findAll[T any](ctx context.Context, coll repository.Collection, filter repository.Filter) ([]T, error) {
	var docs []T
	if err := coll.Find(ctx, filter, &docs); err != nil {
		return nil, translate(err)
	}
	if docs == nil {
		docs = []T{}
	}
	return docs, nil
}

// orUnset dereferences p for a partial update; nil unsets the field.
func orUnset[T any](p *T) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
