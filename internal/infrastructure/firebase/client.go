package firebase

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"myshop/internal/domain/repository"
	"myshop/pkg/logger"
)

// Credentials selects how the Firebase app authenticates. JSON wins over
// File; with neither, Application Default Credentials (or the emulator named
// by FIRESTORE_EMULATOR_HOST) are used.
type Credentials struct {
	JSON string
	File string
}

func (c Credentials) options() ([]option.ClientOption, error) {
	if c.JSON != "" {
		logger.Info("Using Firebase service account from environment variable")
		return []option.ClientOption{option.WithCredentialsJSON([]byte(c.JSON))}, nil
	}
	if c.File != "" {
		if _, err := os.Stat(c.File); err != nil {
			return nil, fmt.Errorf("service account file %s: %w", c.File, err)
		}
		logger.Info("Using Firebase service account from file: %s", c.File)
		return []option.ClientOption{option.WithCredentialsFile(c.File)}, nil
	}
	logger.Warn("No Firebase service account configured; using application default credentials")
	return nil, nil
}

// Store is a repository.Store backed by Cloud Firestore.
type Store struct {
	client *firestore.Client
}

func Connect(ctx context.Context, projectID string, creds Credentials) (*Store, error) {
	opts, err := creds.options()
	if err != nil {
		return nil, err
	}

	app, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: projectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("create firestore client: %w", err)
	}

	logger.Info("Connected to Firestore project %q", projectID)
	return &Store{client: client}, nil
}

func (s *Store) Collection(name string) repository.Collection {
	return &Collection{ref: s.client.Collection(name)}
}

// Ping lists at most one collection to prove the backend answers.
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.client.Collections(ctx).Next()
	if err == iterator.Done {
		return nil
	}
	return err
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Close()
}
