package firestoreclient

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"

	"packshare/internal/pkg/config"
	"packshare/pkg/logger"
)

func New(ctx context.Context, log logger.Logger, cfg *config.Store) (*firestore.Client, error) {
	client, err := firestore.NewClient(ctx, cfg.FirestoreProject)
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}

	log.With(
		logger.NewField("project", cfg.FirestoreProject),
	).Info("firestore client created")

	return client, nil
}
