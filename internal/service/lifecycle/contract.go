//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lifecycle_test
package lifecycle

import (
	"context"

	"packshare/internal/entities"
	"packshare/internal/store"
)

type Store interface {
	Get(ctx context.Context, path, id string) (store.Document, error)
	Create(ctx context.Context, path string, data map[string]interface{}) (string, error)
	SetWithID(ctx context.Context, path, id string, data map[string]interface{}) error
	MergeUpdate(ctx context.Context, path, id string, partial map[string]interface{}) error
	List(ctx context.Context, path, orderBy string) (store.Snapshot, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, transition entities.PackageTransition) error
}
