//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=reward_test
package reward

import (
	"context"

	"packshare/internal/store"
)

type Store interface {
	Get(ctx context.Context, path, id string) (store.Document, error)
	CreateWithID(ctx context.Context, path, id string, data map[string]interface{}) error
	MergeUpdate(ctx context.Context, path, id string, partial map[string]interface{}) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
