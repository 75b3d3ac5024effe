//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=profile_test
package profile

import (
	"context"

	"packshare/internal/store"
)

type Store interface {
	Get(ctx context.Context, path, id string) (store.Document, error)
	CreateWithID(ctx context.Context, path, id string, data map[string]interface{}) error
}
