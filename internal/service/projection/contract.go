//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=projection_test
package projection

import (
	"context"

	"packshare/internal/store"
)

type Store interface {
	List(ctx context.Context, path, orderBy string) (store.Snapshot, error)
	Subscribe(ctx context.Context, path, orderBy string) (store.Subscription, error)
}
