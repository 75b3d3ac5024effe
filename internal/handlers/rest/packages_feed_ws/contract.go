//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=packages_feed_ws_test
package packages_feed_ws

import (
	"context"

	"packshare/internal/pkg/identity"
	"packshare/internal/service/projection"
	"packshare/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Watch(ctx context.Context, actor identity.Identity) (projection.Feed, error)
}
