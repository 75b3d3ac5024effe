//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_cancel_post_test
package package_cancel_post

import (
	"context"

	"packshare/internal/entities"
	"packshare/internal/pkg/identity"
	"packshare/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CancelPackage(ctx context.Context, actor identity.Identity, packageID string) (*entities.Package, error)
}
