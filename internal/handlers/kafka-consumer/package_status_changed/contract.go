package package_status_changed

import (
	"context"

	"packshare/internal/entities"
	"packshare/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Grant(ctx context.Context, transition entities.PackageTransition) error
}
