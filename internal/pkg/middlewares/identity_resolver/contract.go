package identity_resolver

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

type ProfileService interface {
	GetProfile(ctx context.Context, uid string) (*entities.UserProfile, error)
}
