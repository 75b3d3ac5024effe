//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=profile_post_test
package profile_post

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
	CreateProfile(ctx context.Context, input entities.UserProfileCreate) (*entities.UserProfile, error)
}
