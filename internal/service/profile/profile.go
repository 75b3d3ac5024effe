// Package profile профили пользователей: приватный документ
// users/{uid}/userProfile с фиксированным id.
package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"packshare/internal/docmodel"
	"packshare/internal/entities"
	"packshare/internal/pkg/paths"
	"packshare/internal/store"
	"packshare/pkg/logger"
)

type Profile struct {
	store    Store
	resolver *paths.Resolver
	log      logger.Logger
}

func New(log logger.Logger, documentStore Store, resolver *paths.Resolver) *Profile {
	return &Profile{
		store:    documentStore,
		resolver: resolver,
		log:      log.With(),
	}
}

// CreateProfile регистрирует профиль. Повторное создание под тем же uid
// отклоняется, профиль после создания меняет только reward-воркер.
func (p *Profile) CreateProfile(ctx context.Context, input entities.UserProfileCreate) (*entities.UserProfile, error) {
	if input.UID == "" || input.Email == "" {
		return nil, ErrMissingRequiredFields
	}
	switch input.Role {
	case entities.RoleRecipient, entities.RoleVolunteer, entities.RoleStoreAssociate:
	default:
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, input.Role)
	}

	userProfile := &entities.UserProfile{
		UID:       input.UID,
		Email:     input.Email,
		Name:      input.Name,
		Role:      input.Role,
		CreatedAt: time.Now().UTC(),
	}

	path := p.resolver.Private(paths.CollectionUserProfiles, input.UID)
	err := p.store.CreateWithID(ctx, path, paths.ProfileDocID, docmodel.UserProfileToData(userProfile))
	if err != nil {
		if errors.Is(err, store.ErrDocumentExists) {
			return nil, ErrProfileExists
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}

	p.log.With(
		logger.NewField("uid", userProfile.UID),
		logger.NewField("role", userProfile.Role.String()),
	).Info("profile created")

	return userProfile, nil
}

func (p *Profile) GetProfile(ctx context.Context, uid string) (*entities.UserProfile, error) {
	if uid == "" {
		return nil, ErrMissingRequiredFields
	}

	path := p.resolver.Private(paths.CollectionUserProfiles, uid)
	doc, err := p.store.Get(ctx, path, paths.ProfileDocID)
	if err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	userProfile, err := docmodel.UserProfileFromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", err)
	}
	return userProfile, nil
}
