// Package reward начисление награды волонтёру за доставленный пакет.
// Идемпотентность через маркер-документ в rewardGrants: id маркера равен
// id пакета, повторная доставка того же события начисления не дублирует.
package reward

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

type Reward struct {
	store     Store
	resolver  *paths.Resolver
	txManager TxManager
	log       logger.Logger
}

func New(log logger.Logger, documentStore Store, resolver *paths.Resolver, txManager TxManager) *Reward {
	return &Reward{
		store:     documentStore,
		resolver:  resolver,
		txManager: txManager,
		log:       log.With(),
	}
}

// Grant начисляет награду за переход в delivered: +10 кредитов,
// +1 к счётчику доставок. Маркер и инкремент пишутся одной транзакцией,
// существующий маркер означает уже выданную награду.
func (r *Reward) Grant(ctx context.Context, transition entities.PackageTransition) error {
	if transition.To != entities.PackageDelivered || transition.From == entities.PackageDelivered {
		return nil
	}
	if transition.AssignedVolunteerID == "" {
		return fmt.Errorf("%w: package %s", ErrMissingVolunteer, transition.PackageID)
	}

	grant := &entities.RewardGrant{
		PackageID:   transition.PackageID,
		VolunteerID: transition.AssignedVolunteerID,
		Credits:     entities.CreditsPerDelivery,
		GrantedAt:   time.Now().UTC(),
	}

	grantsPath := r.resolver.Private(paths.CollectionRewardGrants, grant.VolunteerID)
	profilePath := r.resolver.Private(paths.CollectionUserProfiles, grant.VolunteerID)

	var already *entities.RewardGrant
	err := r.txManager.Do(ctx, func(ctx context.Context) error {
		// firestore-транзакция требует все чтения раньше записей:
		// сначала маркер и профиль, только потом обе записи
		marker, err := r.store.Get(ctx, grantsPath, grant.PackageID)
		if err == nil {
			already, err = docmodel.RewardGrantFromDocument(marker)
			return err
		}
		if !errors.Is(err, store.ErrDocumentNotFound) {
			return fmt.Errorf("get grant marker: %w", err)
		}

		doc, err := r.store.Get(ctx, profilePath, paths.ProfileDocID)
		if err != nil {
			if errors.Is(err, store.ErrDocumentNotFound) {
				return fmt.Errorf("%w: %s", ErrProfileNotFound, grant.VolunteerID)
			}
			return fmt.Errorf("get volunteer profile: %w", err)
		}

		userProfile, err := docmodel.UserProfileFromDocument(doc)
		if err != nil {
			return fmt.Errorf("decode volunteer profile: %w", err)
		}

		err = r.store.CreateWithID(ctx, grantsPath, grant.PackageID, docmodel.RewardGrantToData(grant))
		if err != nil {
			return fmt.Errorf("create grant marker: %w", err)
		}

		partial := map[string]interface{}{
			"credits":             userProfile.Credits + grant.Credits,
			"deliveriesCompleted": userProfile.DeliveriesCompleted + 1,
		}
		if err := r.store.MergeUpdate(ctx, profilePath, paths.ProfileDocID, partial); err != nil {
			return fmt.Errorf("update volunteer counters: %w", err)
		}
		return nil
	})
	if err != nil {
		// проигравший гонку консумер: маркер успел появиться между
		// чтением и записью
		if errors.Is(err, store.ErrDocumentExists) {
			RewardGrantsSkippedTotal.Inc()
			r.log.With(
				logger.NewField("package_id", grant.PackageID),
				logger.NewField("volunteer_id", grant.VolunteerID),
			).Info("reward already granted, skipping")
			return nil
		}
		return err
	}
	if already != nil {
		RewardGrantsSkippedTotal.Inc()
		r.log.With(
			logger.NewField("package_id", grant.PackageID),
			logger.NewField("volunteer_id", grant.VolunteerID),
			logger.NewField("granted_at", already.GrantedAt),
		).Info("reward already granted, skipping")
		return nil
	}

	RewardGrantsTotal.Inc()
	r.log.With(
		logger.NewField("package_id", grant.PackageID),
		logger.NewField("volunteer_id", grant.VolunteerID),
		logger.NewField("credits", grant.Credits),
	).Info("reward granted")

	return nil
}
