// Package lifecycle машина состояний пакета и правило двойной записи:
// каждая операция меняет публичную копию документа и приватную копию
// отправителя в одной транзакции хранилища, id документа общий.
package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"time"

	"packshare/internal/docmodel"
	"packshare/internal/entities"
	"packshare/internal/pkg/identity"
	"packshare/internal/pkg/paths"
	"packshare/internal/store"
	"packshare/pkg/logger"
)

type Lifecycle struct {
	store     Store
	resolver  *paths.Resolver
	publisher EventPublisher
	txManager TxManager
	log       logger.Logger
}

func New(
	log logger.Logger,
	documentStore Store,
	resolver *paths.Resolver,
	publisher EventPublisher,
	txManager TxManager,
) *Lifecycle {
	return &Lifecycle{
		store:     documentStore,
		resolver:  resolver,
		publisher: publisher,
		txManager: txManager,
		log:       log.With(),
	}
}

// CreatePackage новый запрос на доставку от получателя, статус pending.
// Публичная копия создаётся первой, хранилище чеканит id, приватная копия
// отправителя пишется под тем же id.
func (l *Lifecycle) CreatePackage(ctx context.Context, actor identity.Identity, input entities.PackageCreate) (*entities.Package, error) {
	if actor.Role != entities.RoleRecipient {
		return nil, ErrRoleNotAllowed
	}
	if !isValidLocation(input.PickupLocation) || !isValidLocation(input.DeliveryLocation) {
		return nil, ErrMissingRequiredFields
	}
	if !isValidSize(input.Size) {
		return nil, ErrInvalidSize
	}

	pkg := &entities.Package{
		SenderID:         actor.UID,
		SenderEmail:      actor.Email,
		SenderName:       actor.Name,
		PickupLocation:   input.PickupLocation,
		DeliveryLocation: input.DeliveryLocation,
		Size:             input.Size,
		Description:      input.Description,
		Status:           entities.PackagePending,
		CreatedAt:        time.Now().UTC(),
	}
	data := docmodel.PackageToData(pkg)

	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		id, err := l.store.Create(ctx, l.resolver.Public(paths.CollectionPackages), data)
		if err != nil {
			return fmt.Errorf("create public copy: %w", err)
		}
		pkg.ID = id

		err = l.store.SetWithID(ctx, l.resolver.Private(paths.CollectionPackages, actor.UID), id, data)
		if err != nil {
			return fmt.Errorf("create sender copy: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.publishTransition(ctx, entities.PackageTransition{
		PackageID:  pkg.ID,
		From:       "",
		To:         entities.PackagePending,
		SenderID:   pkg.SenderID,
		OccurredAt: pkg.CreatedAt,
	})

	return pkg, nil
}

// ClaimPackage переход pending -> assigned. Статус перечитывается внутри
// транзакции, поэтому из двух конкурирующих волонтёров выигрывает ровно один.
func (l *Lifecycle) ClaimPackage(ctx context.Context, actor identity.Identity, packageID string) (*entities.Package, error) {
	if actor.Role != entities.RoleVolunteer {
		return nil, ErrRoleNotAllowed
	}
	if !isValidPackageID(packageID) {
		return nil, ErrInvalidPackageID
	}

	assignedAt := time.Now().UTC()
	partial := map[string]interface{}{
		"status":                 entities.PackageAssigned.String(),
		"assignedVolunteerId":    actor.UID,
		"assignedVolunteerEmail": actor.Email,
		"assignedAt":             assignedAt,
	}
	if actor.Name != "" {
		partial["assignedVolunteerName"] = actor.Name
	}

	var claimed *entities.Package
	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		pkg, raw, err := l.getPackage(ctx, packageID)
		if err != nil {
			return err
		}

		switch pkg.Status {
		case entities.PackagePending:
		case entities.PackageAssigned, entities.PackageInTransit:
			return ErrAlreadyClaimed
		default:
			return ErrNotPending
		}

		if err := l.applyTransition(ctx, pkg, raw, partial); err != nil {
			return err
		}

		pkg.Status = entities.PackageAssigned
		pkg.AssignedVolunteerID = actor.UID
		pkg.AssignedVolunteerEmail = actor.Email
		pkg.AssignedVolunteerName = actor.Name
		pkg.AssignedAt = assignedAt
		claimed = pkg
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.publishTransition(ctx, entities.PackageTransition{
		PackageID:           claimed.ID,
		From:                entities.PackagePending,
		To:                  entities.PackageAssigned,
		SenderID:            claimed.SenderID,
		AssignedVolunteerID: actor.UID,
		OccurredAt:          assignedAt,
	})

	return claimed, nil
}

// MarkDelivered терминальный переход -> delivered, доступен только
// назначенному волонтёру. Событие перехода потребляет reward-воркер.
func (l *Lifecycle) MarkDelivered(ctx context.Context, actor identity.Identity, packageID string) (*entities.Package, error) {
	if actor.Role != entities.RoleVolunteer {
		return nil, ErrRoleNotAllowed
	}
	if !isValidPackageID(packageID) {
		return nil, ErrInvalidPackageID
	}

	deliveryTime := time.Now().UTC()
	partial := map[string]interface{}{
		"status":       entities.PackageDelivered.String(),
		"deliveryTime": deliveryTime,
	}

	var delivered *entities.Package
	var from entities.PackageStatusType
	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		pkg, raw, err := l.getPackage(ctx, packageID)
		if err != nil {
			return err
		}

		if pkg.Status != entities.PackageAssigned && pkg.Status != entities.PackageInTransit {
			return ErrNotAssigned
		}
		if pkg.AssignedVolunteerID != actor.UID {
			return ErrNotAssignedVolunteer
		}

		if err := l.applyTransition(ctx, pkg, raw, partial); err != nil {
			return err
		}

		from = pkg.Status
		pkg.Status = entities.PackageDelivered
		pkg.DeliveryTime = deliveryTime
		delivered = pkg
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.publishTransition(ctx, entities.PackageTransition{
		PackageID:           delivered.ID,
		From:                from,
		To:                  entities.PackageDelivered,
		SenderID:            delivered.SenderID,
		AssignedVolunteerID: delivered.AssignedVolunteerID,
		OccurredAt:          deliveryTime,
	})

	return delivered, nil
}

// CancelPackage альтернативный терминальный переход, доступен исходному
// отправителю и только пока пакет pending.
func (l *Lifecycle) CancelPackage(ctx context.Context, actor identity.Identity, packageID string) (*entities.Package, error) {
	if !isValidPackageID(packageID) {
		return nil, ErrInvalidPackageID
	}

	cancelledAt := time.Now().UTC()
	partial := map[string]interface{}{
		"status":      entities.PackageCancelled.String(),
		"cancelledAt": cancelledAt,
	}

	var cancelled *entities.Package
	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		pkg, raw, err := l.getPackage(ctx, packageID)
		if err != nil {
			return err
		}

		if pkg.SenderID != actor.UID {
			return ErrNotPackageSender
		}
		if pkg.Status != entities.PackagePending {
			return ErrNotPending
		}

		if err := l.applyTransition(ctx, pkg, raw, partial); err != nil {
			return err
		}

		pkg.Status = entities.PackageCancelled
		pkg.CancelledAt = cancelledAt
		cancelled = pkg
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.publishTransition(ctx, entities.PackageTransition{
		PackageID:  cancelled.ID,
		From:       entities.PackagePending,
		To:         entities.PackageCancelled,
		SenderID:   cancelled.SenderID,
		OccurredAt: cancelledAt,
	})

	return cancelled, nil
}

// GetPackage чтение публичной копии с тем же правилом видимости, что и
// проекция: отправитель и сотрудник магазина видят пакет всегда, волонтёр
// только pending либо назначенный на него. Скрытый пакет неотличим от
// отсутствующего.
func (l *Lifecycle) GetPackage(ctx context.Context, actor identity.Identity, packageID string) (*entities.Package, error) {
	if !isValidPackageID(packageID) {
		return nil, ErrInvalidPackageID
	}

	pkg, _, err := l.getPackage(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if !visibleTo(actor, pkg) {
		return nil, ErrPackageNotFound
	}
	return pkg, nil
}

func visibleTo(actor identity.Identity, pkg *entities.Package) bool {
	if pkg.SenderID == actor.UID {
		return true
	}
	switch actor.Role {
	case entities.RoleStoreAssociate:
		return true
	case entities.RoleVolunteer:
		return pkg.Status == entities.PackagePending || pkg.AssignedVolunteerID == actor.UID
	default:
		return false
	}
}

func (l *Lifecycle) getPackage(ctx context.Context, packageID string) (*entities.Package, store.Document, error) {
	doc, err := l.store.Get(ctx, l.resolver.Public(paths.CollectionPackages), packageID)
	if err != nil {
		if errors.Is(err, store.ErrDocumentNotFound) {
			return nil, store.Document{}, ErrPackageNotFound
		}
		return nil, store.Document{}, fmt.Errorf("get public copy: %w", err)
	}

	pkg, err := docmodel.PackageFromDocument(doc)
	if err != nil {
		return nil, store.Document{}, err
	}
	return pkg, doc, nil
}

// applyTransition накладывает partial на публичную и приватную копии.
// Приватная копия перечитывается заранее: firestore-транзакция требует
// все чтения раньше записей, отсутствующая копия восстанавливается из
// публичной целиком.
func (l *Lifecycle) applyTransition(ctx context.Context, pkg *entities.Package, raw store.Document, partial map[string]interface{}) error {
	privatePath := l.resolver.Private(paths.CollectionPackages, pkg.SenderID)
	_, err := l.store.Get(ctx, privatePath, pkg.ID)
	privateMissing := errors.Is(err, store.ErrDocumentNotFound)
	if err != nil && !privateMissing {
		return fmt.Errorf("get sender copy: %w", err)
	}

	publicPath := l.resolver.Public(paths.CollectionPackages)
	if err := l.store.MergeUpdate(ctx, publicPath, pkg.ID, partial); err != nil {
		return fmt.Errorf("update public copy: %w", err)
	}

	if privateMissing {
		ReplicaRepairsTotal.Inc()
		return l.store.SetWithID(ctx, privatePath, pkg.ID, overlay(raw.Data, partial))
	}
	if err := l.store.MergeUpdate(ctx, privatePath, pkg.ID, partial); err != nil {
		return fmt.Errorf("update sender copy: %w", err)
	}
	return nil
}

func (l *Lifecycle) publishTransition(ctx context.Context, transition entities.PackageTransition) {
	PackageTransitionsTotal.WithLabelValues(transition.From.String(), transition.To.String()).Inc()

	// публикация после коммита: состояние уже изменено, ошибку брокера
	// наружу не отдаём, доставка at-least-once на совести реконсиляции
	if err := l.publisher.PublishStatusChanged(ctx, transition); err != nil {
		l.log.With(
			logger.NewField("package", transition.PackageID),
			logger.NewField("to", transition.To.String()),
			logger.NewField("error", err),
		).Error("publish package.status.changed")
	}
}

func overlay(data, partial map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(data)+len(partial))
	for k, v := range data {
		merged[k] = v
	}
	for k, v := range partial {
		merged[k] = v
	}
	return merged
}
