package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"packshare/internal/docmodel"
	"packshare/internal/entities"
	"packshare/internal/pkg/paths"
	"packshare/internal/store"
	"packshare/pkg/logger"
)

// ReconcileReplicas фоновая проверка инварианта двойной записи: для каждой
// публичной копии приватная копия отправителя должна существовать и
// совпадать по статусу и таймстампам переходов. Расхождения чинятся в
// сторону публичной копии, она источник истины. Нужна для документов,
// записанных старыми клиентами без транзакций.
func (l *Lifecycle) ReconcileReplicas(ctx context.Context) (int64, error) {
	snapshot, err := l.store.List(ctx, l.resolver.Public(paths.CollectionPackages), "createdAt")
	if err != nil {
		return 0, fmt.Errorf("list public packages: %w", err)
	}

	var repaired int64
	for _, doc := range snapshot {
		if ctx.Err() != nil {
			return repaired, ctx.Err()
		}

		pkg, err := docmodel.PackageFromDocument(doc)
		if err != nil {
			l.log.With(
				logger.NewField("document", doc.ID),
				logger.NewField("error", err),
			).Warn("reconcile: skipping malformed public copy")
			continue
		}

		fixed, err := l.reconcileOne(ctx, pkg, doc)
		if err != nil {
			l.log.With(
				logger.NewField("package", pkg.ID),
				logger.NewField("error", err),
			).Error("reconcile: repair failed")
			continue
		}
		if fixed {
			repaired++
			ReplicaRepairsTotal.Inc()
		}
	}

	return repaired, nil
}

func (l *Lifecycle) reconcileOne(ctx context.Context, pkg *entities.Package, public store.Document) (bool, error) {
	privatePath := l.resolver.Private(paths.CollectionPackages, pkg.SenderID)

	var fixed bool
	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		fixed = false

		privateDoc, err := l.store.Get(ctx, privatePath, pkg.ID)
		if errors.Is(err, store.ErrDocumentNotFound) {
			fixed = true
			return l.store.SetWithID(ctx, privatePath, pkg.ID, public.Data)
		}
		if err != nil {
			return fmt.Errorf("get sender copy: %w", err)
		}

		privatePkg, err := docmodel.PackageFromDocument(privateDoc)
		if err != nil || diverged(pkg, privatePkg) {
			fixed = true
			return l.store.SetWithID(ctx, privatePath, pkg.ID, public.Data)
		}
		return nil
	})
	return fixed, err
}

func diverged(public, private *entities.Package) bool {
	return public.Status != private.Status ||
		public.AssignedVolunteerID != private.AssignedVolunteerID ||
		!public.AssignedAt.Equal(private.AssignedAt) ||
		!public.DeliveryTime.Equal(private.DeliveryTime) ||
		!public.CancelledAt.Equal(private.CancelledAt)
}
