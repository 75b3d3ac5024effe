// Package projection read-сторона: нормализованный, отфильтрованный по роли
// список пакетов поверх подписки на коллекцию хранилища.
package projection

import (
	"context"
	"fmt"

	"packshare/internal/docmodel"
	"packshare/internal/entities"
	"packshare/internal/pkg/identity"
	"packshare/internal/pkg/paths"
	"packshare/internal/store"
	"packshare/pkg/logger"
)

const orderField = "createdAt"

type filterFn func(pkg *entities.Package) bool

type Projection struct {
	store    Store
	resolver *paths.Resolver
	log      logger.Logger
}

func New(log logger.Logger, documentStore Store, resolver *paths.Resolver) *Projection {
	return &Projection{
		store:    documentStore,
		resolver: resolver,
		log:      log.With(),
	}
}

// List одноразовый срез: та же выборка что у Watch, без подписки.
func (p *Projection) List(ctx context.Context, actor identity.Identity) ([]entities.Package, error) {
	path, filter, err := p.viewFor(actor)
	if err != nil {
		return nil, err
	}

	snapshot, err := p.store.List(ctx, path, orderField)
	if err != nil {
		return nil, fmt.Errorf("list packages: %w", err)
	}
	return p.materialize(snapshot, filter), nil
}

// Watch стоячая подписка. Канал Feed закрывается при отмене контекста или
// терминальной ошибке подписки; ретраев нет, переподключение на вызывающей
// стороне.
func (p *Projection) Watch(ctx context.Context, actor identity.Identity) (Feed, error) {
	path, filter, err := p.viewFor(actor)
	if err != nil {
		return nil, err
	}

	sub, err := p.store.Subscribe(ctx, path, orderField)
	if err != nil {
		return nil, fmt.Errorf("subscribe: %w", err)
	}

	feed := &feed{
		packages: make(chan []entities.Package, 1),
		sub:      sub,
	}
	go feed.run(ctx, p, filter)

	return feed, nil
}

// viewFor правило видимости на роль: получатель смотрит свою приватную
// коллекцию без фильтра, волонтёр публичную с фильтром
// pending или назначено-мне, сотрудник магазина публичную целиком.
func (p *Projection) viewFor(actor identity.Identity) (string, filterFn, error) {
	switch actor.Role {
	case entities.RoleRecipient:
		return p.resolver.Private(paths.CollectionPackages, actor.UID), nil, nil
	case entities.RoleVolunteer:
		uid := actor.UID
		return p.resolver.Public(paths.CollectionPackages), func(pkg *entities.Package) bool {
			return pkg.Status == entities.PackagePending || pkg.AssignedVolunteerID == uid
		}, nil
	case entities.RoleStoreAssociate:
		return p.resolver.Public(paths.CollectionPackages), nil, nil
	default:
		return "", nil, fmt.Errorf("%w: %s", ErrUnknownRole, actor.Role)
	}
}

// materialize декодирует снапшот. Битые документы отбрасываются и
// считаются, в бизнес-логику они не протекают. Порядок снапшота
// (createdAt по убыванию) сохраняется.
func (p *Projection) materialize(snapshot store.Snapshot, filter filterFn) []entities.Package {
	packages := make([]entities.Package, 0, len(snapshot))
	for _, doc := range snapshot {
		pkg, err := docmodel.PackageFromDocument(doc)
		if err != nil {
			MalformedDocumentsTotal.Inc()
			p.log.With(
				logger.NewField("document", doc.ID),
				logger.NewField("error", err),
			).Warn("projection: dropping malformed document")
			continue
		}
		if filter != nil && !filter(pkg) {
			continue
		}
		packages = append(packages, *pkg)
	}
	return packages
}

// Feed живая лента: канал полных пересобранных списков, по одному
// на изменение коллекции.
type Feed interface {
	Packages() <-chan []entities.Package

	// Err причина закрытия канала, nil при штатной отписке.
	Err() error
}

type feed struct {
	packages chan []entities.Package
	sub      store.Subscription
	err      error
}

func (f *feed) Packages() <-chan []entities.Package {
	return f.packages
}

func (f *feed) Err() error {
	return f.err
}

func (f *feed) run(ctx context.Context, p *Projection, filter filterFn) {
	defer close(f.packages)

	for {
		select {
		case <-ctx.Done():
			return
		case snapshot, ok := <-f.sub.Snapshots():
			if !ok {
				f.err = f.sub.Err()
				return
			}

			select {
			case f.packages <- p.materialize(snapshot, filter):
			case <-ctx.Done():
				return
			}
		}
	}
}
