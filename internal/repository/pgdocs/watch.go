package pgdocs

import (
	"context"
	"fmt"
	"time"

	"packshare/internal/store"
)

const defaultPollInterval = 500 * time.Millisecond

type subscription struct {
	snapshots chan store.Snapshot
	err       error
}

func (s *subscription) Snapshots() <-chan store.Snapshot {
	return s.snapshots
}

func (s *subscription) Err() error {
	return s.err
}

// Subscribe стоячая подписка на коллекцию. Postgres push-уведомлений о jsonb
// не даёт, поэтому слушатель опрашивает коллекцию и пересобирает снапшот,
// когда она изменилась. Первый снапшот отдаётся сразу. Ошибка опроса
// терминальна: канал закрывается, ретраи на вызывающей стороне.
func (r *Repository) Subscribe(ctx context.Context, path, orderBy string) (store.Subscription, error) {
	initial, err := r.List(ctx, path, orderBy)
	if err != nil {
		return nil, fmt.Errorf("initial snapshot: %w", err)
	}

	sub := &subscription{
		snapshots: make(chan store.Snapshot, 1),
	}
	sub.snapshots <- initial

	go r.watch(ctx, sub, path, orderBy, collectionVersion(initial))

	return sub, nil
}

func (r *Repository) watch(ctx context.Context, sub *subscription, path, orderBy string, seen string) {
	defer close(sub.snapshots)

	ticker := time.NewTicker(r.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snapshot, err := r.List(ctx, path, orderBy)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				sub.err = err
				return
			}

			version := collectionVersion(snapshot)
			if version == seen {
				continue
			}
			seen = version

			select {
			case sub.snapshots <- snapshot:
			case <-ctx.Done():
				return
			}
		}
	}
}

// collectionVersion дешёвый отпечаток коллекции: количество документов и
// максимальный updated_at. Merge-обновления всегда двигают updated_at,
// поэтому отпечаток меняется на любой записи.
func collectionVersion(snapshot store.Snapshot) string {
	var latest time.Time
	for _, doc := range snapshot {
		if doc.UpdatedAt.After(latest) {
			latest = doc.UpdatedAt
		}
	}
	return fmt.Sprintf("%d:%d", len(snapshot), latest.UnixNano())
}
