package firedocs

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"packshare/internal/store"
)

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

// Subscribe нативный snapshot listener firestore. Каждое уведомление
// пересобирает полный упорядоченный список документов коллекции.
func (s *Store) Subscribe(ctx context.Context, path, orderBy string) (store.Subscription, error) {
	snapshots := s.client.Collection(path).OrderBy(orderBy, firestore.Desc).Snapshots(ctx)

	// первый снапшот читаем синхронно, чтобы ошибку доступа отдать сразу
	first, err := snapshots.Next()
	if err != nil {
		snapshots.Stop()
		return nil, fmt.Errorf("initial snapshot: %w", err)
	}

	sub := &subscription{
		snapshots: make(chan store.Snapshot, 1),
	}
	sub.snapshots <- querySnapshotDocuments(first)

	go watch(ctx, sub, snapshots)

	return sub, nil
}

func watch(ctx context.Context, sub *subscription, snapshots *firestore.QuerySnapshotIterator) {
	defer close(sub.snapshots)
	defer snapshots.Stop()

	for {
		snap, err := snapshots.Next()
		if err != nil {
			if status.Code(err) == codes.Canceled || ctx.Err() != nil {
				return
			}
			sub.err = err
			return
		}

		select {
		case sub.snapshots <- querySnapshotDocuments(snap):
		case <-ctx.Done():
			return
		}
	}
}

func querySnapshotDocuments(snap *firestore.QuerySnapshot) store.Snapshot {
	snapshot := store.Snapshot{}
	for {
		doc, err := snap.Documents.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			// итератор по уже полученному снапшоту не ходит в сеть
			break
		}
		snapshot = append(snapshot, toDocument(doc))
	}
	return snapshot
}
