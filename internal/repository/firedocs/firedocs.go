// Package firedocs реализация документного хранилища поверх Cloud Firestore.
// Пути коллекций из paths ложатся на firestore напрямую: чётные сегменты это
// документы, нечётные коллекции.
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

type Store struct {
	client *firestore.Client
}

func New(client *firestore.Client) *Store {
	return &Store{
		client: client,
	}
}

func (s *Store) Get(ctx context.Context, path, id string) (store.Document, error) {
	ref := s.client.Collection(path).Doc(id)

	var snap *firestore.DocumentSnapshot
	var err error
	if tx := txFromContext(ctx); tx != nil {
		snap, err = tx.Get(ref)
	} else {
		snap, err = ref.Get(ctx)
	}
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return store.Document{}, store.ErrDocumentNotFound
		}
		return store.Document{}, fmt.Errorf("unexpected firestore get error: %w", err)
	}

	return toDocument(snap), nil
}

func (s *Store) Create(ctx context.Context, path string, data map[string]interface{}) (string, error) {
	col := s.client.Collection(path)

	if tx := txFromContext(ctx); tx != nil {
		ref := col.NewDoc()
		if err := tx.Create(ref, data); err != nil {
			return "", fmt.Errorf("unexpected firestore create error: %w", err)
		}
		return ref.ID, nil
	}

	ref, _, err := col.Add(ctx, data)
	if err != nil {
		return "", fmt.Errorf("unexpected firestore create error: %w", err)
	}
	return ref.ID, nil
}

func (s *Store) CreateWithID(ctx context.Context, path, id string, data map[string]interface{}) error {
	ref := s.client.Collection(path).Doc(id)

	var err error
	if tx := txFromContext(ctx); tx != nil {
		err = tx.Create(ref, data)
	} else {
		_, err = ref.Create(ctx, data)
	}
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return store.ErrDocumentExists
		}
		return fmt.Errorf("unexpected firestore create error: %w", err)
	}
	return nil
}

func (s *Store) SetWithID(ctx context.Context, path, id string, data map[string]interface{}) error {
	ref := s.client.Collection(path).Doc(id)

	var err error
	if tx := txFromContext(ctx); tx != nil {
		err = tx.Set(ref, data)
	} else {
		_, err = ref.Set(ctx, data)
	}
	if err != nil {
		return fmt.Errorf("unexpected firestore set error: %w", err)
	}
	return nil
}

func (s *Store) MergeUpdate(ctx context.Context, path, id string, partial map[string]interface{}) error {
	ref := s.client.Collection(path).Doc(id)

	updates := make([]firestore.Update, 0, len(partial))
	for field, value := range partial {
		updates = append(updates, firestore.Update{Path: field, Value: value})
	}

	var err error
	if tx := txFromContext(ctx); tx != nil {
		err = tx.Update(ref, updates)
	} else {
		_, err = ref.Update(ctx, updates)
	}
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return store.ErrDocumentNotFound
		}
		return fmt.Errorf("unexpected firestore update error: %w", err)
	}
	return nil
}

func (s *Store) List(ctx context.Context, path, orderBy string) (store.Snapshot, error) {
	query := s.client.Collection(path).OrderBy(orderBy, firestore.Desc)

	var iter *firestore.DocumentIterator
	if tx := txFromContext(ctx); tx != nil {
		iter = tx.Documents(query)
	} else {
		iter = query.Documents(ctx)
	}
	defer iter.Stop()

	snapshot := store.Snapshot{}
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("unexpected firestore list error: %w", err)
		}
		snapshot = append(snapshot, toDocument(snap))
	}

	return snapshot, nil
}

func toDocument(snap *firestore.DocumentSnapshot) store.Document {
	return store.Document{
		ID:        snap.Ref.ID,
		Data:      snap.Data(),
		UpdatedAt: snap.UpdateTime,
	}
}
