package firedocs

import (
	"context"

	"cloud.google.com/go/firestore"
)

type txKey struct{}

// TxManager атомарность мульти-документных записей через нативную
// транзакцию firestore. Активная транзакция кладётся в контекст, операции
// Store подхватывают её оттуда. Все чтения внутри fn должны идти до записей,
// это ограничение firestore.
type TxManager struct {
	client *firestore.Client
}

func NewTxManager(client *firestore.Client) *TxManager {
	return &TxManager{
		client: client,
	}
}

func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

func txFromContext(ctx context.Context) *firestore.Transaction {
	tx, _ := ctx.Value(txKey{}).(*firestore.Transaction)
	return tx
}
