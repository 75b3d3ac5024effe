// Package identity представление аутентифицированного пользователя.
// Сама аутентификация внешняя: сервис получает проверенный uid от шлюза
// и дорезолвивает профиль, см. middleware identity.
package identity

import (
	"context"

	"packshare/internal/entities"
)

type Identity struct {
	UID   string
	Email string
	Name  string
	Role  entities.UserRoleType
}

type ctxKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext вторым значением сообщает, был ли запрос аутентифицирован.
func FromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ctxKey{}).(Identity)
	return id, ok
}
