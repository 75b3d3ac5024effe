// Package identity_resolver достаёт uid из заголовка X-User-ID и
// дорезолвивает профиль в identity.Identity в контексте запроса.
// Запрос без заголовка отклоняется. Запрос без профиля пропускается
// с голым uid: роль пустая, ролевые проверки сервисов её отсеют.
package identity_resolver

import (
	"errors"
	"net/http"

	"packshare/internal/pkg/identity"
	profileservice "packshare/internal/service/profile"
	"packshare/pkg/logger"
)

const HeaderUserID = "X-User-ID"

func Middleware(log handlerLogger, profiles ProfileService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			uid := r.Header.Get(HeaderUserID)
			if uid == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			id := identity.Identity{UID: uid}

			userProfile, err := profiles.GetProfile(r.Context(), uid)
			switch {
			case err == nil:
				id.Email = userProfile.Email
				id.Name = userProfile.Name
				id.Role = userProfile.Role
			case errors.Is(err, profileservice.ErrProfileNotFound):
				// профиля ещё нет, пользователь только регистрируется
			default:
				log.With(
					logger.NewField("uid", uid),
					logger.NewField("error", err),
				).Error("identity: profile lookup failed")
				w.WriteHeader(http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(identity.WithIdentity(r.Context(), id)))
		})
	}
}
