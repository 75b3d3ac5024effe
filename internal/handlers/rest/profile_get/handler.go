package profile_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"packshare/internal/generated/dto"
	"packshare/internal/pkg/identity"
	profileservice "packshare/internal/service/profile"
	"packshare/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := identity.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	userProfile, err := h.service.GetProfile(r.Context(), actor.UID)
	if err != nil {
		switch {
		case errors.Is(err, profileservice.ErrProfileNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, profileservice.ErrMissingRequiredFields):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Profile{
		UID:                 userProfile.UID,
		Email:               userProfile.Email,
		Name:                userProfile.Name,
		Role:                userProfile.Role.String(),
		Credits:             userProfile.Credits,
		DeliveriesCompleted: userProfile.DeliveriesCompleted,
		CreatedAt:           userProfile.CreatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
