package profile_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"packshare/internal/entities"
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

	var profileCreateDTO dto.ProfileCreate
	err := json.NewDecoder(r.Body).Decode(&profileCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	profileCreateEntity := entities.UserProfileCreate{
		UID:   actor.UID,
		Email: profileCreateDTO.Email,
		Name:  profileCreateDTO.Name,
		Role:  entities.UserRoleType(profileCreateDTO.Role),
	}

	userProfile, err := h.service.CreateProfile(r.Context(), profileCreateEntity)
	if err != nil {
		switch {
		case errors.Is(err, profileservice.ErrMissingRequiredFields),
			errors.Is(err, profileservice.ErrInvalidRole):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, profileservice.ErrProfileExists):
			w.WriteHeader(http.StatusConflict)
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
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
