package package_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"packshare/internal/entities"
	"packshare/internal/generated/dto"
	"packshare/internal/pkg/identity"
	"packshare/internal/service/lifecycle"
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

	var packageCreateDTO dto.PackageCreate
	err := json.NewDecoder(r.Body).Decode(&packageCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	packageCreateEntity := entities.PackageCreate{
		PickupLocation:   packageCreateDTO.PickupLocation,
		DeliveryLocation: packageCreateDTO.DeliveryLocation,
		Size:             entities.PackageSizeType(packageCreateDTO.Size),
		Description:      packageCreateDTO.Description,
	}

	pkg, err := h.service.CreatePackage(r.Context(), actor, packageCreateEntity)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrMissingRequiredFields),
			errors.Is(err, lifecycle.ErrInvalidSize):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, lifecycle.ErrRoleNotAllowed):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PackageCreateResponse{
		ID: pkg.ID,
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
