package package_deliver_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"

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

	var actionDTO dto.PackageAction
	err := json.NewDecoder(r.Body).Decode(&actionDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	pkg, err := h.service.MarkDelivered(r.Context(), actor, actionDTO.PackageID)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrInvalidPackageID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, lifecycle.ErrRoleNotAllowed),
			errors.Is(err, lifecycle.ErrNotAssignedVolunteer):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, lifecycle.ErrPackageNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, lifecycle.ErrNotAssigned):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	packageDTO := dto.Package{
		ID:                    pkg.ID,
		SenderID:              pkg.SenderID,
		SenderEmail:           pkg.SenderEmail,
		SenderName:            pkg.SenderName,
		PickupLocation:        pkg.PickupLocation,
		DeliveryLocation:      pkg.DeliveryLocation,
		Size:                  pkg.Size.String(),
		Description:           pkg.Description,
		Status:                pkg.Status.String(),
		CreatedAt:             pkg.CreatedAt,
		AssignedVolunteerID:   pkg.AssignedVolunteerID,
		AssignedVolunteerName: pkg.AssignedVolunteerName,
		AssignedAt:            pointer.ToTimeOrNil(pkg.AssignedAt),
		DeliveryTime:          pointer.ToTimeOrNil(pkg.DeliveryTime),
		CancelledAt:           pointer.ToTimeOrNil(pkg.CancelledAt),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(packageDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
