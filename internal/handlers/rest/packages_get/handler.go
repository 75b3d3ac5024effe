package packages_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/AlekSi/pointer"

	"packshare/internal/generated/dto"
	"packshare/internal/pkg/identity"
	"packshare/internal/service/projection"
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

	packages, err := h.service.List(r.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, projection.ErrUnknownRole):
			w.WriteHeader(http.StatusForbidden)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.PackageList{
		Packages: make([]dto.Package, 0, len(packages)),
	}
	for i := range packages {
		pkg := &packages[i]
		response.Packages = append(response.Packages, dto.Package{
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
		})
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
