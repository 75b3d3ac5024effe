// Package docmodel единственная точка (де)сериализации документов хранилища.
// Хранилище схемы не навязывает, поэтому все обязательные поля и допустимые
// значения проверяются здесь, а не размазываются по бизнес-логике.
package docmodel

import (
	"encoding/json"
	"fmt"
	"time"

	"packshare/internal/entities"
	"packshare/internal/store"
)

type PackageDoc struct {
	SenderID         string    `json:"senderId" firestore:"senderId"`
	SenderEmail      string    `json:"senderEmail" firestore:"senderEmail"`
	SenderName       string    `json:"senderName,omitempty" firestore:"senderName,omitempty"`
	PickupLocation   string    `json:"pickupLocation" firestore:"pickupLocation"`
	DeliveryLocation string    `json:"deliveryLocation" firestore:"deliveryLocation"`
	Size             string    `json:"size" firestore:"size"`
	Description      string    `json:"description,omitempty" firestore:"description,omitempty"`
	Status           string    `json:"status" firestore:"status"`
	CreatedAt        time.Time `json:"createdAt" firestore:"createdAt"`

	AssignedVolunteerID    string     `json:"assignedVolunteerId,omitempty" firestore:"assignedVolunteerId,omitempty"`
	AssignedVolunteerEmail string     `json:"assignedVolunteerEmail,omitempty" firestore:"assignedVolunteerEmail,omitempty"`
	AssignedVolunteerName  string     `json:"assignedVolunteerName,omitempty" firestore:"assignedVolunteerName,omitempty"`
	AssignedAt             *time.Time `json:"assignedAt,omitempty" firestore:"assignedAt,omitempty"`

	DeliveryTime *time.Time `json:"deliveryTime,omitempty" firestore:"deliveryTime,omitempty"`
	CancelledAt  *time.Time `json:"cancelledAt,omitempty" firestore:"cancelledAt,omitempty"`
}

// PackageFromDocument декодирует и валидирует сырой документ.
// Документ с отсутствующими обязательными полями или неизвестным статусом
// отвергается целиком, undefined наверх не протекает.
func PackageFromDocument(doc store.Document) (*entities.Package, error) {
	var model PackageDoc
	if err := decode(doc.Data, &model); err != nil {
		return nil, fmt.Errorf("package document %s: %w", doc.ID, err)
	}

	if model.SenderID == "" {
		return nil, fmt.Errorf("package document %s: %w: senderId", doc.ID, ErrMalformedDocument)
	}
	if model.CreatedAt.IsZero() {
		return nil, fmt.Errorf("package document %s: %w: createdAt", doc.ID, ErrMalformedDocument)
	}
	if !isKnownStatus(model.Status) {
		return nil, fmt.Errorf("package document %s: %w: status %q", doc.ID, ErrMalformedDocument, model.Status)
	}

	pkg := &entities.Package{
		ID:               doc.ID,
		SenderID:         model.SenderID,
		SenderEmail:      model.SenderEmail,
		SenderName:       model.SenderName,
		PickupLocation:   model.PickupLocation,
		DeliveryLocation: model.DeliveryLocation,
		Size:             entities.PackageSizeType(model.Size),
		Description:      model.Description,
		Status:           entities.PackageStatusType(model.Status),
		CreatedAt:        model.CreatedAt.UTC(),

		AssignedVolunteerID:    model.AssignedVolunteerID,
		AssignedVolunteerEmail: model.AssignedVolunteerEmail,
		AssignedVolunteerName:  model.AssignedVolunteerName,
	}

	if model.AssignedAt != nil {
		pkg.AssignedAt = model.AssignedAt.UTC()
	}
	if model.DeliveryTime != nil {
		pkg.DeliveryTime = model.DeliveryTime.UTC()
	}
	if model.CancelledAt != nil {
		pkg.CancelledAt = model.CancelledAt.UTC()
	}

	return pkg, nil
}

// PackageToData полный документ нового пакета для create/set.
func PackageToData(pkg *entities.Package) map[string]interface{} {
	data := map[string]interface{}{
		"senderId":         pkg.SenderID,
		"senderEmail":      pkg.SenderEmail,
		"pickupLocation":   pkg.PickupLocation,
		"deliveryLocation": pkg.DeliveryLocation,
		"size":             pkg.Size.String(),
		"description":      pkg.Description,
		"status":           pkg.Status.String(),
		"createdAt":        pkg.CreatedAt.UTC(),
	}
	if pkg.SenderName != "" {
		data["senderName"] = pkg.SenderName
	}
	return data
}

func isKnownStatus(status string) bool {
	switch entities.PackageStatusType(status) {
	case entities.PackagePending,
		entities.PackageAssigned,
		entities.PackageInTransit,
		entities.PackageDelivered,
		entities.PackageCancelled:
		return true
	default:
		return false
	}
}

// decode прогоняет map через JSON: нативные таймстампы обоих бекендов
// (time.Time у firestore, RFC3339-строки в JSONB) сходятся к time.Time.
func decode(data map[string]interface{}, target interface{}) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode raw document: %w", err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedDocument, err)
	}
	return nil
}
