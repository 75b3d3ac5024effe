package docmodel

import (
	"fmt"
	"time"

	"packshare/internal/entities"
	"packshare/internal/store"
)

type UserProfileDoc struct {
	UID                 string    `json:"uid" firestore:"uid"`
	Email               string    `json:"email" firestore:"email"`
	Name                string    `json:"name,omitempty" firestore:"name,omitempty"`
	Role                string    `json:"role" firestore:"role"`
	Credits             int64     `json:"credits" firestore:"credits"`
	DeliveriesCompleted int64     `json:"deliveriesCompleted" firestore:"deliveriesCompleted"`
	CreatedAt           time.Time `json:"createdAt" firestore:"createdAt"`
}

func UserProfileFromDocument(doc store.Document) (*entities.UserProfile, error) {
	var model UserProfileDoc
	if err := decode(doc.Data, &model); err != nil {
		return nil, fmt.Errorf("profile document %s: %w", doc.ID, err)
	}

	if model.UID == "" {
		return nil, fmt.Errorf("profile document %s: %w: uid", doc.ID, ErrMalformedDocument)
	}
	if !isKnownRole(model.Role) {
		return nil, fmt.Errorf("profile document %s: %w: role %q", doc.ID, ErrMalformedDocument, model.Role)
	}

	return &entities.UserProfile{
		UID:                 model.UID,
		Email:               model.Email,
		Name:                model.Name,
		Role:                entities.UserRoleType(model.Role),
		Credits:             model.Credits,
		DeliveriesCompleted: model.DeliveriesCompleted,
		CreatedAt:           model.CreatedAt.UTC(),
	}, nil
}

func UserProfileToData(profile *entities.UserProfile) map[string]interface{} {
	return map[string]interface{}{
		"uid":                 profile.UID,
		"email":               profile.Email,
		"name":                profile.Name,
		"role":                profile.Role.String(),
		"credits":             profile.Credits,
		"deliveriesCompleted": profile.DeliveriesCompleted,
		"createdAt":           profile.CreatedAt.UTC(),
	}
}

func isKnownRole(role string) bool {
	switch entities.UserRoleType(role) {
	case entities.RoleRecipient, entities.RoleVolunteer, entities.RoleStoreAssociate:
		return true
	default:
		return false
	}
}
