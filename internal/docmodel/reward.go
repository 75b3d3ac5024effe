package docmodel

import (
	"fmt"
	"time"

	"packshare/internal/entities"
	"packshare/internal/store"
)

type RewardGrantDoc struct {
	VolunteerID string    `json:"volunteerId" firestore:"volunteerId"`
	Credits     int64     `json:"credits" firestore:"credits"`
	GrantedAt   time.Time `json:"grantedAt" firestore:"grantedAt"`
}

func RewardGrantFromDocument(doc store.Document) (*entities.RewardGrant, error) {
	var model RewardGrantDoc
	if err := decode(doc.Data, &model); err != nil {
		return nil, fmt.Errorf("reward grant document %s: %w", doc.ID, err)
	}

	return &entities.RewardGrant{
		PackageID:   doc.ID,
		VolunteerID: model.VolunteerID,
		Credits:     model.Credits,
		GrantedAt:   model.GrantedAt.UTC(),
	}, nil
}

func RewardGrantToData(grant *entities.RewardGrant) map[string]interface{} {
	return map[string]interface{}{
		"volunteerId": grant.VolunteerID,
		"credits":     grant.Credits,
		"grantedAt":   grant.GrantedAt.UTC(),
	}
}
