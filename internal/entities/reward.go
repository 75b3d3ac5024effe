package entities

import "time"

// RewardGrant маркер начисления награды, id документа = PackageID.
// Существование маркера означает что награда за доставку уже выдана.
type RewardGrant struct {
	PackageID   string
	VolunteerID string
	Credits     int64
	GrantedAt   time.Time
}

const CreditsPerDelivery int64 = 10
