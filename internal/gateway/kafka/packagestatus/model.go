package packagestatus

import "time"

type statusChangedEvent struct {
	PackageID           string    `json:"packageId"`
	From                string    `json:"from"`
	To                  string    `json:"to"`
	SenderID            string    `json:"senderId"`
	AssignedVolunteerID string    `json:"assignedVolunteerId,omitempty"`
	OccurredAt          time.Time `json:"occurredAt"`
}
