package entities

import "time"

type UserProfile struct {
	UID       string
	Email     string
	Name      string
	Role      UserRoleType
	CreatedAt time.Time

	// Счётчики волонтёра, пишутся только reward-воркером.
	Credits             int64
	DeliveriesCompleted int64
}

type UserRoleType string

const (
	RoleRecipient      UserRoleType = "recipient"
	RoleVolunteer      UserRoleType = "volunteer"
	RoleStoreAssociate UserRoleType = "storeAssociate"
)

func (r UserRoleType) String() string {
	return string(r)
}

type UserProfileCreate struct {
	UID   string
	Email string
	Name  string
	Role  UserRoleType
}
