package entities

import "time"

type Package struct {
	ID               string
	SenderID         string
	SenderEmail      string
	SenderName       string
	PickupLocation   string
	DeliveryLocation string
	Size             PackageSizeType
	Description      string
	Status           PackageStatusType
	CreatedAt        time.Time

	// Поля назначения заполняются переходом pending -> assigned и
	// после этого никогда не очищаются.
	AssignedVolunteerID    string
	AssignedVolunteerEmail string
	AssignedVolunteerName  string
	AssignedAt             time.Time

	DeliveryTime time.Time
	CancelledAt  time.Time
}

type PackageStatusType string

const (
	PackagePending   PackageStatusType = "pending"
	PackageAssigned  PackageStatusType = "assigned"
	PackageInTransit PackageStatusType = "inTransit"
	PackageDelivered PackageStatusType = "delivered"
	PackageCancelled PackageStatusType = "cancelled"
)

func (s PackageStatusType) String() string {
	return string(s)
}

// Terminal сообщает, допускает ли статус дальнейшие переходы.
func (s PackageStatusType) Terminal() bool {
	return s == PackageDelivered || s == PackageCancelled
}

type PackageSizeType string

const (
	SizeSmall  PackageSizeType = "small"
	SizeMedium PackageSizeType = "medium"
	SizeLarge  PackageSizeType = "large"
)

func (t PackageSizeType) String() string {
	return string(t)
}

// PackageCreate данные нового запроса на доставку от получателя.
type PackageCreate struct {
	PickupLocation   string
	DeliveryLocation string
	Size             PackageSizeType
	Description      string
}

// PackageTransition результат перехода состояния для отдачи наружу
// и публикации события.
type PackageTransition struct {
	PackageID           string
	From                PackageStatusType
	To                  PackageStatusType
	SenderID            string
	AssignedVolunteerID string
	OccurredAt          time.Time
}
