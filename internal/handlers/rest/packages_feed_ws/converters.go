package packages_feed_ws

import (
	"github.com/AlekSi/pointer"

	"packshare/internal/entities"
	"packshare/internal/generated/dto"
)

func newPackageList(packages []entities.Package) dto.PackageList {
	list := dto.PackageList{
		Packages: make([]dto.Package, 0, len(packages)),
	}
	for i := range packages {
		pkg := &packages[i]
		list.Packages = append(list.Packages, dto.Package{
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
	return list
}
