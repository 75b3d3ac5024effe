package lifecycle

import (
	"strings"

	"packshare/internal/entities"
)

func isValidPackageID(id string) bool {
	return strings.TrimSpace(id) != ""
}

func isValidLocation(location string) bool {
	return strings.TrimSpace(location) != ""
}

func isValidSize(size entities.PackageSizeType) bool {
	switch size {
	case entities.SizeSmall, entities.SizeMedium, entities.SizeLarge:
		return true
	default:
		return false
	}
}
