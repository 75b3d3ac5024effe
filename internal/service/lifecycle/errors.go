package lifecycle

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidPackageID      = errors.New("invalid package id")
	ErrInvalidSize           = errors.New("invalid package size")
	ErrRoleNotAllowed        = errors.New("role is not allowed to perform this operation")

	ErrPackageNotFound      = errors.New("package not found")
	ErrAlreadyClaimed       = errors.New("package already claimed")
	ErrNotPending           = errors.New("package is not pending")
	ErrNotAssigned          = errors.New("package is not assigned")
	ErrNotAssignedVolunteer = errors.New("package is assigned to another volunteer")
	ErrNotPackageSender     = errors.New("package belongs to another sender")
)
