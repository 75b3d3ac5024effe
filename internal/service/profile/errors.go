package profile

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidRole           = errors.New("invalid role")
	ErrProfileExists         = errors.New("profile already exists")
	ErrProfileNotFound       = errors.New("profile not found")
)
