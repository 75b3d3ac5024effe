package reward

import "errors"

var (
	ErrMissingVolunteer = errors.New("transition has no assigned volunteer")
	ErrProfileNotFound  = errors.New("volunteer profile not found")
)
