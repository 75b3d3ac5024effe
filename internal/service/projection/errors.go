package projection

import "errors"

var ErrUnknownRole = errors.New("unknown role")
