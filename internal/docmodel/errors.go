package docmodel

import "errors"

var ErrMalformedDocument = errors.New("malformed document")
