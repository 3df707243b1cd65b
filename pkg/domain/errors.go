package domain

import "errors"

// ErrInvalidChange is returned when a loosely typed partial update holds a value of the wrong type.
var ErrInvalidChange = errors.New("invalid change")
