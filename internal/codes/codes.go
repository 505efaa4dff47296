// Package codes decodes the enumerated AIS fields shared across message
// types: EPFD type, ship type, navigation status and maneuver indicator.
package codes

import "errors"

// ErrUnknownValue is returned for reserved or undefined codes.
var ErrUnknownValue = errors.New("unknown enumeration value")
