package repositories

import "errors"

// ErrNotFound is returned when a requested row does not exist.
// Every implementation translates its backend's own sentinel to this one
// so handlers can map it to a 404 without knowing the storage engine.
var ErrNotFound = errors.New("record not found")
