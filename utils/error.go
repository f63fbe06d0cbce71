package utils

import "errors"

var ErrorRecordNotFound = errors.New("record not found")

// Inventory failure modes. These are expected conditions returned as
// values, never panics.
var (
	ErrorInsufficientStock          = errors.New("insufficient stock")
	ErrorInsufficientAvailableStock = errors.New("insufficient available stock")
	ErrorOverRelease                = errors.New("release exceeds reserved quantity")
)

var ErrorInvalidStatusTransition = errors.New("invalid status transition")
