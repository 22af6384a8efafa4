package economy

import "errors"

// Purchase rejections; a rejected purchase never mutates state
var (
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrAlreadyOwnedOrMaxed = errors.New("already owned or maxed")
	ErrNotInProximity      = errors.New("not near the matching shop")
	ErrUnknownItem         = errors.New("no item in that slot")
)
