package domain

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidQuantity = errors.New("invalid quantity")
	ErrInvalidOption   = errors.New("invalid option")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrCheckoutSettled = errors.New("checkout already settled")
	ErrInvalidDetails  = errors.New("invalid delivery details")
	ErrCartLocked      = errors.New("cart is locked by a checkout in progress")
	ErrCartChanged     = errors.New("cart changed since checkout was submitted")
)
