package app

import "errors"

var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrNotFound             = errors.New("not found")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrNoFutureDays         = errors.New("cannot navigate past today")
	ErrLastPet              = errors.New("cannot remove the last pet")
)
