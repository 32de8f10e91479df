package model

import "errors"

var (
	ErrValidation            = errors.New("validation error")                        // 400
	ErrWorkOrderNotFound     = errors.New("work order not found")                    // 404
	ErrInterventionNotFound  = errors.New("intervention not found")                  // 404
	ErrWorkOrderConflict     = errors.New("work order conflict")                     // 409
	ErrInvalidState          = errors.New("invalid work order state")                // 409
	ErrUnknownType           = errors.New("unknown intervention type")               // 422
	ErrDisallowedCombination = errors.New("disallowed intervention combination")     // 422
	ErrUntrackedType         = errors.New("intervention type does not track parts")  // 422
	ErrDeliveryFailed        = errors.New("reconciliation delivery failed")          // 502
	ErrUnknownStatus         = errors.New("unknown status")
)
