package services

import "errors"

// ErrInvalidPayload marks a create request that failed presence checks.
var ErrInvalidPayload = errors.New("invalid payload")
