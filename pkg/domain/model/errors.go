package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	// ErrBackendNetwork is returned when the backend could not be reached
	ErrBackendNetwork = goerr.New("backend network error")
	// ErrBackendServer is returned when the backend answered with a non-2xx status
	ErrBackendServer = goerr.New("backend server error")

	ErrInvalidTransition = goerr.New("invalid form phase transition")
	ErrFormUnmounted     = goerr.New("form is unmounted")
	ErrValidationFailed  = goerr.New("form validation failed")
	ErrSessionNotFound   = goerr.New("session not found in context")
)
