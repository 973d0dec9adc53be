// Package errors provides the categorical errors returned by game commands.
package errors

import "net/http"

// Code is a machine-readable error code.
type Code string

const (
	// CodeInternal represents an unexpected failure.
	CodeInternal Code = "INTERNAL"

	// Lookup and permission errors
	CodeNotFound  Code = "NOT_FOUND"
	CodeForbidden Code = "FORBIDDEN"

	// Transition errors
	CodeInvalidState   Code = "INVALID_STATE"
	CodeAlreadyStarted Code = "ALREADY_STARTED"
	CodeAlreadyVoted   Code = "ALREADY_VOTED"
	CodeNotYourTurn    Code = "NOT_YOUR_TURN"
	CodeRoomFull       Code = "ROOM_FULL"

	// Input errors
	CodeInvalidWord   Code = "INVALID_WORD"
	CodeInvalidTarget Code = "INVALID_TARGET"
	CodeValidation    Code = "VALIDATION_ERROR"

	// CodeRateLimited is returned by the HTTP layer, never by the core.
	CodeRateLimited Code = "RATE_LIMITED"
)

// HTTPStatus maps a code to the status returned by the HTTP API.
func (c Code) HTTPStatus() int {
	switch c {
	case CodeNotFound:
		return http.StatusNotFound
	case CodeForbidden:
		return http.StatusForbidden
	case CodeInvalidState, CodeAlreadyStarted, CodeAlreadyVoted, CodeNotYourTurn, CodeRoomFull:
		return http.StatusConflict
	case CodeInvalidWord, CodeInvalidTarget, CodeValidation:
		return http.StatusUnprocessableEntity
	case CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
