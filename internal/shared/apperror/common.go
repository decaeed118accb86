package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)

	ErrInvalidID = New(
		CodeInvalidInput,
		"Id must be a positive integer",
		http.StatusBadRequest,
	)

	ErrIDMismatch = New(
		CodeInvalidInput,
		"Id in path does not match id in body",
		http.StatusBadRequest,
	)

	ErrEmptyBody = New(
		CodeInvalidInput,
		"Request body is required",
		http.StatusBadRequest,
	)

	ErrConcurrentUpdate = New(
		CodeConflict,
		"The record was modified by another request",
		http.StatusConflict,
	)

	ErrStillReferenced = New(
		CodeConflict,
		"The record is still referenced by other records",
		http.StatusConflict,
	)
)
