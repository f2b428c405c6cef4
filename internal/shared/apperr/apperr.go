package apperr

import (
	"errors"
	"net/http"
)

// AppError is a domain error carrying a numeric application code distinct
// from the HTTP status it maps to. The code is stable across releases and
// is what operator tooling keys on.
type AppError struct {
	Code       int    `json:"code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Detail     string `json:"detail,omitempty"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return e.Message + ": " + e.Detail
	}
	return e.Message
}

// WithDetail returns a copy of the error with an extra detail string.
// The original sentinel value is left untouched so errors.Is keeps working.
func (e *AppError) WithDetail(detail string) *AppError {
	clone := *e
	clone.Detail = detail
	return &clone
}

// Is matches on the application code so wrapped copies created by
// WithDetail still compare equal to their sentinel.
func (e *AppError) Is(target error) bool {
	var appErr *AppError
	if !errors.As(target, &appErr) {
		return false
	}
	return e.Code == appErr.Code
}

// From extracts an *AppError from an error chain, or nil.
func From(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// Error code blocks follow the booking API convention:
// 1xxx generic, 2xxx events, 3xxx tickets, 4xxx seats, 5xxx orders,
// 7xxx venues, 8xxx reference data, 9xxx notifications.
var (
	ErrUncategorized = &AppError{Code: 9999, Message: "Uncategorized error", HTTPStatus: http.StatusInternalServerError}
	ErrInvalidInput  = &AppError{Code: 1001, Message: "Invalid input", HTTPStatus: http.StatusBadRequest}

	ErrEventNotFound    = &AppError{Code: 2001, Message: "Event not found", HTTPStatus: http.StatusNotFound}
	ErrInvalidEventDate = &AppError{Code: 2003, Message: "Invalid event date range", HTTPStatus: http.StatusBadRequest}

	ErrTicketTypeNotFound  = &AppError{Code: 3001, Message: "Ticket type not found", HTTPStatus: http.StatusNotFound}
	ErrTicketNotFound      = &AppError{Code: 3004, Message: "Ticket not found", HTTPStatus: http.StatusNotFound}
	ErrTicketNotCancellable = &AppError{Code: 3005, Message: "Ticket cannot be cancelled", HTTPStatus: http.StatusBadRequest}
	ErrQRCodeNotFound      = &AppError{Code: 3007, Message: "QR code not found", HTTPStatus: http.StatusNotFound}
	ErrTicketNotActive     = &AppError{Code: 3009, Message: "Ticket is not valid for check-in", HTTPStatus: http.StatusBadRequest}
	ErrOrderNotCompleted   = &AppError{Code: 3010, Message: "Order for this ticket is not completed", HTTPStatus: http.StatusBadRequest}

	ErrSeatNotFound      = &AppError{Code: 4001, Message: "Seat not found", HTTPStatus: http.StatusNotFound}
	ErrSeatAlreadyExists = &AppError{Code: 4004, Message: "Seat already exists", HTTPStatus: http.StatusConflict}
	ErrSeatHasTickets    = &AppError{Code: 4005, Message: "Seat has tickets and cannot be deleted", HTTPStatus: http.StatusBadRequest}

	ErrOrderNotFound = &AppError{Code: 5001, Message: "Order not found", HTTPStatus: http.StatusNotFound}

	ErrVenueNotFound = &AppError{Code: 7001, Message: "Venue not found", HTTPStatus: http.StatusNotFound}

	ErrCityNotFound = &AppError{Code: 8002, Message: "City not found", HTTPStatus: http.StatusNotFound}

	ErrNotificationNotFound = &AppError{Code: 9001, Message: "Notification not found", HTTPStatus: http.StatusNotFound}
)
