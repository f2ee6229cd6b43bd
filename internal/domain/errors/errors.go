package errors

import (
	"net/http"

	"agenda/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails returns a copy carrying detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches any BaseError with the same business code, so copies made by
// WithDetails still satisfy errors.Is against the predefined values.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	// Event validation
	ErrEventTitleRequired = NewBaseError(
		http.StatusBadRequest,
		"EVENT_TITLE_REQUIRED",
		"Please enter an event title",
		"",
	)

	ErrEventDescriptionRequired = NewBaseError(
		http.StatusBadRequest,
		"EVENT_DESCRIPTION_REQUIRED",
		"Please enter an event description",
		"",
	)

	ErrEventTimeNotFuture = NewBaseError(
		http.StatusBadRequest,
		"EVENT_TIME_NOT_FUTURE",
		"Please select a future date and time",
		"",
	)

	ErrEventGroupRequired = NewBaseError(
		http.StatusBadRequest,
		"EVENT_GROUP_REQUIRED",
		"Please select a group for this event",
		"",
	)

	ErrEventNotFound = NewBaseError(
		http.StatusNotFound,
		"EVENT_NOT_FOUND",
		"Event not found",
		"",
	)

	// Group validation
	ErrGroupNameRequired = NewBaseError(
		http.StatusBadRequest,
		"GROUP_NAME_REQUIRED",
		"Please enter a group name",
		"",
	)

	ErrGroupMembersRequired = NewBaseError(
		http.StatusBadRequest,
		"GROUP_MEMBERS_REQUIRED",
		"Please add at least one member to the group",
		"",
	)

	ErrMemberEmailRequired = NewBaseError(
		http.StatusBadRequest,
		"MEMBER_EMAIL_REQUIRED",
		"Please enter an email address",
		"",
	)

	ErrInvalidEmail = NewBaseError(
		http.StatusBadRequest,
		"INVALID_EMAIL",
		"Please enter a valid email address",
		"",
	)

	ErrMemberAlreadyAdded = NewBaseError(
		http.StatusBadRequest,
		"MEMBER_ALREADY_ADDED",
		"This email is already added",
		"",
	)

	ErrCannotAddSelf = NewBaseError(
		http.StatusBadRequest,
		"CANNOT_ADD_SELF",
		"You cannot add yourself as a member",
		"",
	)

	ErrGroupNotFound = NewBaseError(
		http.StatusNotFound,
		"GROUP_NOT_FOUND",
		"Group not found",
		"",
	)

	// Profile
	ErrUserNotFound = NewBaseError(
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User information not found",
		"",
	)

	ErrUserNameRequired = NewBaseError(
		http.StatusBadRequest,
		"USER_NAME_REQUIRED",
		"Please enter your name",
		"",
	)
)

// StorageError represents a failed read or write against the key-value store, implementing the AppError interface
type StorageError struct {
	err     error
	details string
	read    bool
}

// NewStorageError creates an error for a write that did not reach the store
func NewStorageError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
	}
}

// NewStorageReadError creates an error for a read whose result cannot be trusted
func NewStorageReadError(err error, details string) AppError {
	return &StorageError{
		err:     err,
		details: details,
		read:    true,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	if e.read {
		return errors.Wrap(e.err, "storage read failed").Error()
	}

	return errors.Wrap(e.err, "storage write failed").Error()
}

// Unwrap exposes the backend error
func (e *StorageError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StorageError) ErrorCode() string {
	if e.read {
		return "STORAGE_READ_FAILED"
	}

	return "STORAGE_WRITE_FAILED"
}

// Message returns the user-facing message
func (e *StorageError) Message() string {
	if e.read {
		return "Failed to load data"
	}

	return "Failed to save data"
}

// Details returns detailed error information
func (e *StorageError) Details() string {
	return e.details
}
