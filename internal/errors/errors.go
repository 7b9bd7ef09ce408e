package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this staff id"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// ConflictError represents an attempt to create a roster row where one
// already exists for its composite key. The bulk assignment path recovers
// from it locally with skip-and-continue semantics; single-row paths
// surface it to the caller.
type ConflictError struct {
	Entity string // "roster entry" or "team roster"
	Key    string // human-readable composite key, e.g. "team x on 2024-06-10"
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s already exists for %s", e.Entity, e.Key)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// OccupiedDateError represents an attempt to record leave on a date where
// the member already holds a roster entry. The engine re-validates even
// though the UI is expected to have pre-filtered.
type OccupiedDateError struct {
	MemberID string
	Date     string
}

func (e *OccupiedDateError) Error() string {
	return fmt.Sprintf("member %s already has a roster entry on %s", e.MemberID, e.Date)
}

// Entity Not Found Errors
var (
	ErrCrewMemberNotFound  = &NotFoundError{Entity: "crew member"}
	ErrTeamNotFound        = &NotFoundError{Entity: "team"}
	ErrRosterEntryNotFound = &NotFoundError{Entity: "roster entry"}
	ErrTeamRosterNotFound  = &NotFoundError{Entity: "team roster"}
)

// Already Exists Errors
var (
	ErrCrewMemberExists = &AlreadyExistsError{Entity: "crew member", Context: "with this staff id"}
	ErrTeamExists       = &AlreadyExistsError{Entity: "team", Context: "with this name"}
)

// Business Logic Errors
var (
	ErrInvalidShiftType = errors.New("invalid shift type")
	ErrInvalidLeaveType = errors.New("invalid leave type")
	ErrInvalidDay       = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrNoDatesRequested = errors.New("no dates requested")
	ErrEmptyDayUpdate   = errors.New("day update must set at least one slot")
	ErrInvalidRole      = errors.New("member role does not fit the requested slot")
	ErrInvalidStatus    = errors.New("invalid status")
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsOccupiedDate checks if an error is an OccupiedDateError
func IsOccupiedDate(err error) bool {
	var occupiedErr *OccupiedDateError
	return errors.As(err, &occupiedErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewConflictError creates a new ConflictError
func NewConflictError(entity, key string) error {
	return &ConflictError{Entity: entity, Key: key}
}

// NewOccupiedDateError creates a new OccupiedDateError
func NewOccupiedDateError(memberID, date string) error {
	return &OccupiedDateError{MemberID: memberID, Date: date}
}
