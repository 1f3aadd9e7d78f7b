// Package apperrors defines the errors the resolvers surface to clients and the single
// translation step from persistence errors into them.
package apperrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hackernews-graphql-api/internal/repository"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Codes reported in the GraphQL error extensions
const (
	CodeInvalidArgument  = "INVALID_ARGUMENT"
	CodeInvalidReference = "INVALID_REFERENCE"
)

// pqForeignKeyViolation is the SQLSTATE for foreign_key_violation
const pqForeignKeyViolation pq.ErrorCode = "23503"

// InvalidArgumentError is returned when a pagination argument is out of bounds
type InvalidArgumentError struct {
	Argument string
	Value    int
	Min      int
	Max      int
	HasMax   bool
}

func (e *InvalidArgumentError) Error() string {
	if e.HasMax {
		return fmt.Sprintf("invalid %s argument value '%d': must be between %d and %d", e.Argument, e.Value, e.Min, e.Max)
	}
	return fmt.Sprintf("invalid %s argument value '%d': must be at least %d", e.Argument, e.Value, e.Min)
}

// Extensions is picked up by the GraphQL engine and rendered next to the message
func (e *InvalidArgumentError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": CodeInvalidArgument, "argument": e.Argument}
}

// InvalidReferenceError is returned when a comment targets a link that does not exist.
// The message is the same whether the problem was caught before or during the write.
type InvalidReferenceError struct {
	ID string
}

func (e *InvalidReferenceError) Error() string {
	return fmt.Sprintf("cannot post comment on non-existing link with id '%s'", e.ID)
}

// Extensions is picked up by the GraphQL engine and rendered next to the message
func (e *InvalidReferenceError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": CodeInvalidReference}
}

// NotFoundError marks a required relation that is missing from storage.
// It is a data-integrity failure, not a client error.
type NotFoundError struct {
	Entity string
	Key    interface{}
	Err    error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %v not found", e.Entity, e.Key)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// IsUserError reports whether err should be shown to the client as-is
func IsUserError(err error) bool {
	var argErr *InvalidArgumentError
	var refErr *InvalidReferenceError
	return errors.As(err, &argErr) || errors.As(err, &refErr)
}

// IsForeignKeyViolation recognises the foreign-key-violation class of the supported backends
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqForeignKeyViolation
	}

	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	// SQLite without error translation only reports the constraint in its message
	return strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}

// TranslateReference converts a foreign key violation into an InvalidReferenceError for id.
// Any other error is returned unchanged.
func TranslateReference(err error, id string) error {
	if IsForeignKeyViolation(err) {
		return &InvalidReferenceError{ID: id}
	}
	return err
}

// TranslateNotFound converts repository.ErrNotFound into a NotFoundError.
// Any other error is returned unchanged.
func TranslateNotFound(err error, entity string, key interface{}) error {
	if errors.Is(err, repository.ErrNotFound) {
		return &NotFoundError{Entity: entity, Key: key, Err: err}
	}
	return err
}
