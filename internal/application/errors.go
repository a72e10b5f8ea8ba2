package application

import (
	"errors"
	"fmt"

	"palette/internal/domain"
)

// Sentinel errors for common conditions
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidID        = errors.New("invalid ID")
	ErrInvalidOperation = errors.New("invalid operation")
	ErrNotRenaming      = errors.New("no rename in progress")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// MoveError represents a move-related failure
type MoveError struct {
	SourceID string
	DestID   string
	Reason   string
}

func (e *MoveError) Error() string {
	dest := e.DestID
	if dest == "" {
		dest = "root"
	}
	return fmt.Sprintf("cannot move %s to %s: %s", e.SourceID, dest, e.Reason)
}

func (e *MoveError) Is(target error) bool {
	return target == ErrInvalidOperation
}

// IsNotFound reports whether err means a folder or entry does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, domain.ErrFolderNotFound) ||
		errors.Is(err, domain.ErrEntryNotFound)
}
