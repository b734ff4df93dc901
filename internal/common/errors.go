package common

import (
	"errors"
	"fmt"
)

// Common application errors.
var (
	ErrNotFound      = errors.New("resource not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrNoAttachments = errors.New("no processable attachments")
	ErrUserCancelled = errors.New("cancelled by user")
	ErrLedgerMissing = errors.New("ledger workbook not found")
	ErrValidation    = errors.New("validation failed")
)

// WrapError annotates err with a message, preserving the chain for errors.Is.
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
