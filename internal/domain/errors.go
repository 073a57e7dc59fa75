package domain

import "errors"

var (
	ErrEmptyField        = errors.New("native and foreign cannot be empty")
	ErrImportFormat      = errors.New("import payload must be a JSON array")
	ErrImportPending     = errors.New("an import is in progress")
	ErrClearNotConfirmed = errors.New("clear all was not confirmed")
	ErrWordNotFound      = errors.New("word not found")
)
