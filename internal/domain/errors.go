package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrDuplicate    = errors.New("recurso duplicado")
	ErrUnauthorized = errors.New("no autorizado")
)

// ValidationError entrada incompleta o mal formada. Field nombra el campo culpable (puede ir vacío).
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError construye el error con el mensaje "<field> required".
func NewValidationError(field string) *ValidationError {
	return &ValidationError{Field: field, Message: field + " required"}
}

func (e *ValidationError) Error() string { return e.Message }

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// StorageError fallo de conexión o de ejecución no atribuible a un constraint único.
type StorageError struct {
	Op  string
	Err error
}

// NewStorageError envuelve err indicando la operación.
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

func (e *StorageError) Error() string { return fmt.Sprintf("%s: %v", e.Op, e.Err) }

func (e *StorageError) Unwrap() error { return e.Err }
