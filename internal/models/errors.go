package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ValidationError - отсутствует или некорректно обязательное поле
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Reason)
}

// AssignmentReason объясняет, почему назначение отклонено
type AssignmentReason string

const (
	ReasonNotOnDuty     AssignmentReason = "not_on_duty"
	ReasonMissingPerson AssignmentReason = "missing_person"
)

// AssignmentError - назначение невозможно для указанного человека
type AssignmentError struct {
	IncidentID uuid.UUID
	Person     string
	Reason     AssignmentReason
}

func (e *AssignmentError) Error() string {
	return fmt.Sprintf("cannot assign %q to incident %s: %s", e.Person, e.IncidentID, e.Reason)
}

// ConflictError - недопустимый или повторный переход состояния
type ConflictError struct {
	IncidentID uuid.UUID
	Status     Status
	Reason     string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("conflict on incident %s (status %s): %s", e.IncidentID, e.Status, e.Reason)
}

type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with id %s not found", e.Entity, e.ID)
}

// TransientIOError - коллаборатор недоступен или не ответил вовремя
type TransientIOError struct {
	Op  string
	Err error
}

func (e *TransientIOError) Error() string {
	return fmt.Sprintf("transient failure in %s: %v", e.Op, e.Err)
}

func (e *TransientIOError) Unwrap() error {
	return e.Err
}

// AsTransient оборачивает ошибку ввода-вывода, не трогая уже типизированные ошибки ядра
func AsTransient(op string, err error) error {
	if err == nil || IsTyped(err) {
		return err
	}
	return &TransientIOError{Op: op, Err: err}
}

// IsTyped сообщает, является ли ошибка одной из ошибок таксономии
func IsTyped(err error) bool {
	var (
		ve *ValidationError
		ae *AssignmentError
		ce *ConflictError
		ne *NotFoundError
		te *TransientIOError
	)
	return errors.As(err, &ve) || errors.As(err, &ae) || errors.As(err, &ce) ||
		errors.As(err, &ne) || errors.As(err, &te)
}
