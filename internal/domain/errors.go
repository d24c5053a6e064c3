package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrNotFound - ресурс не найден (или мягко удален/истек там, где требуется активный)
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}

	// ErrInvalidTransition - переход не разрешен из текущего состояния членства
	ErrInvalidTransition = &DomainError{
		Code:    "INVALID_TRANSITION",
		Message: "membership state does not allow this operation",
	}

	// ErrCapacityExceeded - пакет приглашений превысил бы вместимость клуба
	ErrCapacityExceeded = &DomainError{
		Code:    "CAPACITY_EXCEEDED",
		Message: "club capacity exceeded",
	}

	// ErrNotAuthorized - у вызывающего нет нужной роли/состояния
	ErrNotAuthorized = &DomainError{
		Code:    "NOT_AUTHORIZED",
		Message: "caller is not authorized for this operation",
	}

	// ErrConflict - нарушен инвариант "один чек-лист на расписание"
	ErrConflict = &DomainError{
		Code:    "CONFLICT",
		Message: "a checklist already exists for this schedule",
	}

	// ErrInvariantViolation - HOST пытается выйти/сменить себе роль, либо выдать HOST
	ErrInvariantViolation = &DomainError{
		Code:    "INVARIANT_VIOLATION",
		Message: "operation would violate a club invariant",
	}

	// ErrPrivateClub - заявка в непубличный клуб
	ErrPrivateClub = &DomainError{
		Code:    "PRIVATE_CLUB",
		Message: "club does not accept applications",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}

// NewInvalidTransitionError создает ошибку INVALID_TRANSITION с причиной отказа
func NewInvalidTransitionError(reason string) *DomainError {
	return &DomainError{
		Code:    "INVALID_TRANSITION",
		Message: reason,
	}
}

// NewInvariantViolationError создает ошибку INVARIANT_VIOLATION с пояснением
func NewInvariantViolationError(reason string) *DomainError {
	return &DomainError{
		Code:    "INVARIANT_VIOLATION",
		Message: reason,
	}
}

// NewValidationError создает ошибку VALIDATION для некорректного ввода
func NewValidationError(reason string) *DomainError {
	return &DomainError{
		Code:    "VALIDATION",
		Message: reason,
	}
}
