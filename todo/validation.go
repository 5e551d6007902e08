package todo

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

var (
	// ErrEmptyTitle is returned when a todo title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when a todo title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title exceeds maximum length")

	// ErrInvalidStatus is returned when an invalid status is provided.
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidUnit is returned when an invalid lifespan unit is provided.
	ErrInvalidUnit = errors.New("invalid lifespan unit")

	// ErrInvalidLifespanAmount is returned when a lifespan amount is not positive.
	ErrInvalidLifespanAmount = errors.New("lifespan amount must be positive")

	// ErrLifespanTooLong is returned when a lifespan amount exceeds MaxLifespanAmount.
	ErrLifespanTooLong = errors.New("lifespan amount exceeds maximum")

	// ErrInvalidLifespan is returned when a lifespan string cannot be parsed.
	ErrInvalidLifespan = errors.New("invalid lifespan")

	// ErrInvalidLifecycle is returned when an invalid lifecycle is provided.
	ErrInvalidLifecycle = errors.New("invalid lifecycle")

	// ErrIndexOutOfRange is returned when an index does not address a todo.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrInvalidIndex is returned when an index argument is not a number.
	ErrInvalidIndex = errors.New("invalid index")

	// ErrInvalidTransition is returned when a status change is not allowed.
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrEditNotSupported is returned by Edit. Editing has no defined contract.
	ErrEditNotSupported = errors.New("edit is not supported")

	// ErrMissingCreatedAt is returned when a todo has no creation time.
	ErrMissingCreatedAt = errors.New("created date is required")
)

// ValidationError reports input that was rejected without changing the store.
type ValidationError struct {
	Err    error
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%v: %s", e.Err, e.Detail)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func invalid(sentinel error, format string, args ...any) error {
	return &ValidationError{Err: sentinel, Detail: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}

// ValidateTitle checks if the title is valid.
func ValidateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return &ValidationError{Err: ErrEmptyTitle}
	}
	if n := utf8.RuneCountInString(title); n > MaxTitleLength {
		return invalid(ErrTitleTooLong, "%d > %d", n, MaxTitleLength)
	}
	return nil
}

// ValidateLifespan checks if the lifespan is valid.
func ValidateLifespan(l Lifespan) error {
	if l.Amount <= 0 {
		return invalid(ErrInvalidLifespanAmount, "got %d", l.Amount)
	}
	if l.Amount > MaxLifespanAmount {
		return invalid(ErrLifespanTooLong, "%d > %d", l.Amount, MaxLifespanAmount)
	}
	if !l.Unit.IsValid() {
		return invalid(ErrInvalidUnit, "%q", l.Unit)
	}
	return nil
}

// ValidateTodo checks if a todo struct is valid for adding to the store.
func ValidateTodo(t *Todo) error {
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}
	return validateFields(t)
}

// validateStoredTodo checks a todo read from the store file. Title length is
// not enforced so hand-edited files stay loadable.
func validateStoredTodo(t *Todo) error {
	if strings.TrimSpace(t.Title) == "" {
		return &ValidationError{Err: ErrEmptyTitle}
	}
	return validateFields(t)
}

func validateFields(t *Todo) error {
	if !t.Status.IsValid() {
		return invalid(ErrInvalidStatus, "%q", t.Status)
	}

	if err := ValidateLifespan(t.Lifespan); err != nil {
		return err
	}

	if !t.Lifecycle.IsValid() {
		return invalid(ErrInvalidLifecycle, "%q", t.Lifecycle)
	}

	if t.CreatedAt.IsZero() {
		return &ValidationError{Err: ErrMissingCreatedAt}
	}

	return nil
}

func checkIndex(index, length int) error {
	if index < 0 || index >= length {
		if length == 0 {
			return invalid(ErrIndexOutOfRange, "%d (no todos)", index)
		}
		return invalid(ErrIndexOutOfRange, "%d (want 0..%d)", index, length-1)
	}
	return nil
}

// ParseIndex parses a todo index as shown by the list view.
func ParseIndex(value string) (int, error) {
	index, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0, invalid(ErrInvalidIndex, "%q", value)
	}
	return index, nil
}
