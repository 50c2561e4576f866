package class

import (
	"errors"

	"github.com/l1jgo/classkit/internal/core/ecs"
)

// ClassError reports a failed narrowing: the target Node lacks the
// component the requested class is tagged with.
type ClassError struct {
	Message string
	Missing ecs.Kind
}

// NewClassError returns a ClassError carrying msg.
func NewClassError(msg string) *ClassError {
	return &ClassError{Message: msg}
}

func conversionFailed(missing ecs.Kind) *ClassError {
	return &ClassError{Message: "type conversion failed", Missing: missing}
}

func (e *ClassError) Error() string {
	if e.Missing.IsZero() {
		return "class: " + e.Message
	}
	return "class: " + e.Message + ": missing component " + e.Missing.String()
}

// Is makes every ClassError match ErrConversion.
func (e *ClassError) Is(target error) bool {
	return target == ErrConversion
}

// ErrConversion matches any *ClassError with errors.Is.
var ErrConversion = errors.New("class: type conversion failed")

var (
	// ErrDuplicateClass is returned when a class name is registered twice.
	ErrDuplicateClass = errors.New("class: duplicate class")

	// ErrUnknownParent is returned when a class extends an unregistered class.
	ErrUnknownParent = errors.New("class: unknown parent class")

	// ErrBrokenChain is returned when a declared ancestor chain is not the
	// parent's chain prefixed by the parent, or does not end at the root.
	ErrBrokenChain = errors.New("class: ancestor chain is not linear")

	// ErrChainTooDeep is returned when a chain exceeds the configured depth.
	ErrChainTooDeep = errors.New("class: ancestor chain too deep")

	// ErrDuplicateField is returned when a class declares a field twice.
	ErrDuplicateField = errors.New("class: duplicate field")

	// ErrShadowedField is returned when shadowing is disallowed and a class
	// redeclares an ancestor's field.
	ErrShadowedField = errors.New("class: field shadows ancestor field")

	// ErrKindConflict is returned when two classes claim the same component.
	ErrKindConflict = errors.New("class: component kind already bound")

	// ErrUnknownClass is returned by lookups and verification for names that
	// were never registered.
	ErrUnknownClass = errors.New("class: unknown class")
)
