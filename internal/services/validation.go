package services

import (
	"errors"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/dayplanner/internal/dto"
)

var (
	// ErrNotFound covers both a missing row and a row owned by someone else.
	ErrNotFound = errors.New("not found")

	hexColorPattern = regexp.MustCompile(`^#(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)
)

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Fields []dto.FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, dto.FieldError{Field: field, Message: message})
}

// err returns nil when nothing was recorded.
func (e *ValidationError) err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func fieldInvalid(field, message string) error {
	v := &ValidationError{}
	v.add(field, message)
	return v
}

func (e *ValidationError) requireText(field string, value *string) {
	if value == nil {
		e.add(field, "is required")
		return
	}
	if strings.TrimSpace(*value) == "" {
		e.add(field, "must not be empty")
	}
}

func (e *ValidationError) optionalText(field string, value *string) {
	if value != nil && strings.TrimSpace(*value) == "" {
		e.add(field, "must not be empty")
	}
}

func (e *ValidationError) oneOf(field string, value *string, allowed []string) {
	if value != nil && !slices.Contains(allowed, *value) {
		e.add(field, "must be one of "+strings.Join(allowed, ", "))
	}
}

func (e *ValidationError) positive(field string, value *int) {
	if value != nil && *value <= 0 {
		e.add(field, "must be greater than 0")
	}
}

func (e *ValidationError) hexColor(field string, value *string) {
	if value != nil && !hexColorPattern.MatchString(*value) {
		e.add(field, "must be a hex color such as #414A37")
	}
}

func (e *ValidationError) clock(field string, value *string) {
	if value == nil {
		return
	}
	if _, err := time.Parse("15:04", *value); err != nil || len(*value) != 5 {
		e.add(field, "must be a time of day in HH:MM form")
	}
}

func (e *ValidationError) requireTime(field string, value *time.Time) {
	if value == nil || value.IsZero() {
		e.add(field, "is required")
	}
}

// setNullable copies a present field into a patch, writing NULL for an
// explicit null.
func setNullable[T any](cols map[string]interface{}, column string, field dto.Nullable[T]) {
	if !field.Set {
		return
	}
	if field.Value == nil {
		cols[column] = nil
		return
	}
	cols[column] = *field.Value
}
