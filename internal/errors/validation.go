package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationBuilder accumulates field-level problems and produces a single
// CodeValidation error, or nil when every field passed.
type ValidationBuilder struct {
	fields map[string][]string
	order  []string
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{
		fields: make(map[string][]string),
	}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	if _, ok := vb.fields[field]; !ok {
		vb.order = append(vb.order, field)
	}
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// Fieldf adds a formatted validation error for a field
func (vb *ValidationBuilder) Fieldf(field, format string, args ...any) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf(format, args...))
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// HasErrors returns true if any field failed
func (vb *ValidationBuilder) HasErrors() bool {
	return len(vb.fields) > 0
}

// Build returns the error if there are validation errors, nil otherwise.
// The message keeps fields in the order they were first reported.
func (vb *ValidationBuilder) Build() error {
	if !vb.HasErrors() {
		return nil
	}

	parts := make([]string, 0, len(vb.order))
	for _, field := range vb.order {
		parts = append(parts, fmt.Sprintf("%s %s", field, strings.Join(vb.fields[field], ", ")))
	}

	fields := make(map[string][]string, len(vb.fields))
	for k, v := range vb.fields {
		fields[k] = append([]string(nil), v...)
	}

	return Newf(CodeValidation, "validation failed: %s", strings.Join(parts, "; ")).
		WithMeta("fields", fields)
}

// ValidationFields returns the sorted field names carried by a validation error
func ValidationFields(err error) []string {
	fields, ok := GetMeta(err)["fields"].(map[string][]string)
	if !ok {
		return nil
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ValidateRange checks if a value is within a range
func ValidateRange(field string, value, minValue, maxValue int, vb *ValidationBuilder) {
	if value < minValue || value > maxValue {
		vb.Fieldf(field, "must be between %d and %d", minValue, maxValue)
	}
}

// ValidateLength checks a string's rune length against inclusive bounds
func ValidateLength(field, value string, minValue, maxValue int, vb *ValidationBuilder) {
	n := len([]rune(value))
	switch {
	case n < minValue:
		vb.Fieldf(field, "must be at least %d characters", minValue)
	case n > maxValue:
		vb.Fieldf(field, "must be %d characters or less", maxValue)
	}
}

// ValidateEnum checks if a value is in a list of allowed values
func ValidateEnum(field, value string, allowed []string, vb *ValidationBuilder) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	vb.Fieldf(field, "must be one of: %s", strings.Join(allowed, ", "))
}
