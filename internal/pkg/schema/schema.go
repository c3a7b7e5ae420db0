// Package schema validates decoded JSON request bodies against static
// per-entity, per-operation field tables. Validation is purely structural
// (required-ness, primitive types, enum membership); cross-entity checks are
// left to the database constraints.
package schema

import (
	"fmt"
	"math"
	"time"
)

type Type string

const (
	String   Type = "string"
	Integer  Type = "integer"
	DateTime Type = "date-time"
)

type Field struct {
	Name     string
	Type     Type
	Required bool
	Enum     []string
}

// Object is one operation's body contract. Fields are checked in declaration
// order so the reported violation is deterministic. Unknown fields in the
// body are ignored.
type Object struct {
	Fields []Field
}

type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("'%s' %s", e.Field, e.Reason)
}

// Validate reports the first violation found, or nil.
func (o Object) Validate(doc map[string]any) error {
	for _, f := range o.Fields {
		raw, ok := doc[f.Name]
		if !ok || raw == nil {
			if f.Required {
				return &ValidationError{Field: f.Name, Reason: "is a required property"}
			}
			continue
		}
		if err := f.check(raw); err != nil {
			return err
		}
	}
	return nil
}

func (f Field) check(raw any) error {
	switch f.Type {
	case String:
		s, ok := raw.(string)
		if !ok {
			return &ValidationError{Field: f.Name, Reason: "is not of type 'string'"}
		}
		if len(f.Enum) > 0 && !contains(f.Enum, s) {
			return &ValidationError{Field: f.Name, Reason: fmt.Sprintf("must be one of %v", f.Enum)}
		}
	case Integer:
		// encoding/json decodes all numbers to float64. Whole numbers beyond
		// the int64 range would overflow the typed accessors, so they are
		// rejected here too.
		n, ok := raw.(float64)
		if !ok || n != math.Trunc(n) || n < math.MinInt64 || n >= math.MaxInt64 {
			return &ValidationError{Field: f.Name, Reason: "is not of type 'integer'"}
		}
	case DateTime:
		s, ok := raw.(string)
		if !ok {
			return &ValidationError{Field: f.Name, Reason: "is not of type 'string'"}
		}
		if _, err := ParseTime(s); err != nil {
			return &ValidationError{Field: f.Name, Reason: "is not a valid ISO 8601 date-time"}
		}
	default:
		return &ValidationError{Field: f.Name, Reason: "has an unknown schema type"}
	}
	return nil
}

func contains(enum []string, v string) bool {
	for _, e := range enum {
		if e == v {
			return true
		}
	}
	return false
}

// ParseTime accepts RFC 3339 timestamps with or without a zone offset;
// offset-less values are taken as UTC.
func ParseTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02T15:04:05", s)
}

// Typed accessors for documents that already passed Validate.

func StringOf(doc map[string]any, name string) string {
	s, _ := doc[name].(string)
	return s
}

func StringPtrOf(doc map[string]any, name string) *string {
	s, ok := doc[name].(string)
	if !ok {
		return nil
	}
	return &s
}

func Int64Of(doc map[string]any, name string) int64 {
	n, _ := doc[name].(float64)
	return int64(n)
}

func TimeOf(doc map[string]any, name string) time.Time {
	s, _ := doc[name].(string)
	t, _ := ParseTime(s)
	return t
}
