// Package validation holds the field-shape checks used by the request
// handlers, and a validator/v10 instance with those checks registered as
// struct tags.
package validation

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Tag names registered by New.
const (
	TagDateOnly   = "dateonly"
	TagEmailShape = "emailshape"
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsValidDate reports whether s is a YYYY-MM-DD string naming a real
// calendar date. The pattern alone admits "2024-02-30", so the value must
// also parse.
func IsValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(time.DateOnly, s)
	return err == nil
}

// IsValidEmail reports whether s has the shape local@domain.ext, where the
// domain contains exactly one dot and ext is 2 or 3 characters long.
//
// This is deliberately weak: it does not look at allowed characters or an
// empty local part, and it rejects multi-label domains such as a@b.co.uk.
// Existing callers rely on exactly this boundary, so do not tighten it.
func IsValidEmail(s string) bool {
	at := strings.Split(s, "@")
	if len(at) != 2 {
		return false
	}

	dot := strings.Split(at[1], ".")
	if len(dot) != 2 {
		return false
	}

	n := utf8.RuneCountInString(dot[1])
	return n == 2 || n == 3
}

// New returns a validator with the dateonly and emailshape tags registered.
// A *validator.Validate caches struct metadata and is safe for concurrent
// use, so build one at startup and share it.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// RegisterValidation only fails for an empty tag or nil func.
	_ = v.RegisterValidation(TagDateOnly, func(fl validator.FieldLevel) bool {
		return IsValidDate(fl.Field().String())
	})
	_ = v.RegisterValidation(TagEmailShape, func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})

	return v
}
