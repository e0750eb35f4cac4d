package config

import (
	"fmt"
	"strings"

	"github.com/Geun-Oh/not/internal/compare"
	"github.com/Geun-Oh/not/internal/log"
)

// FieldError reports one rejected setting.
type FieldError struct {
	Key    string
	Value  any
	Reason string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s=%q %s", e.Key, fmt.Sprint(e.Value), e.Reason)
}

// FieldErrors collects every rejected setting of one load, in the order
// they are checked. It renders on a single line so the CLI can print it after
// its "not: " prefix.
type FieldErrors []FieldError

func (e FieldErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap exposes each FieldError to errors.As.
func (e FieldErrors) Unwrap() []error {
	errs := make([]error, len(e))
	for i, fe := range e {
		errs[i] = fe
	}
	return errs
}

// Validate reports every invalid setting, or nil.
func (c *Config) Validate() FieldErrors {
	var errs FieldErrors

	if _, err := compare.ParsePolicy(c.Compare); err != nil {
		errs = append(errs, FieldError{
			Key:    "compare",
			Value:  c.Compare,
			Reason: "must be one of " + strings.Join(compare.Names(), ", "),
		})
	}

	if c.MaxLineBytes <= 0 {
		errs = append(errs, FieldError{
			Key:    "max_line_bytes",
			Value:  c.MaxLineBytes,
			Reason: "must be positive",
		})
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, FieldError{
			Key:    "log_level",
			Value:  c.LogLevel,
			Reason: "must be one of debug, info, warn, error, fatal",
		})
	}

	return errs
}
