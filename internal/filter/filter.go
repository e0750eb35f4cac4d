// Package filter defines the Filter interface and the substring predicates
// used to decide which lines are suppressed.
package filter

import (
	"fmt"
	"strings"

	"github.com/Geun-Oh/not/internal/fault"
)

// Filter determines whether a line matches a filtering criterion.
type Filter interface {
	// Match returns true if the line passes this filter.
	Match(line string) bool

	// Name returns a human-readable description of this filter.
	Name() string
}

// Mode selects the substring relationship a SubstringFilter tests for.
type Mode int

const (
	// ModeUndefined is the zero value. It is never a valid selection.
	ModeUndefined Mode = iota
	// ModeStartsWith matches lines that begin with the pattern.
	ModeStartsWith
	// ModeContains matches lines that contain the pattern anywhere.
	ModeContains
	// ModeEndsWith matches lines that end with the pattern.
	ModeEndsWith
)

var modeNames = map[Mode]string{
	ModeStartsWith: "StartsWith",
	ModeContains:   "Contains",
	ModeEndsWith:   "EndsWith",
}

// String returns the mode name.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return "Undefined"
}

// ParseMode converts a mode name to a Mode. Case-insensitive.
func ParseMode(s string) (Mode, error) {
	for _, m := range []Mode{ModeStartsWith, ModeContains, ModeEndsWith} {
		if strings.EqualFold(s, modeNames[m]) {
			return m, nil
		}
	}
	if s == "" {
		return ModeUndefined, fmt.Errorf("%w: mode is empty", fault.ErrConfig)
	}
	return ModeUndefined, fmt.Errorf("%w: unknown mode %q (want StartsWith, Contains or EndsWith)", fault.ErrConfig, s)
}
