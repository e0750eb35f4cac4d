package filter

import (
	"fmt"
	"strings"

	"github.com/Geun-Oh/not/internal/compare"
	"github.com/Geun-Oh/not/internal/fault"
)

// SubstringFilter matches lines that start with, contain or end with a
// literal pattern under a comparison policy.
type SubstringFilter struct {
	mode    Mode
	pattern string
	cmp     *compare.Comparer
	key     string // pattern in the comparer's key form
}

// Build creates the predicate for mode and pattern. An empty pattern or an
// undefined mode is a configuration error.
func Build(mode Mode, pattern string, cmp *compare.Comparer) (*SubstringFilter, error) {
	if pattern == "" {
		return nil, fmt.Errorf("%w: pattern is empty", fault.ErrConfig)
	}
	if cmp == nil {
		return nil, fmt.Errorf("%w: comparer is required", fault.ErrConfig)
	}
	switch mode {
	case ModeStartsWith, ModeContains, ModeEndsWith:
	default:
		return nil, fmt.Errorf("%w: mode %s is not selectable", fault.ErrConfig, mode)
	}
	return &SubstringFilter{
		mode:    mode,
		pattern: pattern,
		cmp:     cmp,
		key:     cmp.Key(pattern),
	}, nil
}

// Match returns true if the line has the configured relationship to the
// pattern.
func (f *SubstringFilter) Match(line string) bool {
	s := f.cmp.Key(line)
	switch f.mode {
	case ModeStartsWith:
		return strings.HasPrefix(s, f.key)
	case ModeContains:
		return strings.Contains(s, f.key)
	case ModeEndsWith:
		return strings.HasSuffix(s, f.key)
	}
	return false
}

// Mode returns the configured mode.
func (f *SubstringFilter) Mode() Mode {
	return f.mode
}

// Name returns the filter description.
func (f *SubstringFilter) Name() string {
	return fmt.Sprintf("%s:%q/%s", strings.ToLower(f.mode.String()), f.pattern, f.cmp.Policy())
}
