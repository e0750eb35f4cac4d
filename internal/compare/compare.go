// Package compare resolves comparison policy names into substring testers.
//
// A policy decides how two strings are brought into a comparable form
// before a bytewise prefix, containment or suffix test is applied:
// culture-aware policies normalize to NFC and lower-case under a locale,
// ordinal policies compare the raw bytes or their simple upper-case
// mapping. Ordinal keys always have as many runes as their input.
package compare

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"github.com/Geun-Oh/not/internal/fault"
)

// Policy selects the text comparison semantics.
type Policy int

const (
	PolicyUndefined Policy = iota
	CurrentCulture
	CurrentCultureIgnoreCase
	InvariantCulture
	InvariantCultureIgnoreCase
	Ordinal
	OrdinalIgnoreCase
)

// Default is the policy used when none is configured.
const Default = CurrentCulture

var policyNames = map[Policy]string{
	CurrentCulture:             "CurrentCulture",
	CurrentCultureIgnoreCase:   "CurrentCultureIgnoreCase",
	InvariantCulture:           "InvariantCulture",
	InvariantCultureIgnoreCase: "InvariantCultureIgnoreCase",
	Ordinal:                    "Ordinal",
	OrdinalIgnoreCase:          "OrdinalIgnoreCase",
}

// Policies returns every selectable policy in declaration order.
func Policies() []Policy {
	return []Policy{
		CurrentCulture,
		CurrentCultureIgnoreCase,
		InvariantCulture,
		InvariantCultureIgnoreCase,
		Ordinal,
		OrdinalIgnoreCase,
	}
}

// String returns the canonical policy name.
func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return name
	}
	return "Undefined"
}

// ParsePolicy resolves a policy name. Matching is case-insensitive.
func ParsePolicy(name string) (Policy, error) {
	for _, p := range Policies() {
		if strings.EqualFold(name, policyNames[p]) {
			return p, nil
		}
	}
	if name == "" {
		return PolicyUndefined, fmt.Errorf("%w: comparison policy is empty", fault.ErrConfig)
	}
	return PolicyUndefined, fmt.Errorf("%w: unknown comparison policy %q (want one of %s)",
		fault.ErrConfig, name, strings.Join(Names(), ", "))
}

// Names returns the canonical names of all policies.
func Names() []string {
	names := make([]string, 0, len(policyNames))
	for _, p := range Policies() {
		names = append(names, policyNames[p])
	}
	return names
}

// Comparer tests substring relationships under a fixed policy.
// A Comparer is not safe for concurrent use.
type Comparer struct {
	policy Policy
	key    func(string) string
}

// Comparer builds the tester for p. The locale only affects
// CurrentCultureIgnoreCase.
func (p Policy) Comparer(locale language.Tag) (*Comparer, error) {
	var key func(string) string
	switch p {
	case Ordinal:
		key = func(s string) string { return s }
	case OrdinalIgnoreCase:
		// Per-rune simple mapping: ß stays ß, so a pattern never matches
		// half of an expanded character.
		key = strings.ToUpper
	case CurrentCulture, InvariantCulture:
		key = norm.NFC.String
	case InvariantCultureIgnoreCase:
		key = lowerNFC(language.Und)
	case CurrentCultureIgnoreCase:
		key = lowerNFC(locale)
	default:
		return nil, fmt.Errorf("%w: comparison policy %s is not selectable", fault.ErrConfig, p)
	}
	return &Comparer{policy: p, key: key}, nil
}

func lowerNFC(tag language.Tag) func(string) string {
	lower := cases.Lower(tag)
	return func(s string) string {
		return lower.String(norm.NFC.String(s))
	}
}

// Policy returns the policy the comparer was built for.
func (c *Comparer) Policy() Policy {
	return c.policy
}

// Key maps s into the form that is compared bytewise. Callers testing one
// pattern against many lines should compute the pattern key once.
func (c *Comparer) Key(s string) string {
	return c.key(s)
}
