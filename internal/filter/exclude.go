package filter

// ExcludeFilter inverts another filter: Match returns true if the line
// should PASS, i.e. the wrapped filter does NOT match it.
type ExcludeFilter struct {
	inner Filter
}

// NewExcludeFilter creates a filter that rejects lines matched by f.
func NewExcludeFilter(f Filter) *ExcludeFilter {
	return &ExcludeFilter{inner: f}
}

// Match returns true if the wrapped filter does not match the line.
func (f *ExcludeFilter) Match(line string) bool {
	return !f.inner.Match(line)
}

// Name returns the filter description.
func (f *ExcludeFilter) Name() string {
	return "exclude:" + f.inner.Name()
}
