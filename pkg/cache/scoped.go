package cache

// ScopedKeyer wraps a Keyer with a prefix so several users of one cache
// directory do not share entries.
//
// Example usage:
//
//	// Keys for one course offering
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "mech3300-2026:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// GridKey generates a prefixed key for a parsed worksheet.
func (k *ScopedKeyer) GridKey(contentHash, sheet string) string {
	return k.prefix + k.inner.GridKey(contentHash, sheet)
}
