package exchange

import (
	"errors"
	"slices"
	"strings"
)

// Table is an immutable mapping of capability name to value.
type Table struct {
	m map[string]Value
}

// NewTable copies m into a new Table.
func NewTable(m map[string]Value) Table {
	cp := make(map[string]Value, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return Table{m: cp}
}

func (t Table) Get(name string) (Value, bool) {
	v, ok := t.m[name]
	return v, ok
}

func (t Table) Has(name string) bool {
	_, ok := t.m[name]
	return ok
}

func (t Table) Len() int { return len(t.m) }

// Keys returns the capability names in sorted order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t.m))
	for k := range t.m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Map returns a copy of the underlying mapping.
func (t Table) Map() map[string]Value {
	cp := make(map[string]Value, len(t.m))
	for k, v := range t.m {
		cp[k] = v
	}
	return cp
}

// Equal reports whether both tables hold the same keys with equal values.
func (t Table) Equal(o Table) bool {
	if len(t.m) != len(o.m) {
		return false
	}
	for k, v := range t.m {
		ov, ok := o.m[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

func (t Table) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range t.Keys() {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(t.m[k].String())
	}
	b.WriteByte('}')
	return b.String()
}

// Merge layers override on top of base. Every override key must already be
// in base or be listed in extensions. Neither input is modified.
func Merge(base, override Table, extensions ...string) (Table, error) {
	var errs []error
	for _, k := range override.Keys() {
		if base.Has(k) || slices.Contains(extensions, k) {
			continue
		}
		errs = append(errs, &ConfigurationError{Key: k})
	}
	if len(errs) > 0 {
		return Table{}, errors.Join(errs...)
	}

	merged := make(map[string]Value, base.Len()+override.Len())
	for k, v := range base.m {
		merged[k] = v
	}
	for k, v := range override.m {
		merged[k] = v
	}
	return Table{m: merged}, nil
}
