package exchange

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRegistryFrozen is returned by Register once the registry has served a Resolve.
var ErrRegistryFrozen = errors.New("exchange registry is frozen")

// ConfigurationError reports an override key the base contract does not know.
type ConfigurationError struct {
	Exchange string
	Key      string
	Reason   string
}

func (e *ConfigurationError) Error() string {
	var b strings.Builder
	b.WriteString("capability configuration")
	if e.Exchange != "" {
		fmt.Fprintf(&b, " for %s", e.Exchange)
	}
	fmt.Fprintf(&b, ": key %q", e.Key)
	if e.Reason != "" {
		b.WriteString(": ")
		b.WriteString(e.Reason)
	} else {
		b.WriteString(" is not part of the base capability set")
	}
	return b.String()
}

// UnknownCapabilityError is returned when an adapter is asked for a name that
// was never part of its capability set.
type UnknownCapabilityError struct {
	Exchange string
	Name     string
}

func (e *UnknownCapabilityError) Error() string {
	return fmt.Sprintf("exchange %s: unknown capability %q", e.Exchange, e.Name)
}

// CapabilityTypeError is returned by the typed getters on Adapter.
type CapabilityTypeError struct {
	Name string
	Want Kind
	Got  Kind
}

func (e *CapabilityTypeError) Error() string {
	return fmt.Sprintf("capability %q is a %s, not a %s", e.Name, e.Got, e.Want)
}

// AdapterConstructionError wraps failures raised while building a registered variant.
type AdapterConstructionError struct {
	Exchange string
	Err      error
}

func (e *AdapterConstructionError) Error() string {
	return fmt.Sprintf("failed to construct adapter for %s: %v", e.Exchange, e.Err)
}

func (e *AdapterConstructionError) Unwrap() error { return e.Err }
