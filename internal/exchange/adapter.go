package exchange

import (
	"errors"
	"strings"
)

// BaseContract is the capability set shared by every exchange, plus the
// extension keys variants may add without a base default.
type BaseContract struct {
	Defaults   Table
	Extensions []string
}

// Variant carries only the deltas an exchange needs on top of the base contract.
type Variant struct {
	Name      string
	Overrides Table
	// Supported marks exchanges that are officially tested.
	Supported bool
}

// Adapter exposes the effective capability set for one exchange.
type Adapter struct {
	name      string
	supported bool
	generic   bool
	caps      Table
}

// NewAdapter merges the variant overrides onto the base defaults.
func NewAdapter(base BaseContract, v Variant) (*Adapter, error) {
	name := normalizeName(v.Name)
	caps, err := Merge(base.Defaults, v.Overrides, base.Extensions...)
	if err != nil {
		tagExchange(err, name)
		return nil, err
	}
	return &Adapter{name: name, supported: v.Supported, caps: caps}, nil
}

// newGenericAdapter serves exchanges without a registered variant.
func newGenericAdapter(base BaseContract, name string) *Adapter {
	return &Adapter{name: name, generic: true, caps: base.Defaults}
}

func (a *Adapter) Name() string { return a.name }

// Supported reports whether the exchange is officially supported.
func (a *Adapter) Supported() bool { return a.supported }

// Generic reports whether the adapter fell back to the base capability set
// because no variant was registered for it.
func (a *Adapter) Generic() bool { return a.generic }

// Capabilities returns the effective capability table.
func (a *Adapter) Capabilities() Table { return a.caps }

// Capability returns the effective value for name.
func (a *Adapter) Capability(name string) (Value, error) {
	v, ok := a.caps.Get(name)
	if !ok {
		return Value{}, &UnknownCapabilityError{Exchange: a.name, Name: name}
	}
	return v, nil
}

// Int returns an integral capability.
func (a *Adapter) Int(name string) (int64, error) {
	v, err := a.Capability(name)
	if err != nil {
		return 0, err
	}
	i, ok := v.Int64()
	if !ok {
		return 0, &CapabilityTypeError{Name: name, Want: KindNumber, Got: v.Kind()}
	}
	return i, nil
}

func (a *Adapter) Bool(name string) (bool, error) {
	v, err := a.Capability(name)
	if err != nil {
		return false, err
	}
	b, ok := v.Boolean()
	if !ok {
		return false, &CapabilityTypeError{Name: name, Want: KindBool, Got: v.Kind()}
	}
	return b, nil
}

func (a *Adapter) String(name string) (string, error) {
	v, err := a.Capability(name)
	if err != nil {
		return "", err
	}
	s, ok := v.Str()
	if !ok {
		return "", &CapabilityTypeError{Name: name, Want: KindString, Got: v.Kind()}
	}
	return s, nil
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// tagExchange fills in the exchange name on every ConfigurationError in err.
func tagExchange(err error, name string) {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		for _, e := range joined.Unwrap() {
			tagExchange(e, name)
		}
		return
	}
	var ce *ConfigurationError
	if errors.As(err, &ce) && ce.Exchange == "" {
		ce.Exchange = name
	}
}
