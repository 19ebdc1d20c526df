package exchange

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
)

// Registry resolves configured exchange identifiers to adapters.
// Variants must be registered before the first Resolve; afterwards the
// registry is read-only and safe for concurrent use.
type Registry struct {
	base BaseContract

	mu       sync.RWMutex
	variants map[string]Variant
	frozen   bool
}

// NewRegistry creates an empty registry over the given base contract.
func NewRegistry(base BaseContract) *Registry {
	return &Registry{
		base:     base,
		variants: make(map[string]Variant),
	}
}

// NewRegistryFromCatalog creates a registry populated with every catalog variant.
func NewRegistryFromCatalog(cat *Catalog) (*Registry, error) {
	r := NewRegistry(cat.Base)
	for _, v := range cat.Variants {
		if err := r.Register(v); err != nil {
			return nil, err
		}
	}
	return r, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry built from the embedded catalog.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := NewRegistryFromCatalog(DefaultCatalog())
		if err != nil {
			panic(fmt.Sprintf("embedded capability catalog: %v", err))
		}
		defaultRegistry = r
	})
	return defaultRegistry
}

// Base returns the base contract every adapter is merged against.
func (r *Registry) Base() BaseContract { return r.base }

// Register adds a variant.
func (r *Registry) Register(v Variant) error {
	name := normalizeName(v.Name)
	if name == "" {
		return errors.New("exchange variant requires a name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return fmt.Errorf("register %s: %w", name, ErrRegistryFrozen)
	}
	if _, dup := r.variants[name]; dup {
		return fmt.Errorf("exchange variant %s already registered", name)
	}
	v.Name = name
	r.variants[name] = v
	return nil
}

// Variants returns the registered exchange names in sorted order.
func (r *Registry) Variants() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.variants))
	for name := range r.variants {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resolve returns the adapter for exchangeID. Unknown exchanges are not an
// error: they get the base capability set and a warning.
func (r *Registry) Resolve(exchangeID string) (*Adapter, error) {
	name := normalizeName(exchangeID)

	r.mu.Lock()
	r.frozen = true
	v, ok := r.variants[name]
	r.mu.Unlock()

	if !ok {
		slog.Warn("Exchange has no registered variant, using base capabilities",
			slog.String("exchange", name))
		return newGenericAdapter(r.base, name), nil
	}

	adapter, err := NewAdapter(r.base, v)
	if err != nil {
		return nil, &AdapterConstructionError{Exchange: name, Err: err}
	}

	if !adapter.Supported() {
		slog.Warn("Exchange is not officially supported, some features may not work as expected",
			slog.String("exchange", name))
	}
	return adapter, nil
}
