package exchange

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

//go:embed capabilities.yaml
var defaultCatalogYAML []byte

// Catalog is the capability data a Registry is populated from.
type Catalog struct {
	Base     BaseContract
	Variants []Variant
}

type catalogFile struct {
	Base       map[string]any         `yaml:"base"`
	Extensions []string               `yaml:"extensions"`
	Exchanges  map[string]variantFile `yaml:"exchanges"`
}

type variantFile struct {
	Supported bool           `yaml:"supported"`
	Overrides map[string]any `yaml:"overrides"`
}

// LoadCatalog parses capability data from YAML.
func LoadCatalog(r io.Reader) (*Catalog, error) {
	var f catalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode capability catalog: %w", err)
	}

	if len(f.Base) == 0 {
		return nil, errors.New("capability catalog has no base capabilities")
	}

	defaults, err := tableFromRaw("", f.Base)
	if err != nil {
		return nil, err
	}
	for _, ext := range f.Extensions {
		if defaults.Has(ext) {
			return nil, &ConfigurationError{Key: ext, Reason: "extension key already has a base default"}
		}
	}

	cat := &Catalog{Base: BaseContract{Defaults: defaults, Extensions: slices.Clone(f.Extensions)}}

	seen := make(map[string]bool, len(f.Exchanges))
	names := make([]string, 0, len(f.Exchanges))
	for name := range f.Exchanges {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		id := normalizeName(name)
		if id == "" {
			return nil, errors.New("capability catalog has an exchange with an empty name")
		}
		if seen[id] {
			return nil, fmt.Errorf("capability catalog lists exchange %q twice", id)
		}
		seen[id] = true

		vf := f.Exchanges[name]
		overrides, err := tableFromRaw(id, vf.Overrides)
		if err != nil {
			return nil, err
		}
		cat.Variants = append(cat.Variants, Variant{Name: id, Overrides: overrides, Supported: vf.Supported})
	}
	return cat, nil
}

// LoadCatalogFile reads a catalog from path.
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadCatalog(f)
}

// DefaultCatalog returns the catalog compiled into the binary.
func DefaultCatalog() *Catalog {
	cat, err := LoadCatalog(bytes.NewReader(defaultCatalogYAML))
	if err != nil {
		panic(fmt.Sprintf("embedded capability catalog is invalid: %v", err))
	}
	return cat
}

func tableFromRaw(exchange string, raw map[string]any) (Table, error) {
	m := make(map[string]Value, len(raw))
	for k, r := range raw {
		v, err := valueFromScalar(r)
		if err != nil {
			return Table{}, &ConfigurationError{Exchange: exchange, Key: k, Reason: err.Error()}
		}
		m[k] = v
	}
	return NewTable(m), nil
}
