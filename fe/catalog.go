package fe

import (
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Catalog is a named set of element descriptors, typically loaded from a
// yaml document of the form
//
//	elements:
//	  q2:
//	    dim: 2
//	    dofs_per_vertex: 1
//	    dofs_per_line: 1
//	    dofs_per_quad: 1
//
// Element names must not contain ".".
type Catalog struct {
	elements map[string]*FiniteElement
}

type catalogDoc struct {
	Elements map[string]FiniteElement `koanf:"elements"`
}

// LoadCatalog reads a catalog from a yaml file.
func LoadCatalog(path string) (*Catalog, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "load element catalog %s", path)
	}
	return catalogFromKoanf(k)
}

// ParseCatalog reads a catalog from yaml bytes.
func ParseCatalog(data []byte) (*Catalog, error) {
	m, err := yaml.Parser().Unmarshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "parse element catalog")
	}
	k := koanf.New(".")
	if err := k.Load(confmap.Provider(m, "."), nil); err != nil {
		return nil, errors.Wrap(err, "parse element catalog")
	}
	return catalogFromKoanf(k)
}

func catalogFromKoanf(k *koanf.Koanf) (*Catalog, error) {
	var doc catalogDoc
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, errors.Wrap(err, "decode element catalog")
	}
	c := &Catalog{elements: make(map[string]*FiniteElement, len(doc.Elements))}
	for name, el := range doc.Elements {
		if el.Name == "" {
			el.Name = name
		}
		if err := el.Validate(); err != nil {
			return nil, err
		}
		c.elements[name] = &el
	}
	return c, nil
}

// Get returns the element registered under name.
func (c *Catalog) Get(name string) (*FiniteElement, error) {
	el, ok := c.elements[name]
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "%q", name)
	}
	return el, nil
}

// Names returns the registered names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.elements))
	for name := range c.elements {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
