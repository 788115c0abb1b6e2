package goal

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog is the set of goals that games are set up with.
type Catalog struct {
	Personal []PersonalGoal `yaml:"personal" json:"personal"`
	Common   []CommonGoal   `yaml:"common" json:"common"`
}

// ReadCatalog decodes a YAML catalog, validating each goal.
func ReadCatalog(r io.Reader) (*Catalog, error) {
	var c Catalog
	d := yaml.NewDecoder(r)
	d.KnownFields(true)
	if err := d.Decode(&c); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decoding goal catalog: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("reading goal catalog: validation: %w", err)
	}
	return &c, nil
}

// ReadCatalogFile reads the YAML catalog at the path.
func ReadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening goal catalog: %w", err)
	}
	defer f.Close()
	return ReadCatalog(f)
}

// validate ensures every goal in the catalog could have been created with NewPersonal or NewCommon.
func (c Catalog) validate() error {
	for i, g := range c.Personal {
		if err := validate(g.Name, g.Points); err != nil {
			return fmt.Errorf("personal goal %v: %w", i, err)
		}
	}
	for i, g := range c.Common {
		if err := validate(g.Name, g.Points); err != nil {
			return fmt.Errorf("common goal %v: %w", i, err)
		}
	}
	return nil
}
