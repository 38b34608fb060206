package complaints

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ettle/strcase"
	"gopkg.in/yaml.v3"
)

const (
	catalogVersionV1 = "1"
	// CatalogVersion exposes the current catalog format version for tooling.
	CatalogVersion = catalogVersionV1
)

// Category is one entry of the fixed set offered by the submission form.
type Category struct {
	Code        string `json:"code" yaml:"code"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// CatalogDocument models the YAML file listing complaint categories.
type CatalogDocument struct {
	Version    string     `json:"version" yaml:"version"`
	Categories []Category `json:"categories" yaml:"categories"`
	Source     string     `json:"-" yaml:"-"`
}

// DefaultCatalog returns the built-in category set.
func DefaultCatalog() *CatalogDocument {
	doc := &CatalogDocument{
		Version: CatalogVersion,
		Categories: []Category{
			{Name: "Roads", Description: "Potholes, damaged pavement, missing signs"},
			{Name: "Water", Description: "Leaks, outages, contamination"},
			{Name: "Electricity", Description: "Street lights, power cuts, exposed wiring"},
			{Name: "Sanitation", Description: "Drains, sewage, public toilets"},
			{Name: "Waste", Description: "Missed collection, illegal dumping"},
			{Name: "Public Safety", Description: "Hazards in public spaces"},
			{Name: "Other"},
		},
	}
	doc.applyDefaults()
	return doc
}

// ReadCatalog loads a catalog file from disk.
func ReadCatalog(path string) (*CatalogDocument, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("complaints: open catalog %s: %w", path, err)
	}
	defer f.Close()
	doc, err := DecodeCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("complaints: decode catalog %s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// DecodeCatalog reads a catalog from any reader.
func DecodeCatalog(r io.Reader) (*CatalogDocument, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var doc CatalogDocument
	if err := decoder.Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("complaints: catalog is empty")
		}
		return nil, fmt.Errorf("complaints: parse catalog: %w", err)
	}
	doc.applyDefaults()
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return &doc, nil
}

// EncodeCatalog writes doc as YAML.
func EncodeCatalog(w io.Writer, doc *CatalogDocument) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("complaints: write catalog: %w", err)
	}
	return encoder.Close()
}

// Validate ensures the catalog has unique, named categories.
func (doc *CatalogDocument) Validate() error {
	if doc.Version != catalogVersionV1 {
		return fmt.Errorf("complaints: unsupported catalog version %q", doc.Version)
	}
	if len(doc.Categories) == 0 {
		return fmt.Errorf("complaints: catalog defines no categories")
	}
	seen := make(map[string]struct{}, len(doc.Categories))
	for idx, cat := range doc.Categories {
		if strings.TrimSpace(cat.Name) == "" {
			return fmt.Errorf("complaints: catalog category at index %d is missing name", idx)
		}
		if _, exists := seen[cat.Code]; exists {
			return fmt.Errorf("complaints: catalog duplicates category code %s", cat.Code)
		}
		seen[cat.Code] = struct{}{}
	}
	return nil
}

// Add appends a category, deriving its code from the name when empty.
func (doc *CatalogDocument) Add(cat Category) error {
	if cat.Code == "" {
		cat.Code = CategoryCode(cat.Name)
	}
	for _, existing := range doc.Categories {
		if existing.Code == cat.Code {
			return fmt.Errorf("complaints: catalog already defines category %s", cat.Code)
		}
	}
	doc.Categories = append(doc.Categories, cat)
	return doc.Validate()
}

// Names lists category display names in catalog order.
func (doc *CatalogDocument) Names() []string {
	names := make([]string, len(doc.Categories))
	for i, cat := range doc.Categories {
		names[i] = cat.Name
	}
	return names
}

// Resolve finds a category by display name or code. An empty value selects the
// first entry, matching a form whose select always has a value.
func (doc *CatalogDocument) Resolve(value string) (Category, bool) {
	if len(doc.Categories) == 0 {
		return Category{}, false
	}
	if value == "" {
		return doc.Categories[0], true
	}
	for _, cat := range doc.Categories {
		if cat.Name == value || cat.Code == value {
			return cat, true
		}
	}
	return Category{}, false
}

// CategoryCode derives a stable code from a display name.
func CategoryCode(name string) string {
	return strcase.ToKebab(strings.TrimSpace(name))
}

func (doc *CatalogDocument) applyDefaults() {
	if doc.Version == "" {
		doc.Version = catalogVersionV1
	}
	for i := range doc.Categories {
		if doc.Categories[i].Code == "" {
			doc.Categories[i].Code = CategoryCode(doc.Categories[i].Name)
		}
	}
}
