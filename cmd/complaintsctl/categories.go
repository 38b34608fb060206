package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	complaints "github.com/goliatone/go-complaints/components/complaints"
)

type categoriesCmd struct {
	List categoriesListCmd `cmd:"" default:"1" help:"List the configured categories."`
	Add  categoriesAddCmd  `cmd:"" help:"Append a category to the catalog file."`
}

type categoriesListCmd struct{}

func (cmd *categoriesListCmd) Run(_ context.Context, g *Globals) error {
	doc, err := g.catalog()
	if err != nil {
		return err
	}
	for _, cat := range doc.Categories {
		if cat.Description == "" {
			fmt.Fprintf(stdout, "%s\t%s\n", cat.Code, cat.Name)
			continue
		}
		fmt.Fprintf(stdout, "%s\t%s\t%s\n", cat.Code, cat.Name, cat.Description)
	}
	return nil
}

type categoriesAddCmd struct {
	Name        string `required:"" help:"Display name shown in the form."`
	Code        string `help:"Stable code (derived from the name when empty)."`
	Description string `help:"One-line description."`
}

func (cmd *categoriesAddCmd) Run(_ context.Context, g *Globals) error {
	if g.Catalog == "" {
		return errors.New("complaintsctl: --catalog (or COMPLAINTS_CATALOG) is required to add a category")
	}
	path, err := filepath.Abs(g.Catalog)
	if err != nil {
		return fmt.Errorf("complaintsctl: resolve catalog path: %w", err)
	}
	doc, err := loadOrInitCatalog(path)
	if err != nil {
		return err
	}
	cat := complaints.Category{Code: cmd.Code, Name: cmd.Name, Description: cmd.Description}
	if err := doc.Add(cat); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := complaints.EncodeCatalog(&buf, doc); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("complaintsctl: create catalog directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("complaintsctl: write catalog: %w", err)
	}
	added := doc.Categories[len(doc.Categories)-1]
	fmt.Fprintf(stdout, "✓ Added %s (%s) to %s\n", added.Name, added.Code, path)
	return nil
}

// loadOrInitCatalog starts from the built-in set when the file does not exist.
func loadOrInitCatalog(path string) (*complaints.CatalogDocument, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return complaints.DefaultCatalog(), nil
	}
	return complaints.ReadCatalog(path)
}
