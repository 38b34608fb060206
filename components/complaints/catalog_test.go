package complaints

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogDerivesCodes(t *testing.T) {
	doc := DefaultCatalog()
	require.NoError(t, doc.Validate())
	cat, ok := doc.Resolve("Public Safety")
	require.True(t, ok)
	assert.Equal(t, "public-safety", cat.Code)

	first, ok := doc.Resolve("")
	require.True(t, ok)
	assert.Equal(t, "Roads", first.Name)

	_, ok = doc.Resolve("Parking")
	assert.False(t, ok)
}

func TestDecodeCatalog(t *testing.T) {
	src := `
categories:
  - name: Noise
  - name: Street Lights
    code: lights
`
	doc, err := DecodeCatalog(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, CatalogVersion, doc.Version)
	assert.Equal(t, []string{"Noise", "Street Lights"}, doc.Names())
	cat, ok := doc.Resolve("lights")
	require.True(t, ok)
	assert.Equal(t, "Street Lights", cat.Name)
}

func TestDecodeCatalogRejectsInvalid(t *testing.T) {
	_, err := DecodeCatalog(strings.NewReader(""))
	assert.Error(t, err)

	_, err = DecodeCatalog(strings.NewReader("version: \"2\"\ncategories:\n  - name: A\n"))
	assert.ErrorContains(t, err, "unsupported catalog version")

	_, err = DecodeCatalog(strings.NewReader("categories:\n  - name: A\n  - name: a\n"))
	assert.ErrorContains(t, err, "duplicates")

	_, err = DecodeCatalog(strings.NewReader("categories:\n  - name: A\n    colour: red\n"))
	assert.Error(t, err)
}

func TestCatalogAddAndEncode(t *testing.T) {
	doc := DefaultCatalog()
	require.NoError(t, doc.Add(Category{Name: "Noise Pollution"}))
	assert.Error(t, doc.Add(Category{Name: "Noise Pollution"}))

	var buf bytes.Buffer
	require.NoError(t, EncodeCatalog(&buf, doc))
	decoded, err := DecodeCatalog(&buf)
	require.NoError(t, err)
	cat, ok := decoded.Resolve("noise-pollution")
	require.True(t, ok)
	assert.Equal(t, "Noise Pollution", cat.Name)
}
