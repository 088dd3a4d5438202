package sources

import (
	"os"
	"path/filepath"
	"testing"

	"freelance-radar-api/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Validate(Default().Sources()))
	assert.NotPanics(t, func() { MustDefault() })
}

func TestDefault_OrderAndContent(t *testing.T) {
	list := Default().Sources()

	require.Len(t, list, 12)
	assert.Equal(t, "Malt Community", list[0].DisplayName)
	assert.Equal(t, "Le Blog du Dirigeant", list[11].DisplayName)
	for _, src := range list {
		assert.Equal(t, domain.RegionFrance, src.Region)
	}
}

func TestSources_ReturnsCopy(t *testing.T) {
	reg := Default()

	list := reg.Sources()
	list[0].DisplayName = "mutated"

	assert.Equal(t, "Malt Community", reg.Sources()[0].DisplayName)
}

func TestNew_RejectsInvalid(t *testing.T) {
	good := domain.Source{URL: "https://example.com/feed", DisplayName: "Example", Weight: 0.5, Type: domain.SourceTypeAtom, Region: "france"}

	_, err := New(nil)
	assert.Error(t, err)

	_, err = New([]domain.Source{good, good})
	assert.ErrorContains(t, err, "duplicate")

	bad := good
	bad.Weight = 2
	_, err = New([]domain.Source{bad})
	assert.Error(t, err)

	reg, err := New([]domain.Source{good})
	require.NoError(t, err)
	assert.Equal(t, 1, reg.Len())
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sources.yaml")
	content := `
sources:
  - url: https://example.com/atom.xml
    name: Example Atom
    weight: 0.6
    type: atom
    region: france
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	reg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 1, reg.Len())

	src := reg.Sources()[0]
	assert.Equal(t, "Example Atom", src.DisplayName)
	assert.Equal(t, domain.SourceTypeAtom, src.Type)
	assert.InDelta(t, 0.6, src.Weight, 1e-9)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
