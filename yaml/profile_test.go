package yaml_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/infobox"
	"github.com/fwojciec/infobox/yaml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProfile(t *testing.T) {
	t.Parallel()

	t.Run("overrides defaults with file values", func(t *testing.T) {
		t.Parallel()

		p, err := yaml.ParseProfile([]byte(`
template: Infobox - minerál
duplicate_parameters:
  - vzorec
  - číslo CAS
`))
		require.NoError(t, err)
		assert.Equal(t, "Infobox - minerál", p.Template)
		assert.Equal(t, []string{"vzorec", "číslo CAS"}, p.DuplicateParameters)
		assert.Equal(t, infobox.DefaultValidatedParameter, p.IdentifierParameter)
	})

	t.Run("empty document yields defaults", func(t *testing.T) {
		t.Parallel()

		p, err := yaml.ParseProfile(nil)
		require.NoError(t, err)
		assert.Equal(t, infobox.DefaultProfile(), p)
	})

	t.Run("rejects malformed YAML", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ParseProfile([]byte("template: [unclosed"))
		require.Error(t, err)
		assert.Equal(t, infobox.EINVALID, infobox.ErrorCode(err))
	})

	t.Run("rejects invalid profile", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.ParseProfile([]byte(`template: ""`))
		require.Error(t, err)
		assert.Equal(t, infobox.EINVALID, infobox.ErrorCode(err))
	})
}

func TestLoadProfile(t *testing.T) {
	t.Parallel()

	t.Run("returns not found for missing file", func(t *testing.T) {
		t.Parallel()

		_, err := yaml.LoadProfile(filepath.Join(t.TempDir(), "missing.yaml"))
		require.Error(t, err)
		assert.Equal(t, infobox.ENOTFOUND, infobox.ErrorCode(err))
	})

	t.Run("round trips saved profile", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "profiles", "cswiki.yaml")
		want := &infobox.Profile{
			Template:            "Infobox - prvek",
			DuplicateParameters: []string{"číslo CAS", "PubChem"},
			IdentifierParameter: "číslo CAS",
		}
		require.NoError(t, yaml.SaveProfile(path, want))

		got, err := yaml.LoadProfile(path)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("reads file written by hand", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "profile.yaml")
		require.NoError(t, os.WriteFile(path, []byte("identifier_parameter: PubChem\n"), 0644))

		p, err := yaml.LoadProfile(path)
		require.NoError(t, err)
		assert.Equal(t, "PubChem", p.IdentifierParameter)
	})
}

func TestSaveProfile(t *testing.T) {
	t.Parallel()

	err := yaml.SaveProfile(filepath.Join(t.TempDir(), "p.yaml"), &infobox.Profile{})
	require.Error(t, err)
	assert.Equal(t, infobox.EINVALID, infobox.ErrorCode(err))
}
