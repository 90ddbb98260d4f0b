package catalog

import (
	"testing"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportJSONRoundTrip(t *testing.T) {
	original, _, err := Parse([]byte(sampleCatalog))
	require.NoError(t, err)

	data, err := ExportJSON(original)
	require.NoError(t, err)

	// JSON is a YAML subset, so the regular parser reads it back.
	reparsed, warnings, err := Parse(data)
	require.NoError(t, err)
	assert.Empty(t, warnings)

	require.Equal(t, original.IDs(), reparsed.IDs())
	for _, id := range original.IDs() {
		want, _ := original.Get(id)
		got, _ := reparsed.Get(id)
		assert.Equal(t, want.Priority, got.Priority, id)
		assert.Equal(t, want.Category, got.Category, id)
		assert.Equal(t, want.Dependencies, got.Dependencies, id)
		assert.Equal(t, want.Packages, got.Packages, id)
	}
}

func TestExportEnv(t *testing.T) {
	cat, _, err := Parse([]byte(sampleCatalog))
	require.NoError(t, err)

	out, err := ExportEnv(cat)
	require.NoError(t, err)

	vars, err := godotenv.Unmarshal(out)
	require.NoError(t, err)

	assert.Equal(t, "edge-repos,openssh,zsh", vars["ALPFORGE_COMPONENTS"])
	assert.Equal(t, "Zsh", vars["ALPFORGE_ZSH_NAME"])
	assert.Equal(t, "30", vars["ALPFORGE_ZSH_PRIORITY"])
	assert.Equal(t, "edge-repos", vars["ALPFORGE_ZSH_DEPENDS"])
	assert.Equal(t, "zsh,zsh-vcs", vars["ALPFORGE_ZSH_PACKAGES"])
	assert.Equal(t, "system", vars["ALPFORGE_EDGE_REPOS_CATEGORY"])
}
