package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpforge/alpforge/internal/consts"
)

const sampleCatalog = `
components:
  - id: edge-repos
    name: Edge repositories
    category: system
    priority: 10
  - id: zsh
    name: Zsh
    category: shell
    priority: 30
    depends_on: [edge-repos]
    packages: [zsh, zsh-vcs]
  - id: openssh
    name: OpenSSH server
    category: service
    priority: 40
    depends_on: [edge-repos]
    packages: [openssh]
    services: [sshd]
`

func TestParse(t *testing.T) {
	cat, warnings, err := Parse([]byte(sampleCatalog))
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, 3, cat.Len())

	zsh, ok := cat.Get("zsh")
	require.True(t, ok)
	assert.Equal(t, "Zsh", zsh.Name)
	assert.Equal(t, 30, zsh.Priority)
	assert.Equal(t, []string{"edge-repos"}, zsh.Dependencies)
	assert.Equal(t, []string{"zsh", "zsh-vcs"}, zsh.Packages)
}

func TestParseDefaultPriority(t *testing.T) {
	cat, _, err := Parse([]byte("components:\n  - id: plain\n    name: Plain\n"))
	require.NoError(t, err)

	comp, ok := cat.Get("plain")
	require.True(t, ok)
	assert.Equal(t, consts.DefaultPriority, comp.Priority)
}

func TestParseSkipsMalformedEntries(t *testing.T) {
	doc := `
components:
  - id: good
    name: Good
  - "just a string, not a component"
  - name: missing the id
`
	cat, warnings, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 1, cat.Len())
	assert.Len(t, warnings, 2)
}

func TestParseDuplicateIDIsFatal(t *testing.T) {
	doc := `
components:
  - id: twice
    name: First
  - id: twice
    name: Second
`
	cat, _, err := Parse([]byte(doc))
	assert.Nil(t, cat, "no partial catalog on hard errors")

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "twice", cfgErr.ID)
}

func TestParseUnknownDependencyIsFatal(t *testing.T) {
	doc := `
components:
  - id: lonely
    name: Lonely
    depends_on: [ghost]
`
	cat, _, err := Parse([]byte(doc))
	assert.Nil(t, cat)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "lonely", cfgErr.ID)
	assert.Contains(t, cfgErr.Error(), "ghost")
}

func TestParseRelaxedKeepsProblemEntries(t *testing.T) {
	doc := `
components:
  - id: twice
    name: First
  - id: twice
    name: Second
  - id: lonely
    depends_on: [ghost]
`
	cat, warnings, err := ParseRelaxed([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())
	assert.Len(t, warnings, 1)

	lonely, ok := cat.Get("lonely")
	require.True(t, ok)
	assert.Equal(t, []string{"ghost"}, lonely.Dependencies)
}

func TestAllAscendingByID(t *testing.T) {
	cat, _, err := Parse([]byte(sampleCatalog))
	require.NoError(t, err)

	var ids []string
	for _, comp := range cat.All() {
		ids = append(ids, comp.ID)
	}
	assert.Equal(t, []string{"edge-repos", "openssh", "zsh"}, ids)
}

func TestByCategory(t *testing.T) {
	cat, _, err := Parse([]byte(sampleCatalog))
	require.NoError(t, err)

	shells := cat.ByCategory("shell")
	require.Len(t, shells, 1)
	assert.Equal(t, "zsh", shells[0].ID)

	assert.Equal(t, []string{"service", "shell", "system"}, cat.Categories())
	assert.Empty(t, cat.ByCategory("nope"))
}

func TestRender(t *testing.T) {
	doc := `
components:
  - id: templated
    name: "Editor for {{ .Distro }}"
    description: "running {{ .Version | default \"unknown\" }}"
`
	cat, _, err := Parse([]byte(doc))
	require.NoError(t, err)

	data := struct {
		Distro  string
		Version string
	}{Distro: "alpine", Version: "3.22"}
	require.NoError(t, cat.Render(data))

	comp, _ := cat.Get("templated")
	assert.Equal(t, "Editor for alpine", comp.Name)
	assert.Equal(t, "running 3.22", comp.Description)
}

func TestDefaultCatalogLoads(t *testing.T) {
	cat, warnings, err := Default()
	require.NoError(t, err)
	assert.Empty(t, warnings)

	for _, id := range []string{"edge-repos", "zsh", "neovim", "openssh"} {
		_, ok := cat.Get(id)
		assert.Truef(t, ok, "embedded catalog misses %s", id)
	}
}
