package components

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alpforge/alpforge/internal/catalog"
	"github.com/alpforge/alpforge/internal/core"
)

// mockPM is a scriptable PackageManager.
type mockPM struct {
	installed  map[string]bool
	installErr error
	updateErr  error

	installedPkgs []string
	removedPkgs   []string
	indexUpdates  int
}

func (m *mockPM) Install(ctx *core.SystemContext, pkgs ...string) error {
	if m.installErr != nil {
		return m.installErr
	}
	m.installedPkgs = append(m.installedPkgs, pkgs...)
	return nil
}

func (m *mockPM) Remove(ctx *core.SystemContext, pkgs ...string) error {
	m.removedPkgs = append(m.removedPkgs, pkgs...)
	return nil
}

func (m *mockPM) IsInstalled(ctx *core.SystemContext, pkg string) bool {
	return m.installed[pkg]
}

func (m *mockPM) UpdateIndex(ctx *core.SystemContext) error {
	m.indexUpdates++
	return m.updateErr
}

// mockSvc is a scriptable ServiceManager.
type mockSvc struct {
	running map[string]bool
	actions []string
}

func (m *mockSvc) Enable(ctx *core.SystemContext, s string) error {
	m.actions = append(m.actions, "enable "+s)
	return nil
}

func (m *mockSvc) Disable(ctx *core.SystemContext, s string) error {
	m.actions = append(m.actions, "disable "+s)
	return nil
}

func (m *mockSvc) Start(ctx *core.SystemContext, s string) error {
	m.actions = append(m.actions, "start "+s)
	return nil
}

func (m *mockSvc) Stop(ctx *core.SystemContext, s string) error {
	m.actions = append(m.actions, "stop "+s)
	return nil
}

func (m *mockSvc) IsRunning(ctx *core.SystemContext, s string) bool {
	return m.running[s]
}

func testContext() *core.SystemContext {
	ctx := core.NewSystemContext(false)
	ctx.Logger = core.NewDefaultLogger(io.Discard, core.LevelError)
	return ctx
}

func TestPkgInstall(t *testing.T) {
	pm := &mockPM{}
	svc := &mockSvc{}

	comp := catalog.Component{
		ID:       "openssh",
		Packages: []string{"openssh"},
		Services: []string{"sshd"},
	}

	require.NoError(t, NewPkg(comp, pm, svc).Install(testContext()))
	assert.Equal(t, []string{"openssh"}, pm.installedPkgs)
	assert.Equal(t, []string{"enable sshd", "start sshd"}, svc.actions)
}

func TestPkgInstallFailureWrapped(t *testing.T) {
	pm := &mockPM{installErr: errors.New("mirror unreachable")}
	comp := catalog.Component{ID: "zsh", Packages: []string{"zsh"}}

	err := NewPkg(comp, pm, &mockSvc{}).Install(testContext())
	var instErr *InstallError
	require.ErrorAs(t, err, &instErr)
	assert.Equal(t, "zsh", instErr.ID)
}

func TestPkgUninstall(t *testing.T) {
	pm := &mockPM{}
	svc := &mockSvc{}

	comp := catalog.Component{
		ID:       "openssh",
		Packages: []string{"openssh"},
		Services: []string{"sshd"},
	}

	require.NoError(t, NewPkg(comp, pm, svc).Uninstall(testContext()))
	assert.Equal(t, []string{"stop sshd", "disable sshd"}, svc.actions)
	assert.Equal(t, []string{"openssh"}, pm.removedPkgs)
}

func TestPkgInstalledProbe(t *testing.T) {
	tests := []struct {
		name      string
		packages  []string
		installed map[string]bool
		want      bool
	}{
		{
			name:      "all packages present",
			packages:  []string{"zsh", "zsh-vcs"},
			installed: map[string]bool{"zsh": true, "zsh-vcs": true},
			want:      true,
		},
		{
			name:      "one package missing",
			packages:  []string{"zsh", "zsh-vcs"},
			installed: map[string]bool{"zsh": true},
			want:      false,
		},
		{
			name:     "no packages declared",
			packages: nil,
			want:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := &mockPM{installed: tt.installed}
			comp := catalog.Component{ID: "zsh", Packages: tt.packages}

			got, err := NewPkg(comp, pm, &mockSvc{}).Installed(testContext())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildRegistry(t *testing.T) {
	cat, err := catalog.New([]catalog.Component{
		{ID: EdgeRepoID},
		{ID: "zsh", Packages: []string{"zsh"}},
	})
	require.NoError(t, err)

	reg := Build(cat, &mockPM{}, &mockSvc{})

	edge, ok := reg.Get(EdgeRepoID)
	require.True(t, ok)
	assert.IsType(t, &EdgeRepo{}, edge)

	zsh, ok := reg.Get("zsh")
	require.True(t, ok)
	assert.IsType(t, &Pkg{}, zsh)

	_, ok = reg.Get("ghost")
	assert.False(t, ok)
}
