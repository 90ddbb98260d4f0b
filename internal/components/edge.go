package components

import (
	"fmt"
	"os"
	"strings"

	"github.com/alpforge/alpforge/internal/backend"
	"github.com/alpforge/alpforge/internal/core"
)

// EdgeRepoID is the catalog id bound to the EdgeRepo adapter.
const EdgeRepoID = "edge-repos"

const defaultMirror = "https://dl-cdn.alpinelinux.org/alpine"

// EdgeRepo switches the apk repository file to the edge branch and
// refreshes the package index. Uninstall restores latest-stable.
type EdgeRepo struct {
	RepoFile string
	Mirror   string
	pm       backend.PackageManager
}

func NewEdgeRepo(pm backend.PackageManager) *EdgeRepo {
	return &EdgeRepo{
		RepoFile: "/etc/apk/repositories",
		Mirror:   defaultMirror,
		pm:       pm,
	}
}

func (e *EdgeRepo) Install(ctx *core.SystemContext) error {
	lines := []string{
		e.Mirror + "/edge/main",
		e.Mirror + "/edge/community",
		e.Mirror + "/edge/testing",
	}
	if err := e.writeRepos(ctx, lines); err != nil {
		return &InstallError{ID: EdgeRepoID, Err: err}
	}
	if err := e.pm.UpdateIndex(ctx); err != nil {
		return &InstallError{ID: EdgeRepoID, Err: err}
	}
	return nil
}

func (e *EdgeRepo) Uninstall(ctx *core.SystemContext) error {
	lines := []string{
		e.Mirror + "/latest-stable/main",
		e.Mirror + "/latest-stable/community",
	}
	if err := e.writeRepos(ctx, lines); err != nil {
		return &InstallError{ID: EdgeRepoID, Err: err}
	}
	if err := e.pm.UpdateIndex(ctx); err != nil {
		return &InstallError{ID: EdgeRepoID, Err: err}
	}
	return nil
}

// Installed checks whether an uncommented edge/main entry is active in
// the repository file.
func (e *EdgeRepo) Installed(ctx *core.SystemContext) (bool, error) {
	data, err := os.ReadFile(e.RepoFile)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read %s: %w", e.RepoFile, err)
	}

	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "#") {
			continue
		}
		if strings.Contains(line, "/edge/main") {
			return true, nil
		}
	}
	return false, nil
}

func (e *EdgeRepo) writeRepos(ctx *core.SystemContext, lines []string) error {
	content := strings.Join(lines, "\n") + "\n"
	if ctx.DryRun {
		ctx.Logger.Info("[DryRun] would write " + e.RepoFile)
		return nil
	}
	if err := os.WriteFile(e.RepoFile, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", e.RepoFile, err)
	}
	return nil
}
