// Package system probes the host: distro detection, prerequisite
// checks and remote catalog fetching.
package system

import (
	"bufio"
	"os"
	"runtime"
	"strings"

	"github.com/alpforge/alpforge/internal/core"
)

// osReleasePath is a variable so tests can point it at a fixture.
var osReleasePath = "/etc/os-release"

// Detect fills a SystemContext with host facts from /etc/os-release.
func Detect(dryRun bool) *core.SystemContext {
	ctx := core.NewSystemContext(dryRun)

	ctx.OS = runtime.GOOS
	ctx.Arch = runtime.GOARCH

	info := readOSRelease()
	if id, ok := info["ID"]; ok {
		ctx.Distro = id
	}
	ctx.Version = info["VERSION_ID"]
	ctx.PrettyName = info["PRETTY_NAME"]

	return ctx
}

func readOSRelease() map[string]string {
	info := make(map[string]string)
	f, err := os.Open(osReleasePath)
	if err != nil {
		return info
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if parts := strings.SplitN(line, "=", 2); len(parts) == 2 {
			info[parts[0]] = strings.Trim(parts[1], "\"")
		}
	}
	return info
}
