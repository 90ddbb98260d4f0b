package core

import (
	"context"
	"io"
	"os"
)

// SystemContext carries the runtime context of one alpforge invocation.
// It wraps the standard Go context and adds host facts filled in by the
// system detector.
type SystemContext struct {
	context.Context

	// Host facts
	OS         string // runtime.GOOS
	Distro     string // os-release ID (alpine)
	Version    string // os-release VERSION_ID
	PrettyName string // os-release PRETTY_NAME
	Arch       string // runtime.GOARCH
	Hostname   string

	// DryRun: when true nothing is changed, actions are only simulated.
	DryRun bool

	Logger Logger

	Stdout io.Writer
	Stderr io.Writer
}

// NewSystemContext creates a bare context. The detector fills the host
// facts afterwards.
func NewSystemContext(dryRun bool) *SystemContext {
	hostname, _ := os.Hostname()
	return &SystemContext{
		Context:  context.Background(),
		OS:       "unknown",
		Distro:   "unknown",
		Hostname: hostname,
		DryRun:   dryRun,
		Logger:   NewDefaultLogger(os.Stderr, LevelInfo),
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
}

// Fingerprint is the environment stamp written into installed records.
func (c *SystemContext) Fingerprint() string {
	if c.PrettyName != "" {
		return c.PrettyName
	}
	if c.Version != "" {
		return c.Distro + " " + c.Version
	}
	return c.Distro
}
