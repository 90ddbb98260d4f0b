package system

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/alpforge/alpforge/internal/consts"
	"github.com/alpforge/alpforge/internal/core"
)

// PrerequisiteError aborts a run before any queue is built.
type PrerequisiteError struct {
	Check string
	Err   error
}

func (e *PrerequisiteError) Error() string {
	return fmt.Sprintf("prerequisite %s: %v", e.Check, e.Err)
}

func (e *PrerequisiteError) Unwrap() error { return e.Err }

// Prereq is a single precondition of a run.
type Prereq interface {
	Name() string
	Verify(ctx *core.SystemContext) error
}

// DefaultPrereqs are the checks an installation run performs during
// the Initializing phase.
func DefaultPrereqs() []Prereq {
	return []Prereq{
		RootCheck{},
		ToolCheck{Tool: "apk"},
		ConnectivityCheck{URL: consts.ConnectivityURL},
	}
}

// RootCheck requires euid 0; apk and rc-service refuse otherwise.
type RootCheck struct {
	// Euid overrides os.Geteuid in tests.
	Euid func() int
}

func (RootCheck) Name() string { return "root" }

func (c RootCheck) Verify(ctx *core.SystemContext) error {
	euid := os.Geteuid
	if c.Euid != nil {
		euid = c.Euid
	}
	if euid() != 0 {
		return &PrerequisiteError{Check: "root", Err: fmt.Errorf("must run as root")}
	}
	return nil
}

// ToolCheck requires an external command on PATH.
type ToolCheck struct {
	Tool string
	// Available overrides the PATH lookup in tests.
	Available func(string) bool
}

func (c ToolCheck) Name() string { return "tool:" + c.Tool }

func (c ToolCheck) Verify(ctx *core.SystemContext) error {
	available := core.IsCommandAvailable
	if c.Available != nil {
		available = c.Available
	}
	if !available(c.Tool) {
		return &PrerequisiteError{Check: c.Name(), Err: fmt.Errorf("%s not found on PATH", c.Tool)}
	}
	return nil
}

// ConnectivityCheck requires the package mirror to be reachable.
type ConnectivityCheck struct {
	URL    string
	Client *http.Client
}

func (ConnectivityCheck) Name() string { return "connectivity" }

func (c ConnectivityCheck) Verify(ctx *core.SystemContext) error {
	client := c.Client
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, c.URL, nil)
	if err != nil {
		return &PrerequisiteError{Check: "connectivity", Err: err}
	}

	resp, err := client.Do(req)
	if err != nil {
		return &PrerequisiteError{Check: "connectivity", Err: err}
	}
	resp.Body.Close()

	if resp.StatusCode >= 500 {
		return &PrerequisiteError{Check: "connectivity", Err: fmt.Errorf("mirror returned %s", resp.Status)}
	}
	return nil
}
