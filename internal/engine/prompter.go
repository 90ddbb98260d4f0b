package engine

import (
	"fmt"

	"github.com/pterm/pterm"
)

// ConfirmPrompter asks interactively whether to continue past a failed
// component.
type ConfirmPrompter struct{}

func (ConfirmPrompter) ContinueAfterFailure(id string, err error) bool {
	cont, promptErr := pterm.DefaultInteractiveConfirm.
		WithDefaultText(fmt.Sprintf("Component %q failed. Continue with the remaining queue?", id)).
		WithDefaultValue(false).
		Show()
	if promptErr != nil {
		// Unreadable terminal counts as abort, never as silent consent.
		return false
	}
	return cont
}
