package menu

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"

	"github.com/alpforge/alpforge/internal/catalog"
)

const (
	choiceAll    = "Install everything"
	choicePick   = "Select components"
	choiceCancel = "Cancel"
)

// RunInteractive drives a Model through pterm prompts and returns the
// confirmed selection. ErrCancelled means the user backed out.
func RunInteractive(cat *catalog.Catalog) ([]string, error) {
	model := NewModel(cat)

	mode, err := pterm.DefaultInteractiveSelect.
		WithOptions([]string{choiceAll, choicePick, choiceCancel}).
		Show("How do you want to proceed?")
	if err != nil {
		return nil, fmt.Errorf("selection prompt: %w", err)
	}

	switch mode {
	case choiceCancel:
		return nil, ErrCancelled
	case choiceAll:
		model.SelectAll()
		return model.Confirm()
	}

	labels := make([]string, 0, cat.Len())
	byLabel := make(map[string]string, cat.Len())
	for _, comp := range cat.All() {
		label := fmt.Sprintf("%s — %s (%s)", comp.ID, comp.Name, comp.Category)
		labels = append(labels, label)
		byLabel[label] = comp.ID
	}

	for {
		picked, err := pterm.DefaultInteractiveMultiselect.
			WithOptions(labels).
			WithDefaultText("Select components (space to toggle, enter to confirm)").
			WithFilter(true).
			Show()
		if err != nil {
			return nil, fmt.Errorf("selection prompt: %w", err)
		}

		model.ClearAll()
		for _, label := range picked {
			model.Select(byLabel[label])
		}

		selection, err := model.Confirm()
		if err == nil {
			pterm.Info.Println("Selected: " + strings.Join(selection, ", "))
			return selection, nil
		}

		retry, promptErr := pterm.DefaultInteractiveConfirm.
			WithDefaultText("Nothing selected. Pick again?").
			WithDefaultValue(true).
			Show()
		if promptErr != nil || !retry {
			return nil, ErrCancelled
		}
	}
}
