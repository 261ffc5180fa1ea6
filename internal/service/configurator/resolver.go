package service

import (
	"github.com/yakkt/campervan-configurator/internal/model"
)

// resolveToggle applies one toggle to the selection in place.
//
// A selected option is removed unconditionally. An unselected option first
// evicts everything on its own conflict list when it is exclusive (eviction is
// one-directional: only the incoming option's list is consulted), then joins
// the selection. An option that lists itself as a conflict therefore still
// ends up selected: the self-eviction runs before the add.
//
// Dependencies are deliberately not enforced here. Whether an option is
// offered at all is an availability concern surfaced via isOptionAvailable;
// the caller is expected to disable unavailable controls.
func resolveToggle(sel *model.Selection, opt *model.Option) {
	if sel.Has(opt.ID) {
		sel.Remove(opt.ID)
		return
	}

	if opt.IsExclusive {
		for _, conflictID := range opt.ConflictsWith {
			sel.Remove(conflictID)
		}
	}
	sel.Add(opt.ID)
}

// isOptionAvailable reports whether the option may currently be toggled on:
// true when it has no dependencies, otherwise when at least one dependency is
// selected. Pure; never mutates the selection.
func isOptionAvailable(opt *model.Option, sel model.Selection) bool {
	if len(opt.DependsOn) == 0 {
		return true
	}
	for _, depID := range opt.DependsOn {
		if sel.Has(depID) {
			return true
		}
	}
	return false
}
