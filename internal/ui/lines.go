package ui

import (
	"strings"

	"honeycomb/internal/core"
)

// Lines builds the text panel for sim: its name, the status line when it
// has one, then the parameter snapshot.
func Lines(sim core.Sim) []string {
	if sim == nil {
		return nil
	}
	out := []string{strings.ToUpper(sim.Name())}
	if sp, ok := sim.(core.StatusProvider); ok {
		out = append(out, sp.Status())
	}
	if pp, ok := sim.(core.ParameterProvider); ok {
		out = append(out, pp.Parameters().Lines()...)
	}
	return out
}
