package ui

import (
	"fmt"

	"torus-life/pkg/core"
)

// Status formats the one-line summary shown by the viewers.
func Status(sim core.Sim, paused bool, tps int) string {
	state := "running"
	if paused {
		state = "paused"
	}
	return fmt.Sprintf("%s %dx%d  gen %d  pop %d  %d tps  [%s]",
		sim.Name(), sim.Size(), sim.Size(), sim.Generation(), sim.Population(), tps, state)
}
