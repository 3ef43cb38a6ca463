// internal/layout/layout.go
package layout

import (
	"fmt"

	"go-colony-defense/internal/colony"
)

// Wet builds tunnels straight tunnels of length places each, running from the
// goal outwards. Every moatFrequency-th step is water; zero disables water.
// The last place of each tunnel is a bee entrance.
func Wet(tunnels, length, moatFrequency int) colony.LayoutFunc {
	return func(goal *colony.Place, register func(*colony.Place, bool)) {
		for tunnel := 0; tunnel < tunnels; tunnel++ {
			exit := goal
			for step := 0; step < length; step++ {
				if moatFrequency != 0 && (step+1)%moatFrequency == 0 {
					exit = colony.NewWater(fmt.Sprintf("water_%d_%d", tunnel, step), exit)
				} else {
					exit = colony.NewPlace(fmt.Sprintf("tunnel_%d_%d", tunnel, step), exit)
				}
				register(exit, step == length-1)
			}
		}
	}
}

// Dry builds tunnels without water.
func Dry(tunnels, length int) colony.LayoutFunc {
	return Wet(tunnels, length, 0)
}
