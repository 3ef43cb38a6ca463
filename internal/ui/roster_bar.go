// internal/ui/roster_bar.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"go-colony-defense/internal/colony"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// RosterBar is the row of ant buttons. At most one ant type is selected.
type RosterBar struct {
	buttons  []*Button
	names    []string
	costs    []int
	Selected string
}

// NewRosterBar lays out one button per roster entry starting at (x, y).
func NewRosterBar(r *colony.Roster, x, y, w, h, gap int, face font.Face, bg, hot, textColor color.Color) *RosterBar {
	bar := &RosterBar{}
	for i, e := range r.Entries() {
		left := x + i*(w+gap)
		b := NewButton(image.Rect(left, y, left+w, y+h), e.Name, face, bg, hot, textColor)
		b.Subtext = fmt.Sprintf("%d food", e.Cost)
		bar.buttons = append(bar.buttons, b)
		bar.names = append(bar.names, e.Name)
		bar.costs = append(bar.costs, e.Cost)
	}
	return bar
}

// HandleClick selects the ant under the cursor; clicking the selected one
// clears the selection. It reports whether the click hit the bar.
func (r *RosterBar) HandleClick(x, y int) bool {
	for i, b := range r.buttons {
		if !b.Contains(x, y) {
			continue
		}
		if r.Selected == r.names[i] {
			r.Selected = ""
		} else {
			r.Selected = r.names[i]
		}
		return true
	}
	return false
}

// Draw renders the bar. Unaffordable ants are dimmed.
func (r *RosterBar) Draw(screen *ebiten.Image, food int) {
	for i, b := range r.buttons {
		saved := b.TextColor
		if r.costs[i] > food {
			b.TextColor = color.Gray{Y: 120}
		}
		b.Draw(screen, r.names[i] == r.Selected)
		b.TextColor = saved
	}
}
