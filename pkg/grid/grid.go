// pkg/grid/grid.go
package grid

import (
	"image"

	"go-colony-defense/internal/colony"
)

// Geometry places the board on screen: one row per tunnel, the goal on the
// left, the hive on the right.
type Geometry struct {
	OffsetX, OffsetY int
	CellW, CellH     int
	Gap              int
}

// Layout assigns a rectangle to every place reachable from an entrance.
// The goal spans all rows left of the board, the hive all rows right of it.
// Places shared by two tunnels keep the first rectangle they got.
func (g Geometry) Layout(c *colony.Colony) map[*colony.Place]image.Rectangle {
	rects := make(map[*colony.Place]image.Rectangle)
	entrances := c.Entrances()
	maxLen := 0
	for row, entrance := range entrances {
		var path []*colony.Place
		for p := entrance; p != nil && !p.IsGoal(); p = p.Exit() {
			path = append(path, p)
		}
		if len(path) > maxLen {
			maxLen = len(path)
		}
		for i, p := range path {
			if _, ok := rects[p]; ok {
				continue
			}
			col := len(path) - 1 - i
			rects[p] = g.cell(col, row)
		}
	}
	rows := len(entrances)
	if rows == 0 {
		return rects
	}
	top := g.cell(0, 0).Min.Y
	bottom := g.cell(0, rows-1).Max.Y
	left := g.cell(-1, 0)
	right := g.cell(maxLen, 0)
	rects[c.Goal()] = image.Rect(left.Min.X, top, left.Max.X, bottom)
	rects[c.Hive().Place()] = image.Rect(right.Min.X, top, right.Max.X, bottom)
	return rects
}

func (g Geometry) cell(col, row int) image.Rectangle {
	x := g.OffsetX + col*(g.CellW+g.Gap)
	y := g.OffsetY + row*(g.CellH+g.Gap)
	return image.Rect(x, y, x+g.CellW, y+g.CellH)
}

// PlaceAt returns the place drawn under the point, if any.
func PlaceAt(rects map[*colony.Place]image.Rectangle, pt image.Point) (*colony.Place, bool) {
	for p, r := range rects {
		if pt.In(r) {
			return p, true
		}
	}
	return nil, false
}
