// pkg/render/board_renderer.go
package render

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"go-colony-defense/internal/colony"
	"go-colony-defense/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// NewFontFace loads the Go Regular font at size points.
func NewFontFace(size float64) (font.Face, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// BoardRenderer draws places, ants and bees of one colony.
type BoardRenderer struct {
	colony   *colony.Colony
	rects    map[*colony.Place]image.Rectangle
	colors   *BoardColors
	fontFace font.Face
	mapImage *ebiten.Image // static background: place tiles and names
}

func NewBoardRenderer(c *colony.Colony, geo grid.Geometry, screenWidth, screenHeight int, face font.Face, colors *BoardColors) *BoardRenderer {
	r := &BoardRenderer{
		colony:   c,
		rects:    geo.Layout(c),
		colors:   colors,
		fontFace: face,
		mapImage: ebiten.NewImage(screenWidth, screenHeight),
	}
	r.RenderMapImage()
	return r
}

// Rects exposes the on-screen rectangle of every drawn place.
func (r *BoardRenderer) Rects() map[*colony.Place]image.Rectangle { return r.rects }

// RenderMapImage redraws the static background.
func (r *BoardRenderer) RenderMapImage() {
	r.mapImage.Clear()
	r.mapImage.Fill(r.colors.BackgroundColor)
	for p, rect := range r.rects {
		fill := r.colors.TunnelColor
		label := p.Name()
		switch {
		case p.IsGoal():
			fill = r.colors.GoalColor
		case p.IsHive():
			fill = r.colors.HiveColor
		case p.IsWater():
			fill = r.colors.WaterColor
		}
		x, y := float32(rect.Min.X), float32(rect.Min.Y)
		w, h := float32(rect.Dx()), float32(rect.Dy())
		vector.DrawFilledRect(r.mapImage, x, y, w, h, fill, false)
		vector.StrokeRect(r.mapImage, x, y, w, h, r.colors.StrokeWidth, DarkenColor(fill), false)
		text.Draw(r.mapImage, label, r.fontFace, rect.Min.X+4, rect.Min.Y+14, r.colors.TextDarkColor)
	}
}

// Draw renders the board. selected, if not nil, is outlined.
func (r *BoardRenderer) Draw(screen *ebiten.Image, selected *colony.Place) {
	screen.DrawImage(r.mapImage, nil)
	for p, rect := range r.rects {
		if p.IsGoal() {
			continue
		}
		if p.IsHive() {
			r.drawLine(screen, rect, 1, fmt.Sprintf("%d waiting", len(p.Bees())), r.colors.TextDarkColor)
			continue
		}
		if a := p.Ant(); a != nil {
			r.drawAnt(screen, rect, a)
		}
		r.drawBees(screen, rect, p.Bees())
	}
	if rect, ok := r.rects[selected]; ok && selected != nil {
		vector.StrokeRect(screen, float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Dx()), float32(rect.Dy()),
			r.colors.StrokeWidth*2, r.colors.SelectedColor, false)
	}
}

func (r *BoardRenderer) drawAnt(screen *ebiten.Image, rect image.Rectangle, a colony.Ant) {
	label := fmt.Sprintf("%s %s", a.Name(), armor(a.Armor()))
	if inner := a.Contained(); inner != nil {
		label += " [" + inner.Name() + "]"
	}
	vector.DrawFilledRect(screen, float32(rect.Min.X+2), float32(rect.Min.Y+18), float32(rect.Dx()-4), 16, r.colors.AntColor, false)
	r.drawLine(screen, rect, 1, label, r.colors.TextDarkColor)
}

func (r *BoardRenderer) drawBees(screen *ebiten.Image, rect image.Rectangle, bees []*colony.Bee) {
	if len(bees) == 0 {
		return
	}
	counts := map[string]int{}
	var order []string
	for _, b := range bees {
		if counts[b.Name()] == 0 {
			order = append(order, b.Name())
		}
		counts[b.Name()]++
	}
	var parts []string
	for _, name := range order {
		parts = append(parts, fmt.Sprintf("%dx%s", counts[name], name))
	}
	cx := float32(rect.Max.X - 12)
	cy := float32(rect.Max.Y - 12)
	vector.DrawFilledCircle(screen, cx, cy, 8, r.colors.BeeColor, true)
	r.drawLine(screen, rect, 3, strings.Join(parts, " "), r.colors.TextLightColor)
}

// drawLine writes s on the n-th text line of rect.
func (r *BoardRenderer) drawLine(screen *ebiten.Image, rect image.Rectangle, n int, s string, clr color.Color) {
	text.Draw(screen, s, r.fontFace, rect.Min.X+4, rect.Min.Y+14+n*16, clr)
}

func armor(a float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", a), "0"), ".")
}
