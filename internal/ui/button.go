// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button is a clickable rectangle with a label.
type Button struct {
	Rect       image.Rectangle
	Text       string
	Subtext    string
	TextColor  color.Color
	BgColor    color.Color
	HoverColor color.Color
	Font       font.Face
}

func NewButton(rect image.Rectangle, label string, face font.Face, bg, hover, textColor color.Color) *Button {
	return &Button{
		Rect:       rect,
		Text:       label,
		TextColor:  textColor,
		BgColor:    bg,
		HoverColor: hover,
		Font:       face,
	}
}

// Contains reports whether the point lies on the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Draw renders the button, highlighted when hot.
func (b *Button) Draw(screen *ebiten.Image, hot bool) {
	bg := b.BgColor
	if hot {
		bg = b.HoverColor
	}
	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 2, color.Gray{Y: 90}, false)

	bounds := text.BoundString(b.Font, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + b.Rect.Dy()/2
	if b.Subtext == "" {
		ty += bounds.Dy() / 2
	}
	text.Draw(screen, b.Text, b.Font, tx, ty, b.TextColor)
	if b.Subtext != "" {
		sb := text.BoundString(b.Font, b.Subtext)
		sx := b.Rect.Min.X + (b.Rect.Dx()-sb.Dx())/2
		text.Draw(screen, b.Subtext, b.Font, sx, ty+sb.Dy()+2, b.TextColor)
	}
}
