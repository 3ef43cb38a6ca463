// pkg/render/color.go
package render

import "image/color"

// BoardColors holds every color the board renderer needs.
type BoardColors struct {
	BackgroundColor color.RGBA
	TunnelColor     color.RGBA
	WaterColor      color.RGBA
	GoalColor       color.RGBA
	HiveColor       color.RGBA
	SelectedColor   color.RGBA
	AntColor        color.RGBA
	BeeColor        color.RGBA
	TextDarkColor   color.RGBA
	TextLightColor  color.RGBA
	StrokeWidth     float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}
