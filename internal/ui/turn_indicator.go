// internal/ui/turn_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TurnIndicator shows the turn in roman numerals next to the food stock.
type TurnIndicator struct {
	X, Y         int
	Color        color.Color
	OutlineColor color.Color
	Font         font.Face
}

func NewTurnIndicator(x, y int, face font.Face, clr color.Color) *TurnIndicator {
	return &TurnIndicator{
		X:            x,
		Y:            y,
		Color:        clr,
		OutlineColor: color.Black,
		Font:         face,
	}
}

// toRoman converts a positive integer to roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw renders "Turn <n>  Food <f>". Turn zero is shown as a dash.
func (t *TurnIndicator) Draw(screen *ebiten.Image, turn, food int) {
	numeral := toRoman(turn)
	if numeral == "" {
		numeral = "-"
	}
	s := fmt.Sprintf("Turn %s   Food %d", numeral, food)
	for _, d := range [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		text.Draw(screen, s, t.Font, t.X+d[0], t.Y+d[1], t.OutlineColor)
	}
	text.Draw(screen, s, t.Font, t.X, t.Y, t.Color)
}
