package ui

import (
	"image/color"

	"cryptoview/internal/chart"
)

// Theme collects every color and spacing the widget draws with. It is
// passed explicitly into the game rather than read from globals.
type Theme struct {
	Background color.RGBA
	ChartFill  color.RGBA
	Text       color.RGBA
	MutedText  color.RGBA
	Gain       color.RGBA
	Loss       color.RGBA
	Active     color.RGBA
	Marker     color.RGBA

	ChartInsets chart.Insets
	LineWidth   float32

	accents map[string]color.RGBA
}

// AccentFor returns the chart line color for a coin symbol.
func (t Theme) AccentFor(symbol string) color.RGBA {
	if c, ok := t.accents[symbol]; ok {
		return c
	}
	return t.Text
}

func DefaultTheme() Theme {
	return Theme{
		Background: color.RGBA{25, 25, 25, 255},
		ChartFill:  color.RGBA{35, 35, 35, 255},
		Text:       color.RGBA{235, 235, 235, 255},
		MutedText:  color.RGBA{150, 150, 150, 255},
		Gain:       color.RGBA{0, 200, 90, 255},
		Loss:       color.RGBA{230, 60, 60, 255},
		Active:     color.RGBA{0, 200, 255, 255},
		Marker:     color.RGBA{255, 255, 0, 255},

		ChartInsets: chart.Insets{Top: 20, Bottom: 20, Left: 20, Right: 20},
		LineWidth:   2.0,

		accents: map[string]color.RGBA{
			"BTC": {247, 147, 26, 255},
			"ETH": {98, 126, 234, 255},
			"LTC": {52, 93, 157, 255},
			"BCH": {139, 195, 74, 255},
		},
	}
}
