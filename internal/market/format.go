package market

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// FormatSigned renders a value with thousands separators and two decimal
// places, a +/- prefix per sign (the + is omitted when hidePlus is set,
// and zero never gets one), and the unit symbol before or after the
// number per symbolAfter.
func FormatSigned(v float64, symbol string, hidePlus, symbolAfter bool) string {
	sign := ""
	switch {
	case v > 0 && !hidePlus:
		sign = "+"
	case v < 0:
		sign = "-"
	}

	magnitude := printer.Sprintf("%.2f", math.Abs(v))
	if symbolAfter {
		return sign + magnitude + symbol
	}
	return sign + symbol + magnitude
}
