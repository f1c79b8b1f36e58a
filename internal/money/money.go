package money

import (
	"math"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Round округляет денежную сумму до центов.
func Round(value float64) float64 {
	return RoundTo(value, 2)
}

// RoundTo округляет значение до places знаков после запятой (half away from zero).
func RoundTo(value float64, places int32) float64 {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return value
	}
	return decimal.NewFromFloat(value).Round(places).InexactFloat64()
}

// Percent переводит долю в проценты с округлением до places знаков.
func Percent(fraction float64, places int32) float64 {
	return RoundTo(fraction*100, places)
}

// Format форматирует сумму в долларах с разделителями разрядов, например $1,250,000.
func Format(value float64) string {
	p := message.NewPrinter(language.English)
	if value < 0 {
		return p.Sprintf("-$%.0f", math.Abs(value))
	}
	return p.Sprintf("$%.0f", value)
}

// FormatCents форматирует сумму с центами, например $1,520.06.
func FormatCents(value float64) string {
	p := message.NewPrinter(language.English)
	if value < 0 {
		return p.Sprintf("-$%.2f", math.Abs(value))
	}
	return p.Sprintf("$%.2f", value)
}
