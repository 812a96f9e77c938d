package problemgen

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// canonicalDecimalPlaces is the rounding applied to every floating-point
// result before it is turned into a string.
const canonicalDecimalPlaces = 10

var printer = message.NewPrinter(language.BritishEnglish)

// groupInt renders n with thousands separators for display text.
func groupInt(n int64) string {
	return printer.Sprintf("%d", n)
}

// roundTo rounds f to the given number of decimal places.
func roundTo(f float64, places int) float64 {
	p := math.Pow10(places)
	return math.Round(f*p) / p
}

// canonicalFloat renders f with binary floating-point noise removed, so
// 0.1+0.2 becomes "0.3" and 4.2*100 becomes "420".
func canonicalFloat(f float64) string {
	return strconv.FormatFloat(roundTo(f, canonicalDecimalPlaces), 'f', -1, 64)
}

// decimalAnswer renders f rounded to places, without trailing zeros.
func decimalAnswer(f float64, places int) string {
	return strconv.FormatFloat(roundTo(roundTo(f, canonicalDecimalPlaces), places), 'f', -1, 64)
}

// fixed renders f with exactly places decimal places.
func fixed(f float64, places int) string {
	return strconv.FormatFloat(f, 'f', places, 64)
}

// decimalPlaces counts the digits after the decimal point in s.
func decimalPlaces(s string) int {
	_, frac, ok := strings.Cut(s, ".")
	if !ok {
		return 0
	}
	return len(frac)
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
