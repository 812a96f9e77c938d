// Package fraction implements the exact rational arithmetic shared by the
// fraction question generators and the answer matcher.
package fraction

import (
	"fmt"
	"math/big"
	"regexp"
	"strconv"
	"strings"
)

// Fraction is n/d. D must be positive; the value is not necessarily in
// lowest terms until passed through Simplify.
type Fraction struct {
	N int64 `json:"n"`
	D int64 `json:"d"`
}

// Mixed is the mixed number W N/D with 0 <= N < D.
type Mixed struct {
	W int64 `json:"w"`
	N int64 `json:"n"`
	D int64 `json:"d"`
}

// New returns n/d. It does not simplify.
func New(n, d int64) Fraction {
	return Fraction{N: n, D: d}
}

// GCD returns the greatest common divisor of a and b. GCD(a, 0) is a.
// Both arguments must be non-negative.
func GCD(a, b int64) int64 {
	if b == 0 {
		return a
	}
	return GCD(b, a%b)
}

// LCM returns the least common multiple of a and b.
func LCM(a, b int64) int64 {
	return a * b / GCD(a, b)
}

// Simplify reduces f to lowest terms. The caller ensures f.D > 0.
func Simplify(f Fraction) Fraction {
	g := GCD(abs(f.N), f.D)
	if g == 0 {
		return f
	}
	return Fraction{N: f.N / g, D: f.D / g}
}

// ToImproper converts a mixed number to an improper fraction.
func ToImproper(m Mixed) Fraction {
	return Fraction{N: m.W*m.D + m.N, D: m.D}
}

// ToMixed converts a non-negative fraction to a mixed number.
func ToMixed(f Fraction) Mixed {
	return Mixed{W: f.N / f.D, N: f.N % f.D, D: f.D}
}

// Add returns a + b over the least common denominator.
func Add(a, b Fraction) Fraction {
	d := LCM(a.D, b.D)
	return Fraction{N: a.N*(d/a.D) + b.N*(d/b.D), D: d}
}

// Sub returns a - b over the least common denominator.
func Sub(a, b Fraction) Fraction {
	d := LCM(a.D, b.D)
	return Fraction{N: a.N*(d/a.D) - b.N*(d/b.D), D: d}
}

// Mul returns a * b, unsimplified.
func Mul(a, b Fraction) Fraction {
	return Fraction{N: a.N * b.N, D: a.D * b.D}
}

// Div returns a ÷ b. b.N must be non-zero.
func Div(a, b Fraction) Fraction {
	n, d := a.N*b.D, a.D*b.N
	if d < 0 {
		n, d = -n, -d
	}
	return Fraction{N: n, D: d}
}

// Equal reports whether a and b denote the same rational number.
func Equal(a, b Fraction) bool {
	return cmp(a, b) == 0
}

// Less reports whether a < b.
func Less(a, b Fraction) bool {
	return cmp(a, b) < 0
}

// cmp cross-multiplies in big.Int so large pupil input cannot wrap.
func cmp(a, b Fraction) int {
	x := new(big.Int).Mul(big.NewInt(a.N), big.NewInt(b.D))
	y := new(big.Int).Mul(big.NewInt(b.N), big.NewInt(a.D))
	return x.Cmp(y)
}

// IsZero reports whether f is zero.
func (f Fraction) IsZero() bool {
	return f.N == 0
}

// Float returns f as a float64.
func (f Fraction) Float() float64 {
	return float64(f.N) / float64(f.D)
}

// String renders f as a simple fraction, "n/d".
func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.N, f.D)
}

// String renders m as "W N/D", dropping the whole part when zero and the
// fractional part when N is zero.
func (m Mixed) String() string {
	switch {
	case m.N == 0:
		return strconv.FormatInt(m.W, 10)
	case m.W == 0:
		return fmt.Sprintf("%d/%d", m.N, m.D)
	default:
		return fmt.Sprintf("%d %d/%d", m.W, m.N, m.D)
	}
}

// Canonical simplifies f and renders it the way answers are written:
// a whole number, a proper fraction, or a mixed number.
func Canonical(f Fraction) string {
	s := Simplify(f)
	if s.N < 0 {
		return "-" + ToMixed(Fraction{N: -s.N, D: s.D}).String()
	}
	return ToMixed(s).String()
}

var (
	mixedRe  = regexp.MustCompile(`^(-?\d+)\s+(\d+)\s*/\s*(\d+)$`)
	simpleRe = regexp.MustCompile(`^(-?\d+)\s*/\s*(\d+)$`)
	wholeRe  = regexp.MustCompile(`^-?\d+$`)
)

// Parse reads "W N/D", "N/D" or a bare integer. It reports false for
// anything else, including a zero denominator.
func Parse(s string) (Fraction, bool) {
	s = strings.Join(strings.Fields(s), " ")

	if m := mixedRe.FindStringSubmatch(s); m != nil {
		w, werr := strconv.ParseInt(m[1], 10, 64)
		n, nerr := strconv.ParseInt(m[2], 10, 64)
		d, derr := strconv.ParseInt(m[3], 10, 64)
		if werr != nil || nerr != nil || derr != nil || d == 0 {
			return Fraction{}, false
		}
		neg := strings.HasPrefix(m[1], "-")
		if neg {
			w = -w
		}
		if w < 0 {
			return Fraction{}, false
		}
		// w*d + n must fit in an int64.
		num := new(big.Int).Mul(big.NewInt(w), big.NewInt(d))
		num.Add(num, big.NewInt(n))
		if !num.IsInt64() {
			return Fraction{}, false
		}
		if neg {
			return Fraction{N: -num.Int64(), D: d}, true
		}
		return Fraction{N: num.Int64(), D: d}, true
	}
	if m := simpleRe.FindStringSubmatch(s); m != nil {
		n, nerr := strconv.ParseInt(m[1], 10, 64)
		d, derr := strconv.ParseInt(m[2], 10, 64)
		if nerr != nil || derr != nil || d == 0 {
			return Fraction{}, false
		}
		return Fraction{N: n, D: d}, true
	}
	if wholeRe.MatchString(s) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Fraction{}, false
		}
		return Fraction{N: n, D: 1}, true
	}
	return Fraction{}, false
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
