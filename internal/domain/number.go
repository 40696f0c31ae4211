package domain

import "strings"

// Number is the canonical digit representation shared by every decoder and
// encoder. Digits are stored exactly as parsed, most-significant first, with no
// sign and no zero normalisation.
type Number struct {
	Integer  []Digit
	Fraction []Digit
}

// HasFraction reports whether n carries a fractional part.
func (n Number) HasFraction() bool { return len(n.Fraction) > 0 }

// Equal reports whether n and m hold the same digit sequences.
func (n Number) Equal(m Number) bool {
	return digitsEqual(n.Integer, m.Integer) && digitsEqual(n.Fraction, m.Fraction)
}

// String renders n compactly, e.g. "42.35", using "." as the separator.
func (n Number) String() string {
	var b strings.Builder
	b.Grow(len(n.Integer) + len(n.Fraction) + 1)
	for _, d := range n.Integer {
		b.WriteRune(d.Rune())
	}
	if n.HasFraction() {
		b.WriteByte('.')
		for _, d := range n.Fraction {
			b.WriteRune(d.Rune())
		}
	}
	return b.String()
}

func digitsEqual(a, b []Digit) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
