package domain

// Digit is a single base-10 symbol. The zero value is Zero.
type Digit uint8

const (
	Zero Digit = iota
	One
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
)

// ParseDigit converts an ASCII character '0'..'9' into a Digit.
// Any other character fails with a *DigitError at position 0; callers that scan
// a larger string should use ParseDigitAt.
func ParseDigit(c rune) (Digit, error) {
	return ParseDigitAt(c, 0)
}

// ParseDigitAt is ParseDigit, recording pos in the error for diagnostics.
func ParseDigitAt(c rune, pos int) (Digit, error) {
	if c < '0' || c > '9' {
		return 0, &DigitError{Char: c, Pos: pos}
	}
	return Digit(c - '0'), nil
}

// Value returns the numeric value of d in [0,9].
func (d Digit) Value() int { return int(d) }

// Rune returns the ASCII character for d.
func (d Digit) Rune() rune { return '0' + rune(d) }

// String returns the ASCII character for d as a string.
func (d Digit) String() string { return string(d.Rune()) }
