package codec

import "numcode/internal/domain"

// ParseDecimal parses a decimal digit string such as "42.35" or "42,35".
// Only the first separator is recognised; a second one fails as an invalid
// digit. Empty input yields an empty Number.
func ParseDecimal(text string) (domain.Number, error) {
	var (
		n          domain.Number
		fractional bool
		pos        int
	)
	for _, c := range text {
		if !fractional && (c == '.' || c == ',') {
			fractional = true
			pos++
			continue
		}
		d, err := domain.ParseDigitAt(c, pos)
		if err != nil {
			return domain.Number{}, err
		}
		if fractional {
			n.Fraction = append(n.Fraction, d)
		} else {
			n.Integer = append(n.Integer, d)
		}
		pos++
	}
	return n, nil
}

// FormatDecimal renders n as space-separated digits, e.g. "4 2 . 3 5".
func FormatDecimal(n domain.Number) string { return DecimalTable.Format(n) }

// ParseBCD parses 8421 codewords.
func ParseBCD(text string) (domain.Number, error) { return BCDTable.Parse(text) }

// FormatBCD renders n as 8421 codewords.
func FormatBCD(n domain.Number) string { return BCDTable.Format(n) }

// ParseAiken parses 2421 codewords.
func ParseAiken(text string) (domain.Number, error) { return AikenTable.Parse(text) }

// FormatAiken renders n as 2421 codewords.
func FormatAiken(n domain.Number) string { return AikenTable.Format(n) }

// ParseStibitz parses Excess-3 codewords.
func ParseStibitz(text string) (domain.Number, error) { return StibitzTable.Parse(text) }

// FormatStibitz renders n as Excess-3 codewords.
func FormatStibitz(n domain.Number) string { return StibitzTable.Format(n) }
