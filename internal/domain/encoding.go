package domain

import "fmt"

// Encoding names one of the supported digit-level numeral encodings.
type Encoding uint8

const (
	Decimal Encoding = iota
	BCD
	Aiken
	Stibitz
)

// Encodings lists every encoding in output order.
var Encodings = [...]Encoding{Decimal, BCD, Aiken, Stibitz}

// String returns the record name of e ("decimal", "bcd", "aiken", "stibitz").
func (e Encoding) String() string {
	switch e {
	case Decimal:
		return "decimal"
	case BCD:
		return "bcd"
	case Aiken:
		return "aiken"
	case Stibitz:
		return "stibitz"
	}
	return fmt.Sprintf("Encoding(%d)", uint8(e))
}

// ParseEncoding maps a case-sensitive record name onto an Encoding.
func ParseEncoding(name string) (Encoding, error) {
	for _, e := range Encodings {
		if e.String() == name {
			return e, nil
		}
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownEncoding, name)
}
