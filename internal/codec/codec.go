package codec

import (
	"fmt"

	"numcode/internal/domain"
)

// Codec dispatches Decode and Encode on the encoding selector.
type Codec struct{}

// New returns a Codec.
func New() Codec { return Codec{} }

// TableFor returns the code table of enc.
func TableFor(enc domain.Encoding) (*Table, error) {
	switch enc {
	case domain.Decimal:
		return DecimalTable, nil
	case domain.BCD:
		return BCDTable, nil
	case domain.Aiken:
		return AikenTable, nil
	case domain.Stibitz:
		return StibitzTable, nil
	}
	return nil, fmt.Errorf("%w %s", domain.ErrUnknownEncoding, enc)
}

// Decode parses text written in enc.
func (Codec) Decode(enc domain.Encoding, text string) (domain.Number, error) {
	switch enc {
	case domain.Decimal:
		return ParseDecimal(text)
	case domain.BCD:
		return ParseBCD(text)
	case domain.Aiken:
		return ParseAiken(text)
	case domain.Stibitz:
		return ParseStibitz(text)
	}
	return domain.Number{}, fmt.Errorf("%w %s", domain.ErrUnknownEncoding, enc)
}

// Encode renders n in enc. An unknown encoding renders as the empty string.
func (Codec) Encode(enc domain.Encoding, n domain.Number) string {
	t, err := TableFor(enc)
	if err != nil {
		return ""
	}
	return t.Format(n)
}

// Compile-time assertion that Codec implements domain.Codec.
var _ domain.Codec = Codec{}
