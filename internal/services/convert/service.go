package convert

import (
	"numcode/internal/domain"
)

// Service converts values through the canonical Number using a Codec.
type Service struct {
	codec domain.Codec
}

// New returns a convert service backed by the given codec.
func New(c domain.Codec) *Service { return &Service{codec: c} }

// Convert parses value under enc and renders the result in every encoding.
func (s *Service) Convert(enc domain.Encoding, value string) (domain.Conversion, error) {
	n, err := s.codec.Decode(enc, value)
	if err != nil {
		return domain.Conversion{}, err
	}
	return s.Render(n), nil
}

// Render formats n in every encoding.
func (s *Service) Render(n domain.Number) domain.Conversion {
	return domain.Conversion{
		Decimal: s.codec.Encode(domain.Decimal, n),
		BCD:     s.codec.Encode(domain.BCD, n),
		Aiken:   s.codec.Encode(domain.Aiken, n),
		Stibitz: s.codec.Encode(domain.Stibitz, n),
	}
}

// Compile-time assertion that Service implements domain.ConvertService.
var _ domain.ConvertService = (*Service)(nil)
