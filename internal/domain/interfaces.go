package domain

import "io"

// Codec moves between an encoding's text form and the canonical Number.
type Codec interface {
	Decode(enc Encoding, text string) (Number, error)
	Encode(enc Encoding, n Number) string
}

// ConvertService decodes a value and renders it in all four encodings.
type ConvertService interface {
	Convert(enc Encoding, value string) (Conversion, error)
	Render(n Number) Conversion
}

// BatchService processes a stream of records, writing one line per record.
type BatchService interface {
	Run(r io.Reader, w io.Writer) error
}
