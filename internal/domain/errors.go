package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord is returned for a record with fewer than two tokens.
	ErrMalformedRecord = errors.New("malformed record")
	// ErrUnknownEncoding is returned when the encoding name is not recognised.
	ErrUnknownEncoding = errors.New("unknown encoding")
	// ErrInvalidDigit is wrapped by *DigitError.
	ErrInvalidDigit = errors.New("invalid digit")
	// ErrInvalidCodeword is wrapped by *CodewordError.
	ErrInvalidCodeword = errors.New("invalid codeword")
	// ErrUsage is returned when command-line arguments are supplied.
	ErrUsage = errors.New("usage error")
)

// DigitError reports a character that is not a decimal digit.
type DigitError struct {
	Char rune
	Pos  int // 0-based rune offset in the scanned value
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("%v %q at position %d", ErrInvalidDigit, e.Char, e.Pos)
}

func (e *DigitError) Unwrap() error { return ErrInvalidDigit }

// CodewordError reports a token missing from a binary code table.
type CodewordError struct {
	Encoding Encoding
	Token    string
	Pos      int // 0-based byte offset of the token in the scanned value
}

func (e *CodewordError) Error() string {
	return fmt.Sprintf("%v %q for %s at position %d", ErrInvalidCodeword, e.Token, e.Encoding, e.Pos)
}

func (e *CodewordError) Unwrap() error { return ErrInvalidCodeword }
