package batch

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"numcode/internal/domain"
)

// DefaultMaxLineBytes bounds a single input record.
const DefaultMaxLineBytes = 1 << 20

// Service reads records and writes conversions.
type Service struct {
	convert      domain.ConvertService
	maxLineBytes int
}

// New returns a batch service using cs. A non-positive maxLineBytes selects
// DefaultMaxLineBytes.
func New(cs domain.ConvertService, maxLineBytes int) *Service {
	if maxLineBytes <= 0 {
		maxLineBytes = DefaultMaxLineBytes
	}
	return &Service{convert: cs, maxLineBytes: maxLineBytes}
}

// ParseRecord splits line into its encoding and value tokens.
func ParseRecord(line string) (domain.Record, error) {
	fields := strings.FieldsFunc(line, isASCIISpace)
	if len(fields) < 2 {
		return domain.Record{}, fmt.Errorf("%w: want \"<encoding> <value>\", got %d token(s)", domain.ErrMalformedRecord, len(fields))
	}
	enc, err := domain.ParseEncoding(fields[0])
	if err != nil {
		return domain.Record{}, err
	}
	return domain.Record{Encoding: enc, Value: fields[1]}, nil
}

// Run processes r line by line until EOF, writing one line per record to w.
func (s *Service) Run(r io.Reader, w io.Writer) (err error) {
	out := bufio.NewWriter(w)
	defer func() {
		if ferr := out.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}()

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, min(4096, s.maxLineBytes)), s.maxLineBytes)

	line := 0
	for sc.Scan() {
		line++
		conv, err := s.process(sc.Text())
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if _, err := fmt.Fprintln(out, conv.String()); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("line %d: %w", line+1, err)
	}
	return nil
}

func (s *Service) process(text string) (domain.Conversion, error) {
	rec, err := ParseRecord(text)
	if err != nil {
		return domain.Conversion{}, err
	}
	return s.convert.Convert(rec.Encoding, rec.Value)
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// Compile-time assertion that Service implements domain.BatchService.
var _ domain.BatchService = (*Service)(nil)
