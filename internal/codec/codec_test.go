package codec_test

import (
	"errors"
	"testing"

	"numcode/internal/codec"
	"numcode/internal/domain"
)

func num(integer, fraction []domain.Digit) domain.Number {
	return domain.Number{Integer: integer, Fraction: fraction}
}

func digits(ds ...domain.Digit) []domain.Digit { return ds }

func TestTables_Literal(t *testing.T) {
	tests := []struct {
		table *codec.Table
		digit domain.Digit
		want  string
	}{
		{codec.BCDTable, domain.Five, "0101"},
		{codec.AikenTable, domain.Five, "1011"},
		{codec.StibitzTable, domain.Five, "1000"},
		{codec.BCDTable, domain.Nine, "1001"},
		{codec.AikenTable, domain.Nine, "1111"},
		{codec.StibitzTable, domain.Nine, "1100"},
		{codec.StibitzTable, domain.Zero, "0011"},
		{codec.DecimalTable, domain.Seven, "7"},
	}
	for _, tt := range tests {
		if got := tt.table.Codeword(tt.digit); got != tt.want {
			t.Errorf("%s.Codeword(%v) = %q, want %q", tt.table.Encoding(), tt.digit, got, tt.want)
		}
	}
}

func TestTables_AikenSelfComplementing(t *testing.T) {
	for d := domain.Zero; d <= domain.Nine; d++ {
		word := codec.AikenTable.Codeword(d)
		comp := make([]byte, len(word))
		for i := range word {
			if word[i] == '0' {
				comp[i] = '1'
			} else {
				comp[i] = '0'
			}
		}
		got, ok := codec.AikenTable.Lookup(string(comp))
		if !ok || got != domain.Nine-d {
			t.Errorf("complement of %v (%s) = %v, %v; want %v", d, word, got, ok, domain.Nine-d)
		}
	}
}

func TestTables_StibitzIsExcessThree(t *testing.T) {
	for d := domain.Zero; d <= domain.Six; d++ {
		if got, want := codec.StibitzTable.Codeword(d), codec.BCDTable.Codeword(d+3); got != want {
			t.Errorf("stibitz(%v) = %s, want bcd(%v) = %s", d, got, d+3, want)
		}
	}
}

func TestRoundTrip_EveryDigit(t *testing.T) {
	for _, enc := range domain.Encodings {
		c := codec.New()
		for d := domain.Zero; d <= domain.Nine; d++ {
			n := num(digits(d), nil)
			got, err := c.Decode(enc, c.Encode(enc, n))
			if err != nil {
				t.Fatalf("%s decode %v: %v", enc, d, err)
			}
			if !got.Equal(n) {
				t.Errorf("%s round trip of %v = %v", enc, d, got)
			}
		}
	}
}

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Number
	}{
		{"42.35", num(digits(domain.Four, domain.Two), digits(domain.Three, domain.Five))},
		{"42,35", num(digits(domain.Four, domain.Two), digits(domain.Three, domain.Five))},
		{"007", num(digits(domain.Zero, domain.Zero, domain.Seven), nil)},
		{".5", num(nil, digits(domain.Five))},
		{"3.", num(digits(domain.Three), nil)},
		{"", num(nil, nil)},
	}
	for _, tt := range tests {
		got, err := codec.ParseDecimal(tt.in)
		if err != nil {
			t.Fatalf("ParseDecimal(%q): %v", tt.in, err)
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParseDecimal(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseDecimal_InvalidDigit(t *testing.T) {
	tests := []struct {
		in   string
		char rune
		pos  int
	}{
		{"4a", 'a', 1},
		{"1.2.3", '.', 3},
		{"1,2,3", ',', 3},
		{"1.2,3", ',', 3},
		{"-1", '-', 0},
		{"1 2", ' ', 1},
		{"½", '½', 0},
	}
	for _, tt := range tests {
		_, err := codec.ParseDecimal(tt.in)
		if !errors.Is(err, domain.ErrInvalidDigit) {
			t.Fatalf("ParseDecimal(%q) err = %v, want ErrInvalidDigit", tt.in, err)
		}
		var de *domain.DigitError
		if !errors.As(err, &de) {
			t.Fatalf("ParseDecimal(%q) err = %T, want *domain.DigitError", tt.in, err)
		}
		if de.Char != tt.char || de.Pos != tt.pos {
			t.Errorf("ParseDecimal(%q) = %q at %d, want %q at %d", tt.in, de.Char, de.Pos, tt.char, tt.pos)
		}
	}
}

func TestFormatDecimal_NormalisesSeparator(t *testing.T) {
	tests := []struct{ in, want string }{
		{"42.35", "4 2 . 3 5"},
		{"42,35", "4 2 . 3 5"},
		{"7", "7"},
		{"3.", "3"},
		{"", ""},
	}
	for _, tt := range tests {
		n, err := codec.ParseDecimal(tt.in)
		if err != nil {
			t.Fatalf("ParseDecimal(%q): %v", tt.in, err)
		}
		if got := codec.FormatDecimal(n); got != tt.want {
			t.Errorf("FormatDecimal(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormat_AllEncodings(t *testing.T) {
	tests := []struct {
		in                           string
		decimal, bcd, aiken, stibitz string
	}{
		{"42.35", "4 2 . 3 5", "0100 0010 . 0011 0101", "0100 0010 . 0011 1011", "0111 0101 . 0110 1000"},
		{"44.51", "4 4 . 5 1", "0100 0100 . 0101 0001", "0100 0100 . 1011 0001", "0111 0111 . 1000 0100"},
		{"7", "7", "0111", "1101", "1010"},
		{"90", "9 0", "1001 0000", "1111 0000", "1100 0011"},
	}
	for _, tt := range tests {
		n, err := codec.ParseDecimal(tt.in)
		if err != nil {
			t.Fatalf("ParseDecimal(%q): %v", tt.in, err)
		}
		if got := codec.FormatDecimal(n); got != tt.decimal {
			t.Errorf("FormatDecimal(%q) = %q, want %q", tt.in, got, tt.decimal)
		}
		if got := codec.FormatBCD(n); got != tt.bcd {
			t.Errorf("FormatBCD(%q) = %q, want %q", tt.in, got, tt.bcd)
		}
		if got := codec.FormatAiken(n); got != tt.aiken {
			t.Errorf("FormatAiken(%q) = %q, want %q", tt.in, got, tt.aiken)
		}
		if got := codec.FormatStibitz(n); got != tt.stibitz {
			t.Errorf("FormatStibitz(%q) = %q, want %q", tt.in, got, tt.stibitz)
		}
	}
}

func TestFormat_Idempotent(t *testing.T) {
	n := num(digits(domain.Four, domain.Four), digits(domain.Five, domain.One))
	for _, enc := range domain.Encodings {
		c := codec.New()
		if a, b := c.Encode(enc, n), c.Encode(enc, n); a != b {
			t.Errorf("%s: %q != %q", enc, a, b)
		}
	}
}

func TestParseBinary(t *testing.T) {
	want := num(digits(domain.Four, domain.Two), digits(domain.Three, domain.Five))
	tests := []struct {
		name  string
		parse func(string) (domain.Number, error)
		in    string
	}{
		{"bcd spaced", codec.ParseBCD, "0100 0010 . 0011 0101"},
		{"bcd packed", codec.ParseBCD, "01000010.00110101"},
		{"bcd comma", codec.ParseBCD, "0100 0010,0011 0101"},
		{"aiken spaced", codec.ParseAiken, "0100 0010 . 0011 1011"},
		{"aiken packed", codec.ParseAiken, "01000010.00111011"},
		{"stibitz spaced", codec.ParseStibitz, "0111 0101 . 0110 1000"},
		{"stibitz packed", codec.ParseStibitz, "01110101.01101000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.parse(tt.in)
			if err != nil {
				t.Fatalf("parse %q: %v", tt.in, err)
			}
			if !got.Equal(want) {
				t.Fatalf("parse %q = %v, want %v", tt.in, got, want)
			}
		})
	}
}

func TestParseBinary_Empty(t *testing.T) {
	for _, in := range []string{"", "   "} {
		got, err := codec.ParseBCD(in)
		if err != nil {
			t.Fatalf("ParseBCD(%q): %v", in, err)
		}
		if len(got.Integer) != 0 || len(got.Fraction) != 0 {
			t.Errorf("ParseBCD(%q) = %v, want empty", in, got)
		}
	}
}

func TestParseBinary_InvalidCodeword(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) (domain.Number, error)
		in    string
		token string
		pos   int
	}{
		{"bcd don't care", codec.ParseBCD, "1010", "1010", 0},
		{"bcd 1111", codec.ParseBCD, "0001 1111", "1111", 5},
		{"aiken gap", codec.ParseAiken, "0101", "0101", 0},
		{"stibitz below", codec.ParseStibitz, "0000", "0000", 0},
		{"stibitz above", codec.ParseStibitz, "1101", "1101", 0},
		{"short", codec.ParseBCD, "010", "010", 0},
		{"short before separator", codec.ParseBCD, "0100 01.0011", "01", 5},
		{"non binary", codec.ParseBCD, "01a0", "01a0", 0},
		{"second separator", codec.ParseBCD, "0100 . 0011 . 0001", ".", 12},
		{"decimal digits", codec.ParseStibitz, "42", "42", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.parse(tt.in)
			if !errors.Is(err, domain.ErrInvalidCodeword) {
				t.Fatalf("parse %q err = %v, want ErrInvalidCodeword", tt.in, err)
			}
			var ce *domain.CodewordError
			if !errors.As(err, &ce) {
				t.Fatalf("parse %q err = %T, want *domain.CodewordError", tt.in, err)
			}
			if ce.Token != tt.token || ce.Pos != tt.pos {
				t.Errorf("parse %q = %q at %d, want %q at %d", tt.in, ce.Token, ce.Pos, tt.token, tt.pos)
			}
		})
	}
}

func TestTableFor_Unknown(t *testing.T) {
	if _, err := codec.TableFor(domain.Encoding(9)); !errors.Is(err, domain.ErrUnknownEncoding) {
		t.Fatalf("TableFor(9) err = %v, want ErrUnknownEncoding", err)
	}
	if _, err := codec.New().Decode(domain.Encoding(9), "1"); !errors.Is(err, domain.ErrUnknownEncoding) {
		t.Fatalf("Decode(9) err = %v, want ErrUnknownEncoding", err)
	}
}
