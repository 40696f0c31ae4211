package codec

import (
	"strings"

	"numcode/internal/domain"
)

// codewordWidth is the length of every binary codeword.
const codewordWidth = 4

// Table is a fixed code: one codeword per digit value, plus its inverse.
type Table struct {
	enc   domain.Encoding
	words [10]string
	index map[string]domain.Digit
}

// NewTable builds a Table for enc from codewords indexed by digit value.
// The codewords must be distinct.
func NewTable(enc domain.Encoding, words [10]string) *Table {
	t := &Table{enc: enc, words: words, index: make(map[string]domain.Digit, len(words))}
	for i, w := range words {
		if _, dup := t.index[w]; dup {
			panic("codec: duplicate codeword " + w + " in " + enc.String() + " table")
		}
		t.index[w] = domain.Digit(i)
	}
	return t
}

var (
	DecimalTable = NewTable(domain.Decimal, [10]string{
		"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	})
	BCDTable = NewTable(domain.BCD, [10]string{
		"0000", "0001", "0010", "0011", "0100", "0101", "0110", "0111", "1000", "1001",
	})
	AikenTable = NewTable(domain.Aiken, [10]string{
		"0000", "0001", "0010", "0011", "0100", "1011", "1100", "1101", "1110", "1111",
	})
	StibitzTable = NewTable(domain.Stibitz, [10]string{
		"0011", "0100", "0101", "0110", "0111", "1000", "1001", "1010", "1011", "1100",
	})
)

// Encoding returns the encoding t implements.
func (t *Table) Encoding() domain.Encoding { return t.enc }

// Codeword returns the codeword for d.
func (t *Table) Codeword(d domain.Digit) string { return t.words[d.Value()] }

// Lookup returns the digit whose codeword is word.
func (t *Table) Lookup(word string) (domain.Digit, bool) {
	d, ok := t.index[word]
	return d, ok
}

// Format renders n with t. It never fails.
func (t *Table) Format(n domain.Number) string {
	tokens := make([]string, 0, len(n.Integer)+len(n.Fraction)+1)
	for _, d := range n.Integer {
		tokens = append(tokens, t.Codeword(d))
	}
	if n.HasFraction() {
		tokens = append(tokens, ".")
		for _, d := range n.Fraction {
			tokens = append(tokens, t.Codeword(d))
		}
	}
	return strings.Join(tokens, " ")
}

// Parse reverses Format for a binary code table. Whitespace between tokens is
// optional; the first "." or "," starts the fraction and any later separator is
// an invalid codeword.
func (t *Table) Parse(text string) (domain.Number, error) {
	var (
		n          domain.Number
		fractional bool
	)
	for i := 0; i < len(text); {
		c := text[i]
		switch {
		case isSpace(c):
			i++
			continue
		case isSeparator(c):
			if fractional {
				return domain.Number{}, &domain.CodewordError{Encoding: t.enc, Token: text[i : i+1], Pos: i}
			}
			fractional = true
			i++
			continue
		}

		j := i
		for j < len(text) && j-i < codewordWidth && !isSpace(text[j]) && !isSeparator(text[j]) {
			j++
		}
		word := text[i:j]
		d, ok := t.Lookup(word)
		if !ok || len(word) != codewordWidth {
			return domain.Number{}, &domain.CodewordError{Encoding: t.enc, Token: word, Pos: i}
		}
		if fractional {
			n.Fraction = append(n.Fraction, d)
		} else {
			n.Integer = append(n.Integer, d)
		}
		i = j
	}
	return n, nil
}

func isSeparator(c byte) bool { return c == '.' || c == ',' }

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
