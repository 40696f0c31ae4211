package domain

import "strings"

// Record is one parsed batch input line.
type Record struct {
	Encoding Encoding
	Value    string
}

// Conversion holds a number rendered in every encoding.
type Conversion struct {
	Decimal string
	BCD     string
	Aiken   string
	Stibitz string
}

// Fields returns the renderings in output order.
func (c Conversion) Fields() []string {
	return []string{c.Decimal, c.BCD, c.Aiken, c.Stibitz}
}

// String joins the renderings with tabs, forming one output line (without newline).
func (c Conversion) String() string { return strings.Join(c.Fields(), "\t") }
