// Package convert decodes a value written in one encoding and renders it in all
// four, in the fixed order decimal, BCD, Aiken, Stibitz.
package convert
