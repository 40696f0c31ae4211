// Package codec converts between the text form of each supported encoding and
// the canonical domain.Number.
//
// Encodings
//
//   - decimal  one ASCII character per digit; "." or "," separates the fraction
//   - bcd      8421 weighted, the 4-bit binary value of the digit
//   - aiken    2421 weighted, self-complementing
//   - stibitz  Excess-3, the BCD value plus three
//
// # Format
//
// Every encoder shares one table-driven routine: each digit is replaced by its
// codeword and all tokens are joined by single spaces. A non-empty fraction is
// preceded by a lone "." token, so 42.35 in BCD is "0100 0010 . 0011 0101".
//
// # Parse
//
// The decimal decoder scans characters and recognises only the first "." or ","
// as the separator. The binary decoders accept the encoder's own output, and
// also codewords written back to back ("01000010.00110101"), reversing the
// table lookup. Unknown 4-bit patterns, including unused BCD combinations, are
// rejected with *domain.CodewordError.
package codec
