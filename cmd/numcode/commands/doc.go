// Package commands defines the numcode CLI.
//
// numcode runs in batch mode only: it reads "<encoding> <value>" records from
// stdin and writes each value in decimal, BCD, Aiken and Stibitz form, tab
// separated, to stdout. Recognised encodings are decimal, bcd, aiken and
// stibitz.
//
// # Implementation
//
// The root command disables flag parsing so that every command-line argument,
// flags included, is rejected as a usage error before any input is read. The
// app context is built from the command's streams in PersistentPreRunE.
package commands
