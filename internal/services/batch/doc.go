// Package batch runs the line-oriented conversion job.
//
// Each input line is a record "<encoding> <value>" separated by ASCII
// whitespace; tokens after the value are ignored. For every record one output
// line is written holding the tab-separated decimal, BCD, Aiken and Stibitz
// renderings.
//
// # Errors
//
// The job is fail-fast: the first malformed record, unknown encoding or
// undecodable value stops processing. Output for the preceding lines is still
// flushed, and the returned error carries the 1-based line number.
package batch
