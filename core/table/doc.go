// Package table handles the CSV side of the adapter: parsing a file
// into an in-memory table, detecting its field separator, and
// serializing a table back out with a chosen separator.
//
// A Table keeps the header in file order and each row as a map from
// column name to cell value. Duplicate header names are not supported
// by the pipeline; parsing keeps the raw header intact so the
// reconciler can reject such files, but row lookups by a duplicated
// name are unspecified.
//
// Input files are read whole; the system deliberately does not stream.
package table
