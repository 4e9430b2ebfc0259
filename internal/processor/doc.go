// Package processor contains the command-line conversion logic. It
// orchestrates reading input files, running conversions through the
// engine, writing output and recording history. This package serves as
// the coordinator between the CLI flags and the conversion core.
package processor
