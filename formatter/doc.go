// Package formatter renders log events into single lines of text.
//
// Two layouts are provided. ConsoleFormatter writes a short time of day
// and ends the prefix with a colon; it can color the prefix with the
// level's ANSI color. FileFormatter writes the full date and time and is
// used for files and custom sinks.
//
// Formatters write into a caller-provided bytes.Buffer. WriteTo wraps
// that with a pooled buffer so a line reaches the underlying writer in
// a single Write call, and flushes writers that buffer. Buffers larger
// than 64 KiB are not returned to the pool to prevent a single large
// log line from permanently inflating memory usage.
package formatter
