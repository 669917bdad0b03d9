// Package mentions scans free-form text for film mentions using the alias
// index and fuzzy similarity.
//
// The detector tokenizes the raw input into word spans, forms every
// contiguous window of up to the index's maximum alias length, scores each
// window's normalized phrase against the index, and keeps accepted matches.
// Spans always refer to the original, unmodified input, so a mention's text
// is a verbatim substring of what was scanned.
package mentions
