// Package textnorm canonicalizes text for alias comparison and downstream
// analysis.
//
// Normalization applies NFC composition, optional case folding, replacement
// of non-word characters with spaces, and whitespace collapsing. The result
// is stable under repeated application, which keeps index keys and query
// keys comparable without tracking how many times a string passed through.
package textnorm
