// Package language provides unified language code normalization and mapping.
//
// All language-related conversions (ISO 639-1, display names, word forms)
// are consolidated here so the vocabulary, lemmatizer, and translation
// packages agree on codes.
package language
