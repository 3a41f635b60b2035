// Package vocab models the learner's known vocabulary and classifies words
// against it.
//
// A Set holds the top-N most frequent lemmas of a language, loaded once per
// run and never mutated. Classification handles the two edge cases that a
// plain membership test gets wrong: contractions (known only when every
// expanded component is known) and proper nouns (capitalized names are
// excluded from the unknown count rather than translated or blocked).
package vocab
