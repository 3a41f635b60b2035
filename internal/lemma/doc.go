// Package lemma reduces subtitle lines to lemma tokens via an external
// Python helper built on simplemma.
//
// The helper reads lines on stdin and prints one space-joined lemma line per
// input line, so output tokens align positionally with the input's
// whitespace tokens. That alignment is the contract the classifier depends
// on to pair a lemma with its original surface word; callers must verify it
// per line and degrade when it breaks.
package lemma
