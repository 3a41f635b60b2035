// Package translate provides the single-word translation collaborator used
// by the fusion engine's inline-translation path.
//
// Client talks to a LibreTranslate-compatible HTTP endpoint with bounded
// retries; requests are idempotent and safe to reissue. Cache persists
// results in SQLite keyed by word, language pair, and context, with an
// expiry, so repeated runs over the same material stop hitting the network.
// The fusion engine only sees the Translator interface and stays unaware of
// caching policy.
package translate
