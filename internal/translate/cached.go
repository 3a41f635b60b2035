package translate

import (
	"context"
	"log/slog"
)

// CachedTranslator decorates a Translator with the SQLite cache. Cache
// failures degrade to the wrapped translator; a broken cache must never
// block a translation that the network could still provide.
type CachedTranslator struct {
	next   Translator
	cache  *Cache
	logger *slog.Logger
}

// NewCachedTranslator wraps next with cache. logger may be nil.
func NewCachedTranslator(next Translator, cache *Cache, logger *slog.Logger) *CachedTranslator {
	return &CachedTranslator{next: next, cache: cache, logger: logger}
}

// Translate serves from the cache when possible and stores fresh results.
func (t *CachedTranslator) Translate(ctx context.Context, word, source, target, contextText string) (string, error) {
	if t.cache != nil {
		cached, ok, err := t.cache.Get(ctx, word, source, target, contextText)
		if err != nil && t.logger != nil {
			t.logger.Warn("translation cache read failed", slog.Any("error", err))
		}
		if ok {
			return cached, nil
		}
	}

	translation, err := t.next.Translate(ctx, word, source, target, contextText)
	if err != nil {
		return "", err
	}

	if t.cache != nil {
		if err := t.cache.Put(ctx, word, source, target, contextText, translation); err != nil && t.logger != nil {
			t.logger.Warn("translation cache write failed", slog.Any("error", err))
		}
	}
	return translation, nil
}
