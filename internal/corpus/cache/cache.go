// Package cache memoizes the Document Preprocessor's output by the SHA-256
// of a raw record's fields, so re-running `build` against an unchanged
// source skips re-running the Preprocessor. This is purely a build-time
// speedup: the finalized index.Index itself is never persisted here.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/annekeller/mediasearch/internal/corpus"
	"github.com/annekeller/mediasearch/internal/search/record"
)

// PreprocessCache stores and retrieves record.Processed by content hash.
type PreprocessCache interface {
	Get(hash string) (record.Processed, bool)
	Set(hash string, rec record.Processed) error
	Close() error
}

// ContentHash returns the stable SHA-256 hex digest of a raw record's
// fields, used as the cache key for its preprocessed form.
func ContentHash(r corpus.RawRecord) string {
	h := sha256.New()
	enc := json.NewEncoder(h)
	_ = enc.Encode(r)
	return hex.EncodeToString(h.Sum(nil))
}

// Coalescer wraps a PreprocessCache with a singleflight.Group, shared across
// all callers of a given Coalescer, so that concurrent misses for the same
// content hash are collapsed onto a single compute call. It also counts
// cache hits and misses.
type Coalescer struct {
	cache  PreprocessCache
	group  singleflight.Group
	hits   atomic.Int64
	misses atomic.Int64
}

// NewCoalescer wraps cache with singleflight deduplication.
func NewCoalescer(cache PreprocessCache) *Coalescer {
	return &Coalescer{cache: cache}
}

// GetOrCompute looks up rec's content hash in the cache; on a miss it calls
// compute at most once per distinct hash even under concurrent callers.
func (c *Coalescer) GetOrCompute(raw corpus.RawRecord, compute func() record.Processed) (record.Processed, error) {
	hash := ContentHash(raw)
	if processed, ok := c.cache.Get(hash); ok {
		c.hits.Add(1)
		return processed, nil
	}

	v, err, _ := c.group.Do(hash, func() (interface{}, error) {
		if processed, ok := c.cache.Get(hash); ok {
			return processed, nil
		}
		processed := compute()
		if err := c.cache.Set(hash, processed); err != nil {
			return processed, err
		}
		return processed, nil
	})
	c.misses.Add(1)
	if err != nil {
		return record.Processed{}, err
	}
	return v.(record.Processed), nil
}

// Hits returns the number of cache hits observed so far.
func (c *Coalescer) Hits() int64 { return c.hits.Load() }

// Misses returns the number of cache misses observed so far.
func (c *Coalescer) Misses() int64 { return c.misses.Load() }
