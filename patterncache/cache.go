// Package patterncache keeps built BlockedPatternVectors for reuse across
// many matching calls.
//
// Vectors handed out by a Cache are shared by every caller that asks for the
// same pattern and must be treated as read-only.
package patterncache

import (
	"context"
	"fmt"
	"runtime"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"

	"github.com/mhr3/bitmatch/pattern"
)

// Cache is a fixed-size LRU of pattern vectors keyed by pattern string. It is
// safe for concurrent use.
type Cache struct {
	vectors *lru.Cache[string, *pattern.BlockedPatternVector]
}

// New returns a Cache holding at most size vectors.
func New(size int) (*Cache, error) {
	vectors, err := lru.New[string, *pattern.BlockedPatternVector](size)
	if err != nil {
		return nil, fmt.Errorf("patterncache: %w", err)
	}
	return &Cache{vectors: vectors}, nil
}

// Get returns the vector for p, building and caching it on a miss. When two
// goroutines miss on the same pattern, the first vector stored is returned to
// both.
func (c *Cache) Get(p string) *pattern.BlockedPatternVector {
	if bv, ok := c.vectors.Get(p); ok {
		return bv
	}
	bv := pattern.NewBlockedPatternVectorString(p)
	if prev, ok, _ := c.vectors.PeekOrAdd(p, bv); ok {
		return prev
	}
	return bv
}

// Preload builds every pattern not already cached, in parallel. It stops
// early and returns the context's error if ctx is cancelled.
func (c *Cache) Preload(ctx context.Context, patterns []string) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for _, p := range patterns {
		if gctx.Err() != nil {
			break
		}
		if c.vectors.Contains(p) {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			c.vectors.ContainsOrAdd(p, pattern.NewBlockedPatternVectorString(p))
			return nil
		})
	}

	err := g.Wait()
	if err == nil {
		err = ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("patterncache: preload: %w", err)
	}
	return nil
}

func (c *Cache) Len() int {
	return c.vectors.Len()
}

// Purge drops every cached vector.
func (c *Cache) Purge() {
	c.vectors.Purge()
}
