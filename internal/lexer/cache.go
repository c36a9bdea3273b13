package lexer

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"
)

// CachingAnalyzer memoizes the results of another Analyzer in an LRU keyed by
// input. Results are immutable, so failures are cached as well as successes.
type CachingAnalyzer struct {
	inner Analyzer
	cache *lru.Cache
}

type cachedResult struct {
	tokens []Token
	err    error
}

// NewCachingAnalyzer wraps inner with a cache holding up to size inputs.
func NewCachingAnalyzer(inner Analyzer, size int) (*CachingAnalyzer, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrapf(err, "create analysis cache of size %d", size)
	}
	return &CachingAnalyzer{inner: inner, cache: cache}, nil
}

// Analyze returns the cached result for input, computing it on a miss. The
// returned slice is always a fresh copy owned by the caller.
func (c *CachingAnalyzer) Analyze(input string) ([]Token, error) {
	if v, ok := c.cache.Get(input); ok {
		r := v.(cachedResult)
		return cloneTokens(r.tokens), r.err
	}

	tokens, err := c.inner.Analyze(input)
	c.cache.Add(input, cachedResult{tokens: cloneTokens(tokens), err: err})
	return tokens, err
}

// Len returns the number of cached inputs.
func (c *CachingAnalyzer) Len() int {
	return c.cache.Len()
}

// Purge drops every cached result.
func (c *CachingAnalyzer) Purge() {
	c.cache.Purge()
}

func cloneTokens(tokens []Token) []Token {
	if tokens == nil {
		return nil
	}
	out := make([]Token, len(tokens))
	copy(out, tokens)
	return out
}
