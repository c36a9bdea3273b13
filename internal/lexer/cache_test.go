package lexer

import (
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingAnalyzer counts calls that reach the wrapped analyzer.
type countingAnalyzer struct {
	mu    sync.Mutex
	calls map[string]int
	inner Analyzer
}

func newCountingAnalyzer() *countingAnalyzer {
	return &countingAnalyzer{calls: make(map[string]int), inner: New()}
}

func (c *countingAnalyzer) Analyze(input string) ([]Token, error) {
	c.mu.Lock()
	c.calls[input]++
	c.mu.Unlock()
	return c.inner.Analyze(input)
}

func (c *countingAnalyzer) count(input string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls[input]
}

func TestCachingAnalyzer_Hit(t *testing.T) {
	inner := newCountingAnalyzer()
	c, err := NewCachingAnalyzer(inner, 8)
	require.NoError(t, err)

	first, err := c.Analyze("1 + 2")
	require.NoError(t, err)
	second, err := c.Analyze("1 + 2")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, inner.count("1 + 2"))
	assert.Equal(t, 1, c.Len())
}

func TestCachingAnalyzer_CachesErrors(t *testing.T) {
	inner := newCountingAnalyzer()
	c, err := NewCachingAnalyzer(inner, 8)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		tokens, err := c.Analyze("01")
		assert.Nil(t, tokens)
		assert.True(t, errors.Is(err, ErrMalformedNumber))
	}
	assert.Equal(t, 1, inner.count("01"))
}

func TestCachingAnalyzer_ReturnsCopies(t *testing.T) {
	c, err := NewCachingAnalyzer(New(), 8)
	require.NoError(t, err)

	first, err := c.Analyze("3 * 4")
	require.NoError(t, err)
	first[0] = NumberToken(100)

	second, err := c.Analyze("3 * 4")
	require.NoError(t, err)
	assert.Equal(t, NumberToken(3), second[0])

	second[2] = NumberToken(100)
	third, err := c.Analyze("3 * 4")
	require.NoError(t, err)
	assert.Equal(t, NumberToken(4), third[2])
}

func TestCachingAnalyzer_Evicts(t *testing.T) {
	inner := newCountingAnalyzer()
	c, err := NewCachingAnalyzer(inner, 2)
	require.NoError(t, err)

	for _, in := range []string{"1", "2", "3"} {
		_, err := c.Analyze(in)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, c.Len())

	_, err = c.Analyze("1")
	require.NoError(t, err)
	assert.Equal(t, 2, inner.count("1"))
}

func TestCachingAnalyzer_Purge(t *testing.T) {
	c, err := NewCachingAnalyzer(New(), 4)
	require.NoError(t, err)
	_, _ = c.Analyze("1")
	_, _ = c.Analyze("2 + 2")
	require.Equal(t, 2, c.Len())

	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestCachingAnalyzer_InvalidSize(t *testing.T) {
	_, err := NewCachingAnalyzer(New(), 0)
	assert.Error(t, err)
}

func TestCachingAnalyzer_Concurrent(t *testing.T) {
	c, err := NewCachingAnalyzer(New(), 16)
	require.NoError(t, err)

	inputs := []string{"1 + 2", "0.5 * 4", "01", "7 / 0", "1 +"}
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in := inputs[i%len(inputs)]
			want, wantErr := Analyze(in)
			got, gotErr := c.Analyze(in)
			assert.Equal(t, want, got, in)
			assert.Equal(t, KindOf(wantErr), KindOf(gotErr), in)
		}(i)
	}
	wg.Wait()
}
