package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseCacheRoundTrip(t *testing.T) {
	rc := NewResponseCache(time.Minute)

	rc.Set("q1", []byte("body-1"))
	got, ok := rc.Get("q1")
	require.True(t, ok)
	assert.Equal(t, []byte("body-1"), got)

	_, ok = rc.Get("q2")
	assert.False(t, ok)
}

func TestResponseCacheExpiry(t *testing.T) {
	rc := NewResponseCache(10 * time.Millisecond)

	rc.Set("q1", []byte("body-1"))
	time.Sleep(25 * time.Millisecond)

	_, ok := rc.Get("q1")
	assert.False(t, ok)
	// Expired entries are dropped on access.
	assert.Equal(t, 0, rc.Len())
}

func TestResponseCacheClear(t *testing.T) {
	rc := NewResponseCache(time.Minute)
	rc.Set("q1", []byte("a"))
	rc.Set("q2", []byte("b"))
	require.Equal(t, 2, rc.Len())

	rc.Clear()
	assert.Equal(t, 0, rc.Len())
	_, ok := rc.Get("q1")
	assert.False(t, ok)
}

func TestResponseCacheDisabled(t *testing.T) {
	rc := NewResponseCache(0)
	rc.Set("q1", []byte("a"))
	_, ok := rc.Get("q1")
	assert.False(t, ok)
}

func TestResponseCacheNilSafe(t *testing.T) {
	var rc *ResponseCache

	assert.NotPanics(t, func() {
		rc.Set("q1", []byte("a"))
		_, _ = rc.Get("q1")
		rc.Clear()
	})
	assert.Equal(t, 0, rc.Len())
}
