package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCacheSetGet(t *testing.T) {
	c := New[[]string](nil)

	c.Set("DEL|BOM", []string{"2026-09-10"}, time.Minute)

	got, ok := c.Get("DEL|BOM")
	assert.True(t, ok)
	assert.Equal(t, []string{"2026-09-10"}, got)
}

func TestCacheMiss(t *testing.T) {
	c := New[[]string](nil)

	_, ok := c.Get("absent")
	assert.False(t, ok)
}

func TestCacheExpiry(t *testing.T) {
	c := New[[]string](nil)

	c.Set("DEL|BOM", []string{"2026-09-10"}, -time.Second)

	_, ok := c.Get("DEL|BOM")
	assert.False(t, ok)
}

func TestCacheDelete(t *testing.T) {
	c := New[[]string](nil)

	c.Set("DEL|BOM", []string{"2026-09-10"}, time.Minute)
	c.Delete("DEL|BOM")

	_, ok := c.Get("DEL|BOM")
	assert.False(t, ok)
}

func TestCacheCloneIsolatesCallers(t *testing.T) {
	clone := func(v []string) []string {
		out := make([]string, len(v))
		copy(out, v)
		return out
	}
	c := New(clone)

	original := []string{"2026-09-10"}
	c.Set("DEL|BOM", original, time.Minute)

	got, ok := c.Get("DEL|BOM")
	assert.True(t, ok)
	got[0] = "mutated"

	again, ok := c.Get("DEL|BOM")
	assert.True(t, ok)
	assert.Equal(t, "2026-09-10", again[0])
}
