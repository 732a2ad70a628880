package corpus

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCache(t *testing.T) {
	t.Parallel()

	c, err := NewCache(0)
	require.NoError(t, err)
	assert.Nil(t, c)

	c, err = NewCache(4)
	require.NoError(t, err)
	assert.NotNil(t, c)
}

func TestCacheValidate(t *testing.T) {
	t.Parallel()

	t.Run("identical content is validated once", func(t *testing.T) {
		t.Parallel()
		c, err := NewCache(8)
		require.NoError(t, err)

		first, hit := c.Validate([]byte(`[1]`))
		assert.False(t, hit)
		assert.False(t, first.IsValid())

		second, hit := c.Validate([]byte(`[1]`))
		assert.True(t, hit)
		assert.Same(t, first, second)
		assert.Equal(t, 1, c.Len())

		other, hit := c.Validate([]byte(`["ok"]`))
		assert.False(t, hit)
		assert.True(t, other.IsValid())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("least recently used entries are evicted", func(t *testing.T) {
		t.Parallel()
		c, err := NewCache(1)
		require.NoError(t, err)

		c.Validate([]byte(`["a"]`))
		c.Validate([]byte(`["b"]`))
		_, hit := c.Validate([]byte(`["a"]`))
		assert.False(t, hit)
		assert.Equal(t, 1, c.Len())
	})

	t.Run("nil cache validates every time", func(t *testing.T) {
		t.Parallel()
		var c *Cache
		res, hit := c.Validate([]byte(`["a"]`))
		assert.False(t, hit)
		assert.True(t, res.IsValid())
		assert.Equal(t, 0, c.Len())
	})

	t.Run("concurrent use", func(t *testing.T) {
		t.Parallel()
		c, err := NewCache(16)
		require.NoError(t, err)

		var wg sync.WaitGroup
		for range 32 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res, _ := c.Validate([]byte(`["x", {"a": 1}]`))
				assert.True(t, res.IsValid())
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, c.Len())
	})
}
