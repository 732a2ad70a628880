package corpus

import (
	lru "github.com/hashicorp/golang-lru"
	"github.com/pierrec/xxHash/xxHash64"

	"github.com/andyballingall/unity-markup/internal/unity"
)

type digest struct {
	sum  uint64
	size int
}

// Cache remembers validation results by document content, so identical
// documents are validated once. A nil *Cache validates every time.
type Cache struct {
	entries *lru.Cache
}

// NewCache returns a cache holding up to size results, or nil when size is 0.
func NewCache(size int) (*Cache, error) {
	if size <= 0 {
		return nil, nil
	}
	entries, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{entries: entries}, nil
}

// Validate returns the result for data, from the cache when the same content
// has been seen before. The bool reports a cache hit.
func (c *Cache) Validate(data []byte) (*unity.Result, bool) {
	if c == nil {
		return unity.ValidateBytes(data), false
	}

	key := digest{sum: xxHash64.Checksum(data, 0), size: len(data)}
	if v, ok := c.entries.Get(key); ok {
		if res, ok := v.(*unity.Result); ok {
			return res, true
		}
	}

	res := unity.ValidateBytes(data)
	c.entries.Add(key, res)
	return res, false
}

// Len is the number of cached results.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return c.entries.Len()
}
