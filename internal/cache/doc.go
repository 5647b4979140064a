// Package cache provides a generic LRU cache used to memoize derived
// raster data, such as tiles resampled to a given scale.
//
//	c := cache.New[string, int](64)
//	v := c.GetOrCreate("key", func() int { return 42 })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
