// Package cache provides a small generic cache for render-time hints.
//
// Entries belong to a generation. Advancing the generation with [Cache.Renew]
// drops every entry, so callers derive the generation from whatever makes
// their hints stale (a viewport, a data version) and never see stale values.
//
//	c := cache.New[key, int](64)
//	c.Renew(viewportHash)
//	v := c.GetOrCreate(k, compute)
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
