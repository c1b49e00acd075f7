package beam

// cachedPath is a fully traced path together with the geometry generation it
// was traced against
type cachedPath struct {
	segments   []PathSegment
	generation uint64
}

// pathCache memoizes traced paths per beam source. A path is recomputed only
// when the world's geometry generation has moved past the one it was traced
// at, so within one generation each source is raycast at most once.
type pathCache struct {
	entries map[SourceID]cachedPath
}

func newPathCache() *pathCache {
	return &pathCache{
		entries: make(map[SourceID]cachedPath),
	}
}

// getOrCompute returns the cached path for id, tracing it with compute if the
// entry is missing or stale. The second result reports whether a trace ran.
func (c *pathCache) getOrCompute(id SourceID, generation uint64, compute func() []PathSegment) ([]PathSegment, bool) {
	if entry, ok := c.entries[id]; ok && entry.generation == generation {
		return entry.segments, false
	}

	segments := compute()
	c.entries[id] = cachedPath{segments: segments, generation: generation}
	return segments, true
}

func (c *pathCache) drop(id SourceID) {
	delete(c.entries, id)
}

func (c *pathCache) clear() {
	c.entries = make(map[SourceID]cachedPath)
}

func (c *pathCache) len() int {
	return len(c.entries)
}
