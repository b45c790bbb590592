// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

package lazyjson

// The position cache is a side-table mapping a container's child indices or
// keys to their byte offsets. It is populated only when a handle's useCache
// flag is set, grows monotonically as traversal progresses, and never
// evicts. It must remain complete once a full traversal has happened, so
// any insertion-ordered or even unordered map suffices; there is no bound
// to enforce.

type arrayCache struct {
	offsets map[int]int64
}

func newArrayCache() *arrayCache { return &arrayCache{offsets: make(map[int]int64)} }

func (c *arrayCache) put(i int, pos int64) { c.offsets[i] = pos }

func (c *arrayCache) get(i int) (int64, bool) {
	pos, ok := c.offsets[i]
	return pos, ok
}

type objectCache struct {
	offsets map[string]int64
}

func newObjectCache() *objectCache { return &objectCache{offsets: make(map[string]int64)} }

// put overwrites any previous offset for key, implementing "last occurrence
// wins" for duplicate object keys.
func (c *objectCache) put(key string, pos int64) { c.offsets[key] = pos }

func (c *objectCache) get(key string) (int64, bool) {
	pos, ok := c.offsets[key]
	return pos, ok
}
