package ginga

import (
	"image"
	"sync"
)

// viewerCache holds one viewer's intermediate pipeline outputs. A nil
// field means "stale, recompute on next draw"; resetting a field also
// invalidates everything downstream of it through the whence guards.
type viewerCache struct {
	cutout *Pixmap     // stage 1: scaled, clipped cutout
	alpha  []uint8     // separated alpha plane, nil if source has none
	prergb *IndexArray // stage 2: cut-leveled index array
	rgbarr *Pixmap     // stage 3: color-mapped pixels in viewer order
	drawn  bool
	pos    image.Point // destination placement offset
}

func (c *viewerCache) reset() {
	c.cutout = nil
	c.alpha = nil
	c.prergb = nil
	c.rgbarr = nil
	c.drawn = false
	c.pos = image.Point{}
}

// cacheMap maps viewers to their cache entries. Entry creation is
// insert-if-absent under a mutex so concurrent first draws from
// different viewers are safe; everything inside an entry belongs to
// its viewer's render pass alone.
type cacheMap struct {
	mu      sync.Mutex
	entries map[Viewer]*viewerCache
}

func (m *cacheMap) get(v Viewer) *viewerCache {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.entries == nil {
		m.entries = map[Viewer]*viewerCache{}
	}
	c, ok := m.entries[v]
	if !ok {
		c = &viewerCache{}
		m.entries[v] = c
	}
	return c
}

func (m *cacheMap) has(v Viewer) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[v]
	return ok
}

func (m *cacheMap) delete(v Viewer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, v)
}

// viewers returns a snapshot of the keys, safe to range over while
// entries are created or removed.
func (m *cacheMap) viewers() []Viewer {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Viewer, 0, len(m.entries))
	for v := range m.entries {
		out = append(out, v)
	}
	return out
}

func (m *cacheMap) each(fn func(*viewerCache)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.entries {
		fn(c)
	}
}
