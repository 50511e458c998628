// seehuhn.de/go/osdfont - a library for editing OSD bitmap fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package workspace

import (
	"slices"
	"sync"

	"seehuhn.de/go/osdfont"
)

// Reason describes why cached values may have become stale.
type Reason int

// These are the events which invalidate caches.
const (
	SourceFontChanged Reason = iota + 1
	StrokeModeChanged
	LayersChanged
	SwapSourcesChanged
)

func (r Reason) String() string {
	switch r {
	case SourceFontChanged:
		return "source font changed"
	case StrokeModeChanged:
		return "stroke mode changed"
	case LayersChanged:
		return "layers changed"
	case SwapSourcesChanged:
		return "swap sources changed"
	default:
		return "unknown"
	}
}

// Cache is a key/value store which is cleared when one of a fixed set of
// events happens.  It is safe for concurrent use.
type Cache[V any] struct {
	mu            sync.Mutex
	entries       map[string]V
	invalidatedBy []Reason
}

// NewCache returns an empty cache which is cleared by the given events.
func NewCache[V any](invalidatedBy ...Reason) *Cache[V] {
	return &Cache[V]{
		entries:       make(map[string]V),
		invalidatedBy: invalidatedBy,
	}
}

// Get returns the value stored under key.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok
}

// Put stores a value under key.
func (c *Cache[V]) Put(key string, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = v
}

// Len returns the number of cached values.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Invalidate clears the cache if it depends on reason.
// The return value reports whether the cache was cleared.
func (c *Cache[V]) Invalidate(reason Reason) bool {
	if !slices.Contains(c.invalidatedBy, reason) {
		return false
	}
	c.mu.Lock()
	n := len(c.entries)
	clear(c.entries)
	c.mu.Unlock()

	if n > 0 {
		osdfont.Logger().Debug("workspace: cache invalidated",
			"reason", reason.String(), "entries", n)
	}
	return true
}
