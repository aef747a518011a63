// Package cache holds the page-level staleness signal: mutations mark a
// page path stale, the next render of that page refetches instead of
// serving the cached payload.
package cache

import "sync"

// Pages caches one rendered data payload per page path. Each path carries a
// generation that mutations advance; a payload fetched under an old
// generation is dropped at Put so a render racing a mutation cannot revive
// stale data.
type Pages struct {
	mu       sync.Mutex
	payloads map[string]interface{}
	gens     map[string]uint64
}

func NewPages() *Pages {
	return &Pages{
		payloads: make(map[string]interface{}),
		gens:     make(map[string]uint64),
	}
}

// Generation returns the current generation for path. Capture it before
// fetching and hand it back to Put.
func (p *Pages) Generation(path string) uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gens[path]
}

// Get returns the cached payload for path, or ok=false when nothing fresh
// is cached.
func (p *Pages) Get(path string) (interface{}, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	payload, ok := p.payloads[path]
	return payload, ok
}

// Put stores a freshly fetched payload for path. The payload is dropped if
// a mutation invalidated the path after gen was captured.
func (p *Pages) Put(path string, payload interface{}, gen uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gens[path] != gen {
		return
	}
	p.payloads[path] = payload
}

// Invalidate marks the payload for path stale: the cached payload is
// discarded and the generation advances so in-flight renders cannot write
// it back.
func (p *Pages) Invalidate(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gens[path]++
	delete(p.payloads, path)
}
