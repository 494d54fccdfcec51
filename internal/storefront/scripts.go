package storefront

import "sync"

// Script is an external script tag.
type Script struct {
	ID    string
	Src   string
	Async bool
	Defer bool
	// NoRocket sets data-cfasync="false" so Cloudflare leaves the tag alone.
	NoRocket bool
}

// Scripts collects the external scripts a page needs, at most one per id.
// Re-rendering a page or fragment that adds the same script is a no-op.
type Scripts struct {
	mu   sync.Mutex
	seen map[string]bool
	list []Script
}

// Add registers s and reports whether it was new.
func (r *Scripts) Add(s Script) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.seen == nil {
		r.seen = map[string]bool{}
	}
	if r.seen[s.ID] {
		return false
	}
	r.seen[s.ID] = true
	r.list = append(r.list, s)
	return true
}

// List returns the registered scripts in insertion order.
func (r *Scripts) List() []Script {
	if r == nil {
		return nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Script(nil), r.list...)
}
