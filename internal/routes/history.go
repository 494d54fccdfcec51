package routes

import (
	"net/http"
	"sync"
)

// History is an in-memory Location with a back/forward stack.
type History struct {
	mu      sync.Mutex
	entries []string
	index   int
	nextID  int
	subs    map[int]func()
}

// NewHistory starts a history at path ("/" when empty).
func NewHistory(path string) *History {
	if path == "" {
		path = "/"
	}
	return &History{entries: []string{path}, subs: map[int]func(){}}
}

// Path returns the current entry.
func (h *History) Path() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.entries[h.index]
}

// Subscribe registers fn for history events.
func (h *History) Subscribe(fn func()) func() {
	h.mu.Lock()
	id := h.nextID
	h.nextID++
	h.subs[id] = fn
	h.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subs, id)
			h.mu.Unlock()
		})
	}
}

// Subscribers reports how many listeners are registered.
func (h *History) Subscribers() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.subs)
}

// Push appends path and drops any forward entries. It does not notify.
func (h *History) Push(path string) {
	h.mu.Lock()
	h.entries = append(h.entries[:h.index+1], path)
	h.index = len(h.entries) - 1
	h.mu.Unlock()
}

// Replace swaps the current entry without notifying, like an external change to the location.
func (h *History) Replace(path string) {
	h.mu.Lock()
	h.entries[h.index] = path
	h.mu.Unlock()
}

// Back moves one entry back and notifies. It reports false at the start of history.
func (h *History) Back() bool {
	h.mu.Lock()
	if h.index == 0 {
		h.mu.Unlock()
		return false
	}
	h.index--
	h.mu.Unlock()
	h.PopState()
	return true
}

// Forward moves one entry forward and notifies. It reports false at the end of history.
func (h *History) Forward() bool {
	h.mu.Lock()
	if h.index >= len(h.entries)-1 {
		h.mu.Unlock()
		return false
	}
	h.index++
	h.mu.Unlock()
	h.PopState()
	return true
}

// PopState notifies subscribers without moving.
func (h *History) PopState() {
	h.mu.Lock()
	fns := make([]func(), 0, len(h.subs))
	for _, fn := range h.subs {
		fns = append(fns, fn)
	}
	h.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// RequestLocation is the Location of a server request. It never fires history events.
type RequestLocation struct {
	path string
}

// LocationFromRequest uses the request URL path; query and fragment are ignored.
func LocationFromRequest(r *http.Request) RequestLocation {
	if r == nil || r.URL == nil {
		return RequestLocation{}
	}
	return RequestLocation{path: r.URL.Path}
}

// Path returns the request path.
func (l RequestLocation) Path() string { return l.path }

// Subscribe is a no-op; a request has no history to navigate.
func (l RequestLocation) Subscribe(func()) func() { return func() {} }
