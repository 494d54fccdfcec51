package routes

import "sync"

// Location exposes the current path and history (back/forward) notifications.
// Programmatic navigation does not notify subscribers.
type Location interface {
	Path() string
	Subscribe(fn func()) (cancel func())
}

// Resolver keeps the resolved page in sync with a Location.
type Resolver struct {
	table *Table
	loc   Location

	mu       sync.Mutex
	path     string
	page     Page
	cancel   func()
	onChange func(path string, page Page)
}

// NewResolver reads the location once and resolves it against table.
func NewResolver(table *Table, loc Location) *Resolver {
	r := &Resolver{table: table, loc: loc}
	r.path = currentPath(loc)
	r.page = table.Resolve(r.path)
	return r
}

// OnChange registers a hook invoked after every history-driven re-resolution.
func (r *Resolver) OnChange(fn func(path string, page Page)) {
	r.mu.Lock()
	r.onChange = fn
	r.mu.Unlock()
}

// Mount subscribes to history events. Calling Mount twice is a no-op.
func (r *Resolver) Mount() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil || r.loc == nil {
		return
	}
	r.cancel = r.loc.Subscribe(r.handleHistory)
}

// Unmount releases the history subscription.
func (r *Resolver) Unmount() {
	r.mu.Lock()
	cancel := r.cancel
	r.cancel = nil
	r.mu.Unlock()
	if cancel != nil {
		cancel()
	}
}

// Current returns the tracked path and its page.
func (r *Resolver) Current() (string, Page) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.path, clonePage(r.page)
}

func (r *Resolver) handleHistory() {
	path := currentPath(r.loc)
	page := r.table.Resolve(path)

	r.mu.Lock()
	r.path = path
	r.page = page
	hook := r.onChange
	r.mu.Unlock()

	if hook != nil {
		hook(path, clonePage(page))
	}
}

func currentPath(loc Location) string {
	if loc == nil {
		return "/"
	}
	if p := loc.Path(); p != "" {
		return p
	}
	return "/"
}
