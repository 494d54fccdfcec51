package routes

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Variant identifies which page template renders a resolved path.
type Variant string

const (
	VariantHome       Variant = "home"
	VariantCareers    Variant = "careers"
	VariantStore      Variant = "store"
	VariantStandalone Variant = "standalone"
	VariantServices   Variant = "services"
)

// DefaultCTALabel is used by standalone pages that do not set their own call to action.
const DefaultCTALabel = "Request a walkthrough"

// Section is a headed list of bullet items on a standalone page.
type Section struct {
	Heading string   `yaml:"heading"`
	Items   []string `yaml:"items"`
}

// Page is the descriptor rendered for a path.
// Title, Intro, Sections and CTALabel are only meaningful for standalone pages.
type Page struct {
	Variant  Variant   `yaml:"variant"`
	Title    string    `yaml:"title,omitempty"`
	Intro    string    `yaml:"intro,omitempty"`
	Sections []Section `yaml:"sections,omitempty"`
	CTALabel string    `yaml:"ctaLabel,omitempty"`
}

// CTA returns the call-to-action label, falling back to DefaultCTALabel.
func (p Page) CTA() string {
	if strings.TrimSpace(p.CTALabel) == "" {
		return DefaultCTALabel
	}
	return p.CTALabel
}

var (
	// ErrDuplicatePath is returned when a path is registered twice.
	ErrDuplicatePath = errors.New("routes: duplicate path")
	// ErrInvalidPath is returned for paths that do not start with "/".
	ErrInvalidPath = errors.New("routes: invalid path")
)

// HomePage is the fallback descriptor for any unknown path.
var HomePage = Page{Variant: VariantHome}

// Table maps exact paths to page descriptors. It is immutable once built.
type Table struct {
	pages map[string]Page
}

// Builder collects routes before freezing them into a Table.
type Builder struct {
	pages map[string]Page
	err   error
}

// NewBuilder returns an empty route builder.
func NewBuilder() *Builder {
	return &Builder{pages: map[string]Page{}}
}

// Add registers page under path. The first error is sticky and reported by Build.
func (b *Builder) Add(path string, page Page) *Builder {
	if b.err != nil {
		return b
	}
	if !strings.HasPrefix(path, "/") {
		b.err = fmt.Errorf("%w: %q", ErrInvalidPath, path)
		return b
	}
	if _, exists := b.pages[path]; exists {
		b.err = fmt.Errorf("%w: %q", ErrDuplicatePath, path)
		return b
	}
	if page.Variant == "" {
		page.Variant = VariantStandalone
	}
	b.pages[path] = clonePage(page)
	return b
}

// Build returns the immutable table or the first registration error.
func (b *Builder) Build() (*Table, error) {
	if b.err != nil {
		return nil, b.err
	}
	pages := make(map[string]Page, len(b.pages))
	for k, v := range b.pages {
		pages[k] = v
	}
	return &Table{pages: pages}, nil
}

// Lookup returns the page registered for path exactly as given.
func (t *Table) Lookup(path string) (Page, bool) {
	if t == nil {
		return Page{}, false
	}
	p, ok := t.pages[path]
	if !ok {
		return Page{}, false
	}
	return clonePage(p), true
}

// Resolve returns the page for path, or HomePage when the path is unknown.
// There is no trailing-slash or case normalization.
func (t *Table) Resolve(path string) Page {
	if path == "" {
		path = "/"
	}
	if p, ok := t.Lookup(path); ok {
		return p
	}
	return HomePage
}

// Paths lists every registered path in lexical order.
func (t *Table) Paths() []string {
	if t == nil {
		return nil
	}
	out := make([]string, 0, len(t.pages))
	for p := range t.pages {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Len reports the number of registered paths.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.pages)
}

func clonePage(p Page) Page {
	if len(p.Sections) == 0 {
		return p
	}
	sections := make([]Section, len(p.Sections))
	for i, s := range p.Sections {
		sections[i] = Section{Heading: s.Heading, Items: append([]string(nil), s.Items...)}
	}
	p.Sections = sections
	return p
}
