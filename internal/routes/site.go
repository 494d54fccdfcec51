package routes

import "sort"

// Fixed site paths.
const (
	PathHome          = "/"
	PathCareers       = "/careers"
	PathStore         = "/store"
	PathHelixServices = "/helix-services"
)

// Site builds the route table for the marketing site: the fixed pages plus every
// standalone page keyed by its path.
func Site(standalone map[string]Page) (*Table, error) {
	b := NewBuilder().
		Add(PathHome, Page{Variant: VariantHome}).
		Add(PathCareers, Page{Variant: VariantCareers}).
		Add(PathStore, Page{Variant: VariantStore}).
		Add(PathHelixServices, Page{Variant: VariantServices})

	paths := make([]string, 0, len(standalone))
	for p := range standalone {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	for _, p := range paths {
		page := standalone[p]
		page.Variant = VariantStandalone
		b.Add(p, page)
	}
	return b.Build()
}
