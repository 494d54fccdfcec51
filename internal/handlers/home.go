package handlers

import (
	"helixcraftworks.com/helix-web/internal/carousel"
	"helixcraftworks.com/helix-web/internal/content"
)

// HomeView is the content of the brochure home page.
type HomeView struct {
	Highlights      []string
	Services        []content.Card
	SpecialtyWork   []content.Block
	Steps           []content.Step
	FAQs            []content.FAQ
	ContactPromises []string
	BrandSplit      []string
}

// BuildHome constructs the view model for the landing page.
func BuildHome() *HomeView {
	return &HomeView{
		Highlights:      content.Highlights,
		Services:        content.Services,
		SpecialtyWork:   content.SpecialtyWork,
		Steps:           content.Steps,
		FAQs:            content.FAQs,
		ContactPromises: content.ContactPromises,
		BrandSplit:      content.BrandSplit,
	}
}

// ServicesView is the content of the Helix Services page.
type ServicesView struct {
	Pillars  []content.Card
	Systems  []content.Block
	Approach []content.Card
	Programs []content.Block
	Rhythm   []content.Block
	FAQs     []content.FAQ
}

// BuildServices constructs the Helix Services view model.
func BuildServices() *ServicesView {
	return &ServicesView{
		Pillars:  content.ServicePillars,
		Systems:  content.ServiceSystems,
		Approach: content.ServiceApproach,
		Programs: content.ServicePrograms,
		Rhythm:   content.ServiceRhythm,
		FAQs:     content.FAQs,
	}
}

// CareersView is the content of the careers page.
type CareersView struct {
	Fit       []string
	Values    []content.Block
	Positions []content.Position
	Promises  []string
	Email     string
}

// BuildCareers constructs the careers view model.
func BuildCareers() *CareersView {
	return &CareersView{
		Fit:       content.CareerFit,
		Values:    content.CareerValues,
		Positions: content.Positions,
		Promises:  content.ApplyPromises,
		Email:     content.CareersEmail,
	}
}

// StoreView carries the storefront mount points.
type StoreView struct {
	StoreMount      string
	CategoriesMount string
}

// SnapshotView is one slide of the delivery carousel with its neighbours.
type SnapshotView struct {
	content.Snapshot
	Index int
	Prev  int
	Next  int
	Total int
}

// Position is the 1-based slide number shown to visitors.
func (s SnapshotView) Position() int { return s.Index + 1 }

// BuildSnapshot returns slide i, wrapping out-of-range indexes.
func BuildSnapshot(i int) SnapshotView {
	rot := carousel.New(len(content.Snapshots))
	idx := rot.Seek(i)
	prev, next := rot.Neighbors(idx)
	var snap content.Snapshot
	if rot.Len() > 0 {
		snap = content.Snapshots[idx]
	}
	return SnapshotView{Snapshot: snap, Index: idx, Prev: prev, Next: next, Total: rot.Len()}
}
