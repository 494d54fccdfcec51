package nav

import (
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"helixcraftworks.com/helix-web/internal/content"
	"helixcraftworks.com/helix-web/internal/routes"
)

// Item represents a top-level navigation item.
type Item struct {
	Path     string // e.g. "/careers" or "/#services"
	Label    string
	CTA      bool
	External bool
}

// RenderedItem is a view model for templates.
type RenderedItem struct {
	Href     string
	Label    string
	Active   bool
	CTA      bool
	External bool
}

// Crumb represents a breadcrumb entry.
type Crumb struct {
	Href   string
	Label  string
	Active bool
}

// Main is the primary navigation definition.
var Main = []Item{
	{Path: "/#services", Label: "Services"},
	{Path: "/#process", Label: "Process"},
	{Path: routes.PathCareers, Label: "Careers"},
	{Path: "/#contact", Label: "Request a consult", CTA: true},
	{Path: content.ClientHubURL, Label: "Client Hub", External: true},
}

// Footer links shown under the brand mark.
var Footer = []Item{
	{Path: "/#services", Label: "Services"},
	{Path: routes.PathHelixServices, Label: content.ServicesBrand},
	{Path: "/#process", Label: "Process"},
	{Path: routes.PathCareers, Label: "Careers"},
	{Path: "/#contact", Label: "Request a consult"},
}

// Legal links shown beside the copyright.
var Legal = []Item{
	{Path: "/terms", Label: "Terms"},
	{Path: "/privacy", Label: "Privacy"},
}

// Build renders navigation items with active state given the current path.
// Pages that carry their own contact form link the CTA to the local anchor.
func Build(items []Item, currentPath string) []RenderedItem {
	if currentPath == "" {
		currentPath = "/"
	}
	out := make([]RenderedItem, 0, len(items))
	for _, it := range items {
		href, label := it.Path, it.Label
		if it.CTA && currentPath == routes.PathHelixServices {
			href, label = "#contact", "Request service"
		} else if currentPath == "/" && strings.HasPrefix(href, "/#") {
			href = strings.TrimPrefix(href, "/")
		}
		out = append(out, RenderedItem{
			Href:     href,
			Label:    label,
			Active:   isActive(it.Path, currentPath),
			CTA:      it.CTA,
			External: it.External,
		})
	}
	return out
}

func isActive(itemPath, currentPath string) bool {
	if strings.Contains(itemPath, "#") || strings.Contains(itemPath, "://") {
		return false
	}
	if itemPath == "/" {
		return currentPath == "/"
	}
	return currentPath == itemPath || strings.HasPrefix(currentPath, itemPath+"/")
}

// Breadcrumbs builds breadcrumb entries from the current path. The last
// crumb uses title when set, otherwise a prettified segment label.
func Breadcrumbs(currentPath, title string) []Crumb {
	if currentPath == "" {
		currentPath = "/"
	}
	crumbs := []Crumb{{Href: "/", Label: "Home", Active: currentPath == "/"}}
	if currentPath == "/" {
		return crumbs
	}

	clean := path.Clean(currentPath)
	parts := strings.Split(strings.TrimPrefix(clean, "/"), "/")
	href := ""
	for i, seg := range parts {
		if seg == "" {
			continue
		}
		href += "/" + seg
		label := titleFromSegment(seg)
		last := i == len(parts)-1
		if last && strings.TrimSpace(title) != "" {
			label = strings.TrimSpace(title)
		}
		crumbs = append(crumbs, Crumb{Href: href, Label: label, Active: last})
	}
	return crumbs
}

func titleFromSegment(seg string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(seg)
	return cases.Title(language.English).String(strings.TrimSpace(s))
}
