package seo

import "strings"

type OpenGraph struct {
	Title       string
	Description string
	Image       string
	Type        string
	SiteName    string
}

type Twitter struct {
	Card  string
	Image string
}

type Meta struct {
	Title       string
	Description string
	Canonical   string
	Robots      string
	OG          OpenGraph
	Twitter     Twitter
}

// NewMeta builds page metadata with the canonical URL rooted at baseURL.
func NewMeta(baseURL, path, title, description, image string) Meta {
	canonical := strings.TrimRight(baseURL, "/") + path
	if image != "" && strings.HasPrefix(image, "/") {
		image = strings.TrimRight(baseURL, "/") + image
	}
	return Meta{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		OG: OpenGraph{
			Title:       title,
			Description: description,
			Image:       image,
			Type:        "website",
			SiteName:    "Helix Craftworks",
		},
		Twitter: Twitter{Card: "summary_large_image", Image: image},
	}
}
