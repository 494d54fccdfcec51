package seo

import (
	"encoding/json"
	"html/template"
)

// JSON marshals v to a compact JSON string. It returns an empty string on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}

// Script marshals v for embedding in a <script type="application/ld+json"> tag.
func Script(v any) template.JS {
	return template.JS(JSON(v))
}

// Business describes the contractor for LocalBusiness markup.
type Business struct {
	Name        string
	URL         string
	Logo        string
	Email       string
	Description string
	AreaServed  string
	SameAs      []string
}

// HomeAndConstructionBusiness returns the schema.org business entity.
func HomeAndConstructionBusiness(b Business) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "HomeAndConstructionBusiness",
		"name":     b.Name,
	}
	if b.URL != "" {
		m["url"] = b.URL
	}
	if b.Logo != "" {
		m["logo"] = b.Logo
	}
	if b.Email != "" {
		m["email"] = b.Email
	}
	if b.Description != "" {
		m["description"] = b.Description
	}
	if b.AreaServed != "" {
		m["areaServed"] = map[string]any{"@type": "State", "name": b.AreaServed}
	}
	if len(b.SameAs) > 0 {
		m["sameAs"] = b.SameAs
	}
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        "https://schema.org",
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// QA is a question and its answer.
type QA struct {
	Question string
	Answer   string
}

// FAQPage builds schema.org FAQPage.
func FAQPage(items []QA) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for _, it := range items {
		el = append(el, map[string]any{
			"@type": "Question",
			"name":  it.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  it.Answer,
			},
		})
	}
	return map[string]any{
		"@context":   "https://schema.org",
		"@type":      "FAQPage",
		"mainEntity": el,
	}
}

// JobPosting builds schema.org JobPosting for an open role.
func JobPosting(title, description, datePosted, orgName, orgURL, region string) map[string]any {
	m := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "JobPosting",
		"title":       title,
		"description": description,
		"hiringOrganization": map[string]any{
			"@type":  "Organization",
			"name":   orgName,
			"sameAs": orgURL,
		},
		"employmentType": []string{"FULL_TIME", "PART_TIME", "CONTRACTOR"},
	}
	if datePosted != "" {
		m["datePosted"] = datePosted
	}
	if region != "" {
		m["jobLocation"] = map[string]any{
			"@type": "Place",
			"address": map[string]any{
				"@type":          "PostalAddress",
				"addressRegion":  region,
				"addressCountry": "US",
			},
		}
	}
	return m
}
