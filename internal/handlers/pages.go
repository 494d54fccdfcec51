package handlers

import (
	"html/template"
	"time"

	"helixcraftworks.com/helix-web/internal/content"
	"helixcraftworks.com/helix-web/internal/forms"
	"helixcraftworks.com/helix-web/internal/nav"
	"helixcraftworks.com/helix-web/internal/routes"
	"helixcraftworks.com/helix-web/internal/seo"
	"helixcraftworks.com/helix-web/internal/storefront"
)

// Site carries the request-independent inputs every page needs.
type Site struct {
	BaseURL      string
	Analytics    Analytics
	Store        storefront.Widget
	AssetVersion string
}

// PageData is the view model for every page using the shared layout.
type PageData struct {
	Title     string
	Lang      string
	SEO       seo.Meta
	JSONLD    []template.JS
	Analytics Analytics

	Path         string
	Variant      routes.Variant
	Nav          []nav.RenderedItem
	FooterNav    []nav.RenderedItem
	Legal        []nav.RenderedItem
	Breadcrumbs  []nav.Crumb
	Year         int
	CSRFToken    string
	AssetVersion string
	Scripts      []storefront.Script
	InitJS       template.JS

	Brand     Brand
	Page      routes.Page
	Home      *HomeView
	Services  *ServicesView
	Careers   *CareersView
	Store     *StoreView
	Snapshot  SnapshotView
	Form      *forms.View
	Submitted bool
}

// Brand holds the constants shared by header and footer.
type Brand struct {
	Name         string
	Mark         string
	Tagline      string
	ContactEmail string
	StoreURL     string
	StoreName    string
	ServicesMark string
	ServiceArea  string
}

var brand = Brand{
	Name:         content.Brand,
	Mark:         content.BrandMark,
	Tagline:      content.Tagline,
	ContactEmail: content.ContactEmail,
	StoreURL:     content.StoreURL,
	StoreName:    content.StoreName,
	ServicesMark: content.ServicesBrandM,
	ServiceArea:  content.ServiceArea,
}

// BuildPage assembles the layout fields for a resolved path. Callers attach
// the form view when the page carries one.
func BuildPage(site Site, path string, page routes.Page, csrfToken string, now time.Time) (PageData, error) {
	pd := PageData{
		Lang:         "en",
		Analytics:    site.Analytics,
		Path:         path,
		Variant:      page.Variant,
		Nav:          nav.Build(nav.Main, path),
		FooterNav:    nav.Build(nav.Footer, path),
		Legal:        nav.Build(nav.Legal, path),
		Year:         now.Year(),
		CSRFToken:    csrfToken,
		AssetVersion: site.AssetVersion,
		Brand:        brand,
		Page:         page,
	}

	business := seo.Script(seo.HomeAndConstructionBusiness(seo.Business{
		Name:        content.Brand,
		URL:         site.BaseURL,
		Logo:        site.BaseURL + "/assets/img/helix-mark.svg",
		Email:       content.ContactEmail,
		Description: content.Tagline,
		AreaServed:  "Pennsylvania",
	}))

	switch page.Variant {
	case routes.VariantCareers:
		pd.Title = "Careers | " + content.Brand
		pd.SEO = seo.NewMeta(site.BaseURL, path, pd.Title, "Roles from entry-level to lead, focused on finish-forward renovations.", "")
		pd.Careers = BuildCareers()
		for _, p := range content.Positions {
			pd.JSONLD = append(pd.JSONLD, seo.Script(seo.JobPosting(p.Title, p.Summary, "", content.Brand, site.BaseURL, "PA")))
		}
	case routes.VariantStore:
		pd.Title = content.StoreName + " | " + content.Brand
		pd.SEO = seo.NewMeta(site.BaseURL, path, pd.Title, "Apparel and small-batch goods from "+content.BrandMark+".", "")
		pd.Store = &StoreView{
			StoreMount:      site.Store.StoreMount(),
			CategoriesMount: site.Store.CategoriesMount(),
		}
		var scripts storefront.Scripts
		scripts.Add(site.Store.Script())
		pd.Scripts = scripts.List()
		js, err := site.Store.InitJS()
		if err != nil {
			return PageData{}, err
		}
		pd.InitJS = js
	case routes.VariantServices:
		pd.Title = content.ServicesBrand + " | Preventive maintenance and repairs"
		pd.SEO = seo.NewMeta(site.BaseURL, path, pd.Title, "Preventive maintenance plans and service visits, delivered by Helix.", "")
		pd.Services = BuildServices()
		pd.JSONLD = append(pd.JSONLD, business)
	case routes.VariantStandalone:
		pd.Title = page.Title + " | " + content.Brand
		pd.SEO = seo.NewMeta(site.BaseURL, path, pd.Title, page.Intro, "")
		pd.Breadcrumbs = nav.Breadcrumbs(path, page.Title)
		items := make([]seo.BreadcrumbItem, 0, len(pd.Breadcrumbs))
		for _, c := range pd.Breadcrumbs {
			items = append(items, seo.BreadcrumbItem{Name: c.Label, Item: site.BaseURL + c.Href})
		}
		pd.JSONLD = append(pd.JSONLD, seo.Script(seo.BreadcrumbList(items)))
	default:
		pd.Title = content.Brand + " | Custom renovations"
		pd.SEO = seo.NewMeta(site.BaseURL, "/", pd.Title, content.Tagline, "")
		pd.Home = BuildHome()
		pd.Snapshot = BuildSnapshot(0)
		faqs := make([]seo.QA, 0, len(content.FAQs))
		for _, f := range content.FAQs {
			faqs = append(faqs, seo.QA{Question: f.Q, Answer: f.A})
		}
		pd.JSONLD = append(pd.JSONLD, business, seo.Script(seo.WebSite(content.Brand, site.BaseURL)), seo.Script(seo.FAQPage(faqs)))
	}
	return pd, nil
}
