package main

import (
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"helixcraftworks.com/helix-web/internal/forms"
	"helixcraftworks.com/helix-web/internal/handlers"
	mw "helixcraftworks.com/helix-web/internal/middleware"
	"helixcraftworks.com/helix-web/internal/routes"
)

// PageHandler resolves the request path and renders the matching page.
// Unknown paths render home with 200.
func (a *app) PageHandler(w http.ResponseWriter, r *http.Request) {
	res := routes.NewResolver(a.table, routes.LocationFromRequest(r))
	path, page := res.Current()

	pd, err := a.pageData(r, path, page)
	if err != nil {
		mw.Log(r.Context()).Error("build page", zap.String("path", path), zap.Error(err))
		mw.WriteError(w, r, http.StatusInternalServerError, "page unavailable")
		return
	}
	if page.Variant == routes.VariantHome {
		if i, err := strconv.Atoi(r.URL.Query().Get("snapshot")); err == nil {
			pd.Snapshot = handlers.BuildSnapshot(i)
		}
	}
	if pd.Form != nil && r.URL.Query().Get("submitted") == pd.Form.Name {
		inst := forms.NewInstance(forms.ForPage(page.Variant, path))
		v := forms.NewView(inst, path, forms.StateSuccess, "", nil)
		pd.Form = &v
		pd.Submitted = true
	}
	render(w, r, pd)
}

// pageData builds the layout view model with an idle form for pages that carry one.
func (a *app) pageData(r *http.Request, path string, page routes.Page) (handlers.PageData, error) {
	pd, err := handlers.BuildPage(a.site, path, page, mw.CSRFToken(r.Context()), time.Now())
	if err != nil {
		return handlers.PageData{}, err
	}
	if def := forms.ForPage(page.Variant, path); def != nil {
		v := forms.NewView(forms.NewInstance(def), path, forms.StateIdle, "", nil)
		pd.Form = &v
	}
	return pd, nil
}

// SnapshotHandler swaps the delivery carousel slide. Without htmx it
// redirects to the home page showing that slide.
func (a *app) SnapshotHandler(w http.ResponseWriter, r *http.Request) {
	i, _ := strconv.Atoi(r.URL.Query().Get("i"))
	view := handlers.BuildSnapshot(i)
	if !mw.IsHTMX(r.Context()) {
		q := url.Values{"snapshot": {strconv.Itoa(view.Index)}}
		http.Redirect(w, r, "/?"+q.Encode()+"#delivery", http.StatusSeeOther)
		return
	}
	renderFragment(w, r, "snapshot", handlers.PageData{Snapshot: view})
}
