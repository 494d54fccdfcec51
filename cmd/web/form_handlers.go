package main

import (
	"errors"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"helixcraftworks.com/helix-web/internal/forms"
	"helixcraftworks.com/helix-web/internal/handlers"
	mw "helixcraftworks.com/helix-web/internal/middleware"
)

// SubmitHandler is the same-origin form endpoint. form-name selects the form;
// each request mounts a fresh controller that relays to the form backend.
func (a *app) SubmitHandler(w http.ResponseWriter, r *http.Request) {
	log := mw.Log(r.Context())
	if err := r.ParseMultipartForm(a.cfg.MaxUpload); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		log.Warn("parse form", zap.Error(err))
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			mw.WriteError(w, r, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		mw.WriteError(w, r, http.StatusBadRequest, "could not read form")
		return
	}

	origin := mw.OriginPath(r, "/")
	name := r.PostFormValue("form-name")
	def, err := forms.Lookup(name, origin)
	if err != nil {
		log.Warn("unknown form", zap.String("form", name))
		mw.WriteError(w, r, http.StatusBadRequest, "unknown form")
		return
	}

	inst := forms.NewInstance(def)
	var files map[string][]*multipart.FileHeader
	if r.MultipartForm != nil {
		files = r.MultipartForm.File
	}
	inst.Bind(r.PostForm, files)

	if inst.Honeypot() {
		log.Info("honeypot filled; dropping submission", zap.String("form", def.Name))
		a.respondForm(w, r, origin, forms.NewView(inst, origin, forms.StateSuccess, "", nil))
		return
	}

	ctrl := forms.NewController(inst,
		forms.WithClient(a.backend),
		forms.WithEndpoint(a.backend.Endpoint()),
		forms.WithLogger(log),
	)
	if err := ctrl.Submit(r.Context()); err != nil {
		var se *forms.StatusError
		switch {
		case errors.Is(err, forms.ErrInvalid):
			log.Info("form invalid", zap.String("form", def.Name), zap.Int("fields", len(ctrl.FieldErrors())))
		case errors.As(err, &se):
			// logged by the controller
		default:
			log.Warn("form relay failed", zap.String("form", def.Name), zap.Error(err))
		}
	}
	a.respondForm(w, r, origin, ctrl.View(origin))
}

// respondForm swaps the form fragment for htmx. Native posts redirect after
// success and otherwise re-render the originating page with the form state.
func (a *app) respondForm(w http.ResponseWriter, r *http.Request, origin string, view forms.View) {
	if mw.IsHTMX(r.Context()) {
		renderFragment(w, r, "form", handlers.PageData{Form: &view, CSRFToken: mw.CSRFToken(r.Context())})
		return
	}
	if view.Success() {
		q := url.Values{"submitted": {view.Name}}
		http.Redirect(w, r, origin+"?"+q.Encode()+"#contact", http.StatusSeeOther)
		return
	}
	page := a.table.Resolve(origin)
	pd, err := a.pageData(r, origin, page)
	if err != nil {
		mw.WriteError(w, r, http.StatusInternalServerError, "page unavailable")
		return
	}
	pd.Form = &view
	render(w, r, pd)
}

// FormPreviewHandler re-renders a form from its current values so a changed
// select can reveal or hide a conditional block. Nothing is submitted.
func (a *app) FormPreviewHandler(w http.ResponseWriter, r *http.Request) {
	origin := mw.OriginPath(r, "/")
	def, err := forms.Lookup(chi.URLParam(r, "name"), origin)
	if err != nil {
		mw.WriteError(w, r, http.StatusNotFound, "unknown form")
		return
	}
	if !mw.IsHTMX(r.Context()) {
		http.Redirect(w, r, origin+"#contact", http.StatusSeeOther)
		return
	}
	inst := forms.NewInstance(def)
	inst.Bind(r.URL.Query(), nil)
	renderFragment(w, r, "form", handlers.PageData{Form: ptr(forms.NewView(inst, origin, forms.StateIdle, "", nil)), CSRFToken: mw.CSRFToken(r.Context())})
}

func ptr[T any](v T) *T { return &v }
