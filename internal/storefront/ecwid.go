package storefront

import (
	"encoding/json"
	"fmt"
	"html/template"
	"net/url"
	"strings"
)

const (
	// DefaultStoreID is the Loom & Lathe Ecwid store.
	DefaultStoreID = "116136023"
	// ScriptID is the element id of the Ecwid loader script.
	ScriptID = "ecwid-script"

	scriptBase = "https://app.ecwid.com/script.js"
	dataDate   = "2025-12-17"
)

// Widget configures the embedded Ecwid catalog.
type Widget struct {
	StoreID string
}

// New returns the widget for storeID, falling back to DefaultStoreID.
func New(storeID string) Widget {
	storeID = strings.TrimSpace(storeID)
	if storeID == "" {
		storeID = DefaultStoreID
	}
	return Widget{StoreID: storeID}
}

// StoreMount is the id of the element the product browser renders into.
func (w Widget) StoreMount() string { return "my-store-" + w.StoreID }

// CategoriesMount is the id of the element the category list renders into.
func (w Widget) CategoriesMount() string { return "my-categories-" + w.StoreID }

// ScriptURL is the loader script source. The store id is the bare query key.
func (w Widget) ScriptURL() string {
	return fmt.Sprintf("%s?%s&data_platform=code&data_date=%s", scriptBase, url.QueryEscape(w.StoreID), dataDate)
}

// BrowserArgs are the xProductBrowser arguments in call order.
func (w Widget) BrowserArgs() []string {
	return []string{
		"categoriesPerRow=3",
		"views=grid(20,3) list(60) table(60)",
		"categoryView=grid",
		"searchView=list",
		"id=" + w.StoreMount(),
	}
}

// CategoriesArgs are the xCategoriesV2 arguments.
func (w Widget) CategoriesArgs() []string {
	return []string{"id=" + w.CategoriesMount()}
}

// Script returns the loader script descriptor.
func (w Widget) Script() Script {
	return Script{ID: ScriptID, Src: w.ScriptURL(), Async: true, Defer: true, NoRocket: true}
}

const initTemplate = `(function () {
  var init = function () {
    if (window.xProductBrowser) { window.xProductBrowser.apply(window, %s); }
    if (window.xCategoriesV2) { window.xCategoriesV2.apply(window, %s); }
    if (window.Ecwid && window.Ecwid.init) { window.Ecwid.init(); }
  };
  var s = document.getElementById(%s);
  if (!s) { return; }
  if (s.dataset.loaded === "true") { init(); return; }
  s.addEventListener("load", function () { s.dataset.loaded = "true"; init(); }, { once: true });
})();`

// InitJS is the inline snippet that initializes the widget once the loader
// script has loaded, or immediately when it already has.
func (w Widget) InitJS() (template.JS, error) {
	browser, err := json.Marshal(w.BrowserArgs())
	if err != nil {
		return "", err
	}
	categories, err := json.Marshal(w.CategoriesArgs())
	if err != nil {
		return "", err
	}
	id, err := json.Marshal(ScriptID)
	if err != nil {
		return "", err
	}
	return template.JS(fmt.Sprintf(initTemplate, browser, categories, id)), nil
}
