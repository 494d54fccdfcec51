package middleware

import (
	"net/http"
	"net/url"
)

// HTMX marks requests coming from htmx so handlers/middlewares can adapt responses
func HTMX(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		is := r.Header.Get("HX-Request") == "true"
		ctx := WithHTMX(r.Context(), is)
		if is {
			w.Header().Add("Vary", "HX-Request")
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OriginPath returns the path of the page a request was made from: htmx's
// HX-Current-URL, then the Referer, then fallback. Cross-origin values are ignored.
func OriginPath(r *http.Request, fallback string) string {
	for _, raw := range []string{r.Header.Get("HX-Current-URL"), r.Referer()} {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil {
			continue
		}
		if u.Host != "" && u.Host != r.Host {
			continue
		}
		if u.Path != "" {
			return u.Path
		}
	}
	return fallback
}
