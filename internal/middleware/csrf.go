package middleware

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"net/http"
	"time"
)

const (
	csrfCookieName = "csrf_token"
	// CSRFField is the hidden form field native posts carry the token in.
	CSRFField = "csrf_token"
	// CSRFHeader is the header htmx requests carry the token in.
	CSRFHeader = "X-CSRF-Token"
)

// CSRF issues a token cookie and verifies unsafe requests echo it in the
// X-CSRF-Token header or the csrf_token form field (double submit cookie).
func CSRF(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := ""
			if c, err := r.Cookie(csrfCookieName); err == nil && len(c.Value) == 32 {
				token = c.Value
			}

			if !isSafeMethod(r.Method) {
				sent := r.Header.Get(CSRFHeader)
				if sent == "" {
					if err := parseBody(r); err != nil {
						var tooLarge *http.MaxBytesError
						if errors.As(err, &tooLarge) {
							writeError(w, r, http.StatusRequestEntityTooLarge, "upload too large")
							return
						}
					}
					sent = r.FormValue(CSRFField)
				}
				if token == "" || subtle.ConstantTimeCompare([]byte(sent), []byte(token)) != 1 {
					writeError(w, r, http.StatusForbidden, "invalid CSRF token")
					return
				}
			}

			if token == "" {
				token = newCSRFToken()
				http.SetCookie(w, &http.Cookie{
					Name:     csrfCookieName,
					Value:    token,
					Path:     "/",
					HttpOnly: false,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
					Expires:  time.Now().Add(24 * time.Hour),
				})
			}
			next.ServeHTTP(w, r.WithContext(withCSRFToken(r.Context(), token)))
		})
	}
}

// parseBody reads a urlencoded or multipart body, the same way FormValue would,
// but keeps the error.
func parseBody(r *http.Request) error {
	err := r.ParseMultipartForm(32 << 20)
	if errors.Is(err, http.ErrNotMultipart) {
		return nil
	}
	return err
}

func newCSRFToken() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func isSafeMethod(m string) bool {
	switch m {
	case http.MethodGet, http.MethodHead, http.MethodOptions, http.MethodTrace:
		return true
	default:
		return false
	}
}
