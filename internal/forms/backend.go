package forms

import (
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultTimeout bounds one relay to the form backend.
const DefaultTimeout = 8 * time.Second

// Doer sends an HTTP request. *http.Client satisfies it.
type Doer interface {
	Do(*http.Request) (*http.Response, error)
}

// Backend relays submissions to the form-handling service. When no endpoint
// is configured it answers like the hosted handler does, with a 303.
type Backend struct {
	endpoint string
	http     *http.Client
	log      *zap.Logger
}

// NewBackend constructs a relay. A zero timeout uses DefaultTimeout.
func NewBackend(endpoint string, timeout time.Duration, log *zap.Logger) *Backend {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Backend{
		endpoint: strings.TrimSpace(endpoint),
		http: &http.Client{
			Timeout: timeout,
			// Redirects are the success signal; report them instead of following.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
		log: log,
	}
}

// Endpoint returns the configured backend URL, or "/" for the fake.
func (b *Backend) Endpoint() string {
	if b == nil || b.endpoint == "" {
		return "/"
	}
	return b.endpoint
}

// Fake reports whether submissions are answered locally.
func (b *Backend) Fake() bool { return b == nil || b.endpoint == "" }

// Do sends req, or answers it locally when no endpoint is configured.
func (b *Backend) Do(req *http.Request) (*http.Response, error) {
	if b.Fake() {
		return b.fakeResponse(req), nil
	}
	return b.http.Do(req)
}

func (b *Backend) fakeResponse(req *http.Request) *http.Response {
	var n int64
	if req.Body != nil {
		n, _ = io.Copy(io.Discard, req.Body)
		_ = req.Body.Close()
	}
	if b != nil {
		b.log.Info("form backend not configured; accepting submission",
			zap.String("content_type", req.Header.Get("Content-Type")),
			zap.Int64("bytes", n),
		)
	}
	return &http.Response{
		Status:     "303 See Other",
		StatusCode: http.StatusSeeOther,
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     http.Header{"Location": []string{"/"}},
		Body:       io.NopCloser(strings.NewReader("")),
		Request:    req,
	}
}

func drainError(r io.Reader) string {
	if r == nil {
		return ""
	}
	b, _ := io.ReadAll(io.LimitReader(r, 256))
	return strings.TrimSpace(string(b))
}
