package routes

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolverReadsInitialPath(t *testing.T) {
	t.Parallel()

	table, err := Site(testStandalone())
	require.NoError(t, err)

	r := NewResolver(table, NewHistory("/careers"))
	path, page := r.Current()
	require.Equal(t, "/careers", path)
	require.Equal(t, VariantCareers, page.Variant)

	empty := NewResolver(table, LocationFromRequest(nil))
	path, page = empty.Current()
	require.Equal(t, "/", path)
	require.Equal(t, VariantHome, page.Variant)
}

func TestResolverReResolvesOnPopState(t *testing.T) {
	t.Parallel()

	table, err := Site(testStandalone())
	require.NoError(t, err)

	h := NewHistory("/")
	r := NewResolver(table, h)

	var seen []string
	r.OnChange(func(path string, _ Page) { seen = append(seen, path) })
	r.Mount()
	defer r.Unmount()

	// externally changed location with no event: nothing re-resolves yet
	h.Replace("/store")
	_, page := r.Current()
	require.Equal(t, VariantHome, page.Variant)

	h.PopState()
	path, page := r.Current()
	require.Equal(t, "/store", path)
	require.Equal(t, VariantStore, page.Variant)
	require.Equal(t, []string{"/store"}, seen)
}

func TestResolverIgnoresProgrammaticNavigation(t *testing.T) {
	t.Parallel()

	table, err := Site(testStandalone())
	require.NoError(t, err)

	h := NewHistory("/")
	r := NewResolver(table, h)
	r.Mount()
	defer r.Unmount()

	h.Push("/careers")
	_, page := r.Current()
	require.Equal(t, VariantHome, page.Variant, "push must not re-resolve")

	h.Push("/terms")
	require.True(t, h.Back())
	path, page := r.Current()
	require.Equal(t, "/careers", path)
	require.Equal(t, VariantCareers, page.Variant)

	require.True(t, h.Forward())
	_, page = r.Current()
	require.Equal(t, VariantStandalone, page.Variant)
	require.Equal(t, "Terms & Conditions", page.Title)

	require.True(t, h.Back())
	require.True(t, h.Back())
	require.False(t, h.Back())
	path, _ = r.Current()
	require.Equal(t, "/", path)
}

func TestResolverUnmountReleasesSubscription(t *testing.T) {
	t.Parallel()

	table, err := Site(testStandalone())
	require.NoError(t, err)

	h := NewHistory("/")
	r := NewResolver(table, h)
	r.Mount()
	r.Mount()
	require.Equal(t, 1, h.Subscribers())

	r.Unmount()
	r.Unmount()
	require.Equal(t, 0, h.Subscribers())

	h.Replace("/careers")
	h.PopState()
	_, page := r.Current()
	require.Equal(t, VariantHome, page.Variant)
}

func TestRequestLocationIgnoresQueryAndFragment(t *testing.T) {
	t.Parallel()

	table, err := Site(testStandalone())
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/careers?ref=nav#apply", nil)
	r := NewResolver(table, LocationFromRequest(req))
	r.Mount()
	defer r.Unmount()
	_, page := r.Current()
	require.Equal(t, VariantCareers, page.Variant)
}
