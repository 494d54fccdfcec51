package routes

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func testStandalone() map[string]Page {
	return map[string]Page{
		"/terms": {
			Title: "Terms & Conditions",
			Intro: "How we engage.",
			Sections: []Section{
				{Heading: "Use of this site", Items: []string{"Content is informational"}},
			},
		},
		"/renovations": {
			Title:    "Renovations & Remodels",
			Intro:    "Full-scope residential renovations.",
			CTALabel: "Plan a renovation",
		},
	}
}

func TestSiteResolvesKnownPaths(t *testing.T) {
	t.Parallel()

	table, err := Site(testStandalone())
	require.NoError(t, err)

	cases := map[string]Variant{
		"/":               VariantHome,
		"/careers":        VariantCareers,
		"/store":          VariantStore,
		"/helix-services": VariantServices,
		"/terms":          VariantStandalone,
		"/renovations":    VariantStandalone,
	}
	for path, want := range cases {
		require.Equal(t, want, table.Resolve(path).Variant, "path %s", path)
	}

	terms := table.Resolve("/terms")
	want := Page{
		Variant: VariantStandalone,
		Title:   "Terms & Conditions",
		Intro:   "How we engage.",
		Sections: []Section{
			{Heading: "Use of this site", Items: []string{"Content is informational"}},
		},
	}
	if diff := cmp.Diff(want, terms); diff != "" {
		t.Fatalf("terms page mismatch (-want +got):\n%s", diff)
	}
}

func TestResolveFallsBackToHome(t *testing.T) {
	t.Parallel()

	table, err := Site(testStandalone())
	require.NoError(t, err)

	for _, path := range []string{"/this-does-not-exist", "/careers/", "/Careers", "/terms/extra", ""} {
		require.Equal(t, HomePage, table.Resolve(path), "path %q", path)
	}
}

func TestBuilderRejectsDuplicatesAndInvalidPaths(t *testing.T) {
	t.Parallel()

	_, err := NewBuilder().
		Add("/terms", Page{Title: "A"}).
		Add("/terms", Page{Title: "B"}).
		Build()
	require.True(t, errors.Is(err, ErrDuplicatePath), "got %v", err)

	_, err = NewBuilder().Add("terms", Page{}).Build()
	require.True(t, errors.Is(err, ErrInvalidPath), "got %v", err)

	_, err = Site(map[string]Page{"/careers": {Title: "clash"}})
	require.True(t, errors.Is(err, ErrDuplicatePath), "got %v", err)
}

func TestTableIsImmutable(t *testing.T) {
	t.Parallel()

	pages := testStandalone()
	table, err := Site(pages)
	require.NoError(t, err)

	got := table.Resolve("/terms")
	got.Sections[0].Items[0] = "mutated"
	pages["/terms"].Sections[0].Items[0] = "mutated too"

	again := table.Resolve("/terms")
	require.Equal(t, "Content is informational", again.Sections[0].Items[0])
}

func TestPageCTAFallsBack(t *testing.T) {
	t.Parallel()

	table, err := Site(testStandalone())
	require.NoError(t, err)
	require.Equal(t, DefaultCTALabel, table.Resolve("/terms").CTA())
	require.Equal(t, "Plan a renovation", table.Resolve("/renovations").CTA())
}

func TestPathsSorted(t *testing.T) {
	t.Parallel()

	table, err := Site(testStandalone())
	require.NoError(t, err)
	want := []string{"/", "/careers", "/helix-services", "/renovations", "/store", "/terms"}
	if diff := cmp.Diff(want, table.Paths()); diff != "" {
		t.Fatalf("paths mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, len(want), table.Len())
}
