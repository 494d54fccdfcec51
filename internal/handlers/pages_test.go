package handlers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"helixcraftworks.com/helix-web/internal/routes"
	"helixcraftworks.com/helix-web/internal/storefront"
)

var testSite = Site{BaseURL: "https://helixcraftworks.com", Store: storefront.New("")}

func TestBuildSnapshotWraps(t *testing.T) {
	first := BuildSnapshot(0)
	require.Equal(t, 0, first.Index)
	require.Equal(t, first.Total-1, first.Prev)
	require.Equal(t, 1, first.Next)
	require.Equal(t, "Schedule & Scope Control", first.Title)

	last := BuildSnapshot(-1)
	require.Equal(t, first.Total-1, last.Index)
	require.Equal(t, 0, last.Next)
	require.Equal(t, first.Total, last.Position())

	require.Equal(t, 2, BuildSnapshot(first.Total+2).Index)
}

func TestBuildPageHome(t *testing.T) {
	pd, err := BuildPage(testSite, "/", routes.HomePage, "tok", time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	require.NotNil(t, pd.Home)
	require.Nil(t, pd.Store)
	require.Equal(t, 2026, pd.Year)
	require.Equal(t, "tok", pd.CSRFToken)
	require.Len(t, pd.JSONLD, 3)
	require.Contains(t, string(pd.JSONLD[2]), "FAQPage")
	require.Equal(t, "https://helixcraftworks.com/", pd.SEO.Canonical)
}

func TestBuildPageStoreHasOneScript(t *testing.T) {
	pd, err := BuildPage(testSite, "/store", routes.Page{Variant: routes.VariantStore}, "", time.Now())
	require.NoError(t, err)
	require.Len(t, pd.Scripts, 1)
	require.Equal(t, storefront.ScriptID, pd.Scripts[0].ID)
	require.Equal(t, "my-store-116136023", pd.Store.StoreMount)
	require.True(t, strings.Contains(string(pd.InitJS), "xProductBrowser"))
}

func TestBuildPageStandaloneBreadcrumbs(t *testing.T) {
	page := routes.Page{Variant: routes.VariantStandalone, Title: "Terms of Service", Intro: "The rules."}
	pd, err := BuildPage(testSite, "/terms", page, "", time.Now())
	require.NoError(t, err)
	require.Equal(t, "Terms of Service | Helix Craftworks", pd.Title)
	require.Len(t, pd.Breadcrumbs, 2)
	require.Contains(t, string(pd.JSONLD[0]), `"item":"https://helixcraftworks.com/terms"`)
	require.Equal(t, "The rules.", pd.SEO.Description)
}

func TestBuildPageCareersPostings(t *testing.T) {
	pd, err := BuildPage(testSite, "/careers", routes.Page{Variant: routes.VariantCareers}, "", time.Now())
	require.NoError(t, err)
	require.NotNil(t, pd.Careers)
	require.Len(t, pd.JSONLD, len(pd.Careers.Positions))
	require.Equal(t, "careers@helixcraftworks.com", pd.Careers.Email)
}
