package storefront_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"helixcraftworks.com/helix-web/internal/storefront"
)

func TestWidgetDefaults(t *testing.T) {
	t.Parallel()

	w := storefront.New("  ")
	require.Equal(t, "https://app.ecwid.com/script.js?116136023&data_platform=code&data_date=2025-12-17", w.ScriptURL())
	require.Equal(t, "my-store-116136023", w.StoreMount())
	require.Equal(t, "my-categories-116136023", w.CategoriesMount())
	require.Equal(t, []string{
		"categoriesPerRow=3",
		"views=grid(20,3) list(60) table(60)",
		"categoryView=grid",
		"searchView=list",
		"id=my-store-116136023",
	}, w.BrowserArgs())
	require.Equal(t, []string{"id=my-categories-116136023"}, w.CategoriesArgs())

	s := w.Script()
	require.Equal(t, "ecwid-script", s.ID)
	require.True(t, s.Async)
	require.True(t, s.Defer)
	require.True(t, s.NoRocket)
}

func TestInitJS(t *testing.T) {
	t.Parallel()

	js, err := storefront.New("42").InitJS()
	require.NoError(t, err)
	out := string(js)
	require.Contains(t, out, `"id=my-store-42"`)
	require.Contains(t, out, `["id=my-categories-42"]`)
	require.Contains(t, out, `getElementById("ecwid-script")`)
	require.Equal(t, 1, strings.Count(out, "Ecwid.init()"))
}

func TestScriptsDedupeByID(t *testing.T) {
	t.Parallel()

	var scripts storefront.Scripts
	w := storefront.New("")
	require.True(t, scripts.Add(w.Script()))
	require.False(t, scripts.Add(w.Script()))
	require.True(t, scripts.Add(storefront.Script{ID: "other", Src: "/assets/app.js"}))

	list := scripts.List()
	require.Len(t, list, 2)
	require.Equal(t, "ecwid-script", list[0].ID)

	var nilScripts *storefront.Scripts
	require.Nil(t, nilScripts.List())
}
