package nav

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildAnchorsOnHome(t *testing.T) {
	items := Build(Main, "/")
	if items[0].Href != "#services" {
		t.Fatalf("home should link to the local anchor, got %q", items[0].Href)
	}
	if items[3].Href != "#contact" || items[3].Label != "Request a consult" {
		t.Fatalf("unexpected CTA %+v", items[3])
	}
	if !items[4].External {
		t.Fatal("client hub should be external")
	}
}

func TestBuildServicesCTA(t *testing.T) {
	items := Build(Main, "/helix-services")
	if items[0].Href != "/#services" {
		t.Fatalf("got %q", items[0].Href)
	}
	if items[3].Href != "#contact" || items[3].Label != "Request service" {
		t.Fatalf("unexpected CTA %+v", items[3])
	}
}

func TestBuildActive(t *testing.T) {
	items := Build(Main, "/careers")
	for _, it := range items {
		if it.Active != (it.Href == "/careers") {
			t.Fatalf("item %q active=%v", it.Href, it.Active)
		}
	}
}

func TestBreadcrumbs(t *testing.T) {
	got := Breadcrumbs("/finish-carpentry-millwork", "")
	want := []Crumb{
		{Href: "/", Label: "Home"},
		{Href: "/finish-carpentry-millwork", Label: "Finish Carpentry Millwork", Active: true},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("breadcrumbs mismatch (-want +got):\n%s", diff)
	}

	got = Breadcrumbs("/terms", "Terms of Service")
	if got[1].Label != "Terms of Service" {
		t.Fatalf("title should win, got %q", got[1].Label)
	}

	if home := Breadcrumbs("", ""); len(home) != 1 || !home[0].Active {
		t.Fatalf("home breadcrumbs = %+v", home)
	}
}
