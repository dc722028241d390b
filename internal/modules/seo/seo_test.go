package seo

import (
	"strings"
	"testing"

	"rentbus/internal/types"
)

func newTestService() *Service {
	return NewService("https://rentbus.brussels/")
}

func TestMetaKnownPages(t *testing.T) {
	svc := newTestService()
	for _, page := range pageOrder {
		for _, lang := range []types.Language{types.LangEN, types.LangFR} {
			meta, err := svc.Meta(page, lang)
			if err != nil {
				t.Fatalf("meta(%s, %s): %v", page, lang, err)
			}
			if meta.Title == "" || meta.Description == "" || meta.Keywords == "" {
				t.Errorf("meta(%s, %s): incomplete copy %+v", page, lang, meta)
			}
			if !strings.HasPrefix(meta.Canonical, "https://rentbus.brussels/") {
				t.Errorf("meta(%s, %s): canonical %q lacks base URL", page, lang, meta.Canonical)
			}
			if len(meta.Alternates) != 3 {
				t.Errorf("meta(%s, %s): expected en/fr/x-default alternates, got %d", page, lang, len(meta.Alternates))
			}
			if meta.JSONLD["@context"] != "https://schema.org" {
				t.Errorf("meta(%s, %s): missing schema context", page, lang)
			}
		}
	}
}

func TestMetaUnknownPage(t *testing.T) {
	if _, err := newTestService().Meta("checkout", types.LangEN); err != ErrUnknownPage {
		t.Fatalf("expected ErrUnknownPage, got %v", err)
	}
}

func TestMetaLocalized(t *testing.T) {
	svc := newTestService()
	en, err := svc.Meta("home", types.LangEN)
	if err != nil {
		t.Fatal(err)
	}
	fr, err := svc.Meta("home", types.LangFR)
	if err != nil {
		t.Fatal(err)
	}
	if en.Title == fr.Title {
		t.Fatal("home title not translated")
	}
	if en.OGLocale != "en_US" || fr.OGLocale != "fr_FR" {
		t.Fatalf("locales = %s / %s", en.OGLocale, fr.OGLocale)
	}
}

func TestHomeCarriesLocalBusiness(t *testing.T) {
	meta, err := newTestService().Meta("home", types.LangEN)
	if err != nil {
		t.Fatal(err)
	}
	if meta.JSONLD["@type"] != "LocalBusiness" {
		t.Fatalf("home json-ld type = %v", meta.JSONLD["@type"])
	}
	if meta.JSONLD["name"] != "RentBus Brussels" {
		t.Fatalf("business name = %v", meta.JSONLD["name"])
	}
	if meta.JSONLD["foundingDate"] != "2011" {
		t.Fatalf("founding date = %v", meta.JSONLD["foundingDate"])
	}
}

func TestFleetCarriesVehicleRental(t *testing.T) {
	meta, err := newTestService().Meta("fleet", types.LangFR)
	if err != nil {
		t.Fatal(err)
	}
	if meta.JSONLD["@type"] != "VehicleRental" {
		t.Fatalf("fleet json-ld type = %v", meta.JSONLD["@type"])
	}
}

func TestSitemap(t *testing.T) {
	body, err := newTestService().Sitemap()
	if err != nil {
		t.Fatalf("sitemap: %v", err)
	}
	out := string(body)
	if !strings.Contains(out, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Fatal("missing xml header")
	}
	for _, loc := range []string{
		"https://rentbus.brussels/",
		"https://rentbus.brussels/services",
		"https://rentbus.brussels/pricing",
		"https://rentbus.brussels/trip-planner",
	} {
		if !strings.Contains(out, "<loc>"+loc+"</loc>") {
			t.Errorf("sitemap missing %s", loc)
		}
	}
	if !strings.Contains(out, `hreflang="x-default"`) {
		t.Error("sitemap missing x-default alternates")
	}
}

func TestRobots(t *testing.T) {
	out := string(newTestService().Robots())
	if !strings.Contains(out, "User-agent: *") {
		t.Fatal("missing user-agent line")
	}
	if !strings.Contains(out, "Sitemap: https://rentbus.brussels/sitemap.xml") {
		t.Fatalf("missing sitemap line, got:\n%s", out)
	}
}
