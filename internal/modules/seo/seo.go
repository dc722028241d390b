// README: Per-page metadata, structured data, sitemap and robots output.
package seo

import (
	"encoding/xml"
	"errors"
	"fmt"
	"strings"
	"time"

	"rentbus/internal/types"
)

var ErrUnknownPage = errors.New("unknown page")

const (
	brandName    = "RentBus Brussels"
	brandEmail   = "info@rentbus.brussels"
	brandLogoURL = "https://ik.imagekit.io/by733ltn6/FAVICONS/favicon_io%20(14)/android-chrome-512x512.png?updatedAt=1762608068655"
)

// Alternate is one hreflang link for a page.
type Alternate struct {
	HrefLang string `json:"hreflang"`
	Href     string `json:"href"`
}

// PageMeta is the full metadata block for one page in one language.
type PageMeta struct {
	Page        string         `json:"page"`
	Language    types.Language `json:"language"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Keywords    string         `json:"keywords"`
	Canonical   string         `json:"canonical"`
	Alternates  []Alternate    `json:"alternates"`
	OGTitle     string         `json:"og_title"`
	OGType      string         `json:"og_type"`
	OGURL       string         `json:"og_url"`
	OGImage     string         `json:"og_image"`
	OGLocale    string         `json:"og_locale"`
	JSONLD      map[string]any `json:"json_ld"`
}

type pageCopy struct {
	title       string
	description string
	keywords    string
}

type pageEntry struct {
	path string
	en   pageCopy
	fr   pageCopy
}

// pageOrder drives the sitemap; higher-priority pages first.
var pageOrder = []string{"home", "services", "fleet", "pricing", "testimonials", "trip-planner", "about", "contact"}

var pages = map[string]pageEntry{
	"home": {
		path: "/",
		en: pageCopy{
			title:       "Bus Rental Brussels | Luxury Coach & Minibus Hire with Driver",
			description: "Premium bus rental service in Brussels since 2011. Luxury coaches, minibuses for events, airport transfers, corporate shuttles. Professional drivers, transparent pricing. Get your free quote!",
			keywords:    "bus rental Brussels, coach hire Brussels, minibus rental Belgium, airport transfer Brussels, corporate shuttle Brussels, event transport",
		},
		fr: pageCopy{
			title:       "Location Bus Bruxelles | Autocar & Minibus de Luxe avec Chauffeur",
			description: "Service premium de location de bus à Bruxelles depuis 2011. Autocars de luxe, minibus pour événements, transferts aéroport, navettes entreprise. Chauffeurs pros, tarifs clairs!",
			keywords:    "location bus Bruxelles, location autocar Belgique, minibus avec chauffeur, transfert aéroport Bruxelles, navette entreprise",
		},
	},
	"services": {
		path: "/services",
		en: pageCopy{
			title:       "Our Services | Bus Rental Brussels - Airport Transfers, Tours, Events",
			description: "Comprehensive bus rental services in Brussels: airport transfers, corporate events, city tours, school trips, wedding transport. Modern fleet, professional drivers. Book now!",
			keywords:    "Brussels airport transfer, corporate bus rental, city tours Brussels, wedding transport, school bus hire, event shuttle service",
		},
		fr: pageCopy{
			title:       "Nos Services | Location Bus Bruxelles - Transferts, Tours, Événements",
			description: "Services complets de location de bus à Bruxelles: transferts aéroport, événements entreprise, visites guidées, sorties scolaires, transport mariage. Flotte moderne!",
			keywords:    "transfert aéroport Bruxelles, location bus entreprise, tours Bruxelles, transport mariage, bus scolaire, navette événement",
		},
	},
	"fleet": {
		path: "/fleet",
		en: pageCopy{
			title:       "Our Fleet | Luxury Buses & Coaches - 9 to 60 Passengers | RentBus Brussels",
			description: "Explore our modern fleet: luxury minibuses (9-16 seats), midi coaches (17-35), full-size coaches (36-60), VIP executive buses. All vehicles with AC, Wi-Fi, premium comfort. View specs!",
			keywords:    "luxury bus fleet Brussels, minibus rental, coach hire, VIP bus rental, 16 seater bus, 50 seater coach, air conditioned buses",
		},
		fr: pageCopy{
			title:       "Notre Flotte | Bus & Autocars de Luxe - 9 à 60 Passagers | RentBus Brussels",
			description: "Découvrez notre flotte moderne: minibus luxe (9-16 places), autocars moyens (17-35), grands autocars (36-60), bus VIP exécutif. Tous avec climatisation, Wi-Fi, confort premium!",
			keywords:    "flotte bus Bruxelles, location minibus, location autocar, bus VIP, bus 16 places, autocar 50 places, bus climatisés",
		},
	},
	"pricing": {
		path: "/pricing",
		en: pageCopy{
			title:       "Prices & Instant Quote | Bus Rental Brussels",
			description: "Transparent bus rental prices in Brussels. Get an instant quote: airport transfers from €45, city tours, corporate events. No hidden fees, per-person price included.",
			keywords:    "bus rental prices Brussels, coach hire cost, instant bus quote, airport transfer price Brussels, transparent pricing",
		},
		fr: pageCopy{
			title:       "Tarifs & Devis Instantané | Location Bus Bruxelles",
			description: "Tarifs transparents de location de bus à Bruxelles. Obtenez un devis instantané: transferts aéroport dès 45€, visites guidées, événements entreprise. Sans frais cachés.",
			keywords:    "tarifs location bus Bruxelles, prix location autocar, devis bus instantané, prix transfert aéroport Bruxelles",
		},
	},
	"testimonials": {
		path: "/testimonials",
		en: pageCopy{
			title:       "Customer Reviews & Testimonials | RentBus Brussels",
			description: "Read authentic reviews from satisfied customers. 4.9-star average rating. See what people say about our bus rental service in Brussels. Verified customer testimonials.",
			keywords:    "bus rental reviews Brussels, customer testimonials, RentBus Brussels reviews, coach hire feedback, verified reviews",
		},
		fr: pageCopy{
			title:       "Avis Clients & Témoignages | RentBus Brussels",
			description: "Lisez les avis authentiques de clients satisfaits. Note moyenne de 4,9 étoiles. Découvrez ce que les gens disent de notre service de location de bus à Bruxelles.",
			keywords:    "avis location bus Bruxelles, témoignages clients, avis RentBus Brussels, retours location autocar, avis vérifiés",
		},
	},
	"trip-planner": {
		path: "/trip-planner",
		en: pageCopy{
			title:       "AI Trip Planner | Plan Your Group Journey | RentBus Brussels",
			description: "Plan your group trip from Brussels with our smart trip planner: route suggestions, vehicle recommendation, schedule and local tips tailored to your itinerary.",
			keywords:    "trip planner Brussels, group travel planning, bus route planner, coach trip Belgium, itinerary planner",
		},
		fr: pageCopy{
			title:       "Planificateur de Voyage IA | RentBus Brussels",
			description: "Planifiez votre voyage de groupe depuis Bruxelles avec notre planificateur intelligent: itinéraire, véhicule recommandé, horaires et conseils locaux adaptés.",
			keywords:    "planificateur voyage Bruxelles, voyage de groupe, itinéraire bus, excursion autocar Belgique",
		},
	},
	"about": {
		path: "/about",
		en: pageCopy{
			title:       "About Us | Professional Bus Rental Brussels Since 2011",
			description: "Learn about RentBus Brussels - your trusted bus rental partner since 2011. Licensed drivers, modern fleet, 10,000+ satisfied customers. Safety first, punctual service, transparent pricing.",
			keywords:    "bus rental company Brussels, licensed bus operators Belgium, professional coach hire, Brussels transport company",
		},
		fr: pageCopy{
			title:       "À Propos | Location Bus Professionnelle Bruxelles Depuis 2011",
			description: "Découvrez RentBus Brussels - votre partenaire de confiance depuis 2011. Chauffeurs licenciés, flotte moderne, 10 000+ clients satisfaits. Sécurité, ponctualité, transparence.",
			keywords:    "société location bus Bruxelles, opérateur bus agréé Belgique, location autocar professionnel, entreprise transport Bruxelles",
		},
	},
	"contact": {
		path: "/contact",
		en: pageCopy{
			title:       "Contact & Get Free Quote | Bus Rental Brussels",
			description: "Request a free quote for bus rental in Brussels. Contact us via form or email info@rentbus.brussels. 24-hour response time. Avenue de la Couronne, 1050 Brussels.",
			keywords:    "bus rental quote Brussels, contact RentBus Brussels, book bus Brussels, coach hire inquiry",
		},
		fr: pageCopy{
			title:       "Contact & Devis Gratuit | Location Bus Bruxelles",
			description: "Demandez un devis gratuit pour la location de bus à Bruxelles. Contactez-nous via formulaire ou email info@rentbus.brussels. Réponse sous 24h. Avenue de la Couronne, 1050 Bruxelles.",
			keywords:    "devis location bus Bruxelles, contacter RentBus Brussels, réserver bus Bruxelles, demande location autocar",
		},
	},
}

// Service renders page metadata against a configured site base URL.
type Service struct {
	baseURL string
	now     func() time.Time
}

func NewService(baseURL string) *Service {
	return &Service{
		baseURL: strings.TrimRight(baseURL, "/"),
		now:     time.Now,
	}
}

// Meta returns the metadata block for the given page and language.
func (s *Service) Meta(page string, lang types.Language) (*PageMeta, error) {
	entry, ok := pages[page]
	if !ok {
		return nil, ErrUnknownPage
	}
	text := entry.en
	locale := "en_US"
	if lang == types.LangFR {
		text = entry.fr
		locale = "fr_FR"
	}

	url := s.pageURL(entry.path)
	return &PageMeta{
		Page:        page,
		Language:    lang,
		Title:       text.title,
		Description: text.description,
		Keywords:    text.keywords,
		Canonical:   url,
		Alternates: []Alternate{
			{HrefLang: "en", Href: url},
			{HrefLang: "fr", Href: url},
			{HrefLang: "x-default", Href: url},
		},
		OGTitle:  text.title,
		OGType:   "website",
		OGURL:    url,
		OGImage:  brandLogoURL,
		OGLocale: locale,
		JSONLD:   s.structuredData(page, lang),
	}, nil
}

func (s *Service) pageURL(path string) string {
	if path == "/" {
		return s.baseURL + "/"
	}
	return s.baseURL + path
}

// structuredData builds the JSON-LD payload for the page. The home page
// carries the full LocalBusiness record; services and fleet describe the
// rental offering; everything else is a plain WebPage.
func (s *Service) structuredData(page string, lang types.Language) map[string]any {
	switch page {
	case "home":
		return s.localBusiness(lang)
	case "services", "fleet":
		return s.vehicleRental(lang)
	default:
		entry := pages[page]
		text := entry.en
		if lang == types.LangFR {
			text = entry.fr
		}
		return map[string]any{
			"@context":    "https://schema.org",
			"@type":       "WebPage",
			"name":        text.title,
			"description": text.description,
			"url":         s.pageURL(entry.path),
		}
	}
}

func (s *Service) localBusiness(lang types.Language) map[string]any {
	description := "Premium bus and coach rental service in Brussels with professional drivers since 2011"
	catalogName := "Bus Rental Services"
	if lang == types.LangFR {
		description = "Service premium de location de bus et autocars à Bruxelles avec chauffeurs professionnels depuis 2011"
		catalogName = "Services de Location de Bus"
	}
	return map[string]any{
		"@context":     "https://schema.org",
		"@type":        "LocalBusiness",
		"@id":          s.baseURL + "#business",
		"name":         brandName,
		"description":  description,
		"url":          s.baseURL,
		"email":        brandEmail,
		"logo":         brandLogoURL,
		"foundingDate": "2011",
		"priceRange":   "$$",
		"address": map[string]any{
			"@type":           "PostalAddress",
			"streetAddress":   "Avenue de la Couronne",
			"addressLocality": "Brussels",
			"addressRegion":   "Brussels-Capital",
			"postalCode":      "1050",
			"addressCountry":  "BE",
		},
		"areaServed": []map[string]any{
			{"@type": "City", "name": "Brussels"},
			{"@type": "Country", "name": "Belgium"},
		},
		"aggregateRating": map[string]any{
			"@type":       "AggregateRating",
			"ratingValue": "4.9",
			"reviewCount": "150",
			"bestRating":  "5",
			"worstRating": "1",
		},
		"hasOfferCatalog": map[string]any{
			"@type": "OfferCatalog",
			"name":  catalogName,
		},
	}
}

func (s *Service) vehicleRental(lang types.Language) map[string]any {
	description := "Professional bus and coach rental service offering luxury minibuses, midi coaches, and full-size coaches for all occasions"
	serviceType := "Bus Rental Service"
	if lang == types.LangFR {
		description = "Service professionnel de location de bus et autocars proposant minibus de luxe, autocars moyens et grands autocars pour toutes occasions"
		serviceType = "Service de Location de Bus"
	}
	return map[string]any{
		"@context":    "https://schema.org",
		"@type":       "VehicleRental",
		"@id":         s.baseURL + "#rental",
		"name":        brandName + " - Bus & Coach Rental",
		"description": description,
		"serviceType": serviceType,
		"provider":    map[string]any{"@id": s.baseURL + "#business"},
		"areaServed": []map[string]any{
			{"@type": "City", "name": "Brussels"},
			{"@type": "Country", "name": "Belgium"},
		},
	}
}

type sitemapLink struct {
	XMLName  xml.Name `xml:"xhtml:link"`
	Rel      string   `xml:"rel,attr"`
	HrefLang string   `xml:"hreflang,attr"`
	Href     string   `xml:"href,attr"`
}

type sitemapURL struct {
	XMLName    xml.Name      `xml:"url"`
	Loc        string        `xml:"loc"`
	LastMod    string        `xml:"lastmod"`
	ChangeFreq string        `xml:"changefreq"`
	Priority   string        `xml:"priority"`
	Links      []sitemapLink `xml:"xhtml:link"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	NS      string       `xml:"xmlns,attr"`
	XHTML   string       `xml:"xmlns:xhtml,attr"`
	URLs    []sitemapURL `xml:"url"`
}

var sitemapPriorities = map[string]struct {
	priority   string
	changeFreq string
}{
	"home":         {"1.0", "daily"},
	"services":     {"0.9", "weekly"},
	"fleet":        {"0.9", "weekly"},
	"pricing":      {"0.9", "weekly"},
	"testimonials": {"0.8", "weekly"},
	"trip-planner": {"0.8", "weekly"},
	"about":        {"0.7", "monthly"},
	"contact":      {"0.8", "monthly"},
}

// Sitemap renders sitemap.xml with hreflang alternates per page.
func (s *Service) Sitemap() ([]byte, error) {
	lastMod := s.now().Format("2006-01-02")
	set := urlSet{
		NS:    "http://www.sitemaps.org/schemas/sitemap/0.9",
		XHTML: "http://www.w3.org/1999/xhtml",
	}
	for _, page := range pageOrder {
		entry := pages[page]
		meta := sitemapPriorities[page]
		loc := s.pageURL(entry.path)
		set.URLs = append(set.URLs, sitemapURL{
			Loc:        loc,
			LastMod:    lastMod,
			ChangeFreq: meta.changeFreq,
			Priority:   meta.priority,
			Links: []sitemapLink{
				{Rel: "alternate", HrefLang: "en", Href: loc},
				{Rel: "alternate", HrefLang: "fr", Href: loc},
				{Rel: "alternate", HrefLang: "x-default", Href: loc},
			},
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("sitemap encoding: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

// Robots renders robots.txt pointing crawlers at the sitemap.
func (s *Service) Robots() []byte {
	return []byte(fmt.Sprintf(`User-agent: *
Allow: /

Sitemap: %s/sitemap.xml

Crawl-delay: 1
`, s.baseURL))
}
