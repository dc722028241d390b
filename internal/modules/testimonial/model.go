// README: Testimonial record and featured-page definitions.
package testimonial

import "time"

type Testimonial struct {
	ID               string    `json:"id"`
	CustomerName     string    `json:"customer_name"`
	CustomerLocation string    `json:"customer_location"`
	ServiceType      string    `json:"service_type"`
	Rating           int       `json:"rating"`
	QuoteEN          string    `json:"quote_en"`
	QuoteFR          string    `json:"quote_fr"`
	Date             time.Time `json:"date"`
	Verified         bool      `json:"verified"`
	Featured         bool      `json:"featured"`
	CreatedAt        time.Time `json:"created_at"`
}

// ServiceTypes mirrors the submission form's fixed choices.
var ServiceTypes = []string{
	"Airport Transfer",
	"Corporate Event",
	"Wedding",
	"City Tour",
	"School Trip",
	"Other",
}

// FeaturedPage is the homepage section payload: the newest featured
// reviews plus their average rating.
type FeaturedPage struct {
	Testimonials  []Testimonial `json:"testimonials"`
	AverageRating float64       `json:"average_rating"`
}

const featuredLimit = 3
