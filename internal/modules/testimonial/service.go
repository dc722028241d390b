// README: Testimonial service implements submission validation and listing.
package testimonial

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"math"
	"time"
)

var (
	ErrInvalid  = errors.New("invalid testimonial")
	ErrNotFound = errors.New("testimonial not found")
)

// Store is the persistence port; PGStore implements it over Postgres.
type Store interface {
	Insert(ctx context.Context, t *Testimonial) error
	ListVerified(ctx context.Context) ([]Testimonial, error)
	ListFeatured(ctx context.Context, limit int) ([]Testimonial, error)
}

// Cache holds the rendered featured page for a short TTL.
type Cache interface {
	GetFeatured(ctx context.Context) (*FeaturedPage, bool)
	SetFeatured(ctx context.Context, page *FeaturedPage) error
	Invalidate(ctx context.Context) error
}

type Service struct {
	store Store
	cache Cache
	now   func() time.Time
}

func NewService(store Store, cache Cache) *Service {
	if cache == nil {
		cache = NewNoOpCache()
	}
	return &Service{store: store, cache: cache, now: time.Now}
}

type CreateCommand struct {
	CustomerName     string
	CustomerLocation string
	ServiceType      string
	Rating           int
	QuoteEN          string
	QuoteFR          string
}

// Create stores a new review. Submissions start unverified and
// unfeatured; they are published after manual verification.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Testimonial, error) {
	if cmd.CustomerName == "" || cmd.CustomerLocation == "" || cmd.ServiceType == "" {
		return nil, ErrInvalid
	}
	if cmd.Rating < 1 || cmd.Rating > 5 {
		return nil, ErrInvalid
	}
	if cmd.QuoteEN == "" && cmd.QuoteFR == "" {
		return nil, ErrInvalid
	}
	if !knownServiceType(cmd.ServiceType) {
		return nil, ErrInvalid
	}

	now := s.now()
	t := &Testimonial{
		ID:               newID(),
		CustomerName:     cmd.CustomerName,
		CustomerLocation: cmd.CustomerLocation,
		ServiceType:      cmd.ServiceType,
		Rating:           cmd.Rating,
		QuoteEN:          cmd.QuoteEN,
		QuoteFR:          cmd.QuoteFR,
		Date:             now,
		Verified:         false,
		Featured:         false,
		CreatedAt:        now,
	}
	if err := s.store.Insert(ctx, t); err != nil {
		return nil, err
	}
	_ = s.cache.Invalidate(ctx)
	return t, nil
}

// List returns verified reviews, newest first.
func (s *Service) List(ctx context.Context) ([]Testimonial, error) {
	return s.store.ListVerified(ctx)
}

// Featured returns the homepage section: the three newest featured
// reviews with their average rating, served from cache when warm.
func (s *Service) Featured(ctx context.Context) (*FeaturedPage, error) {
	if page, ok := s.cache.GetFeatured(ctx); ok {
		return page, nil
	}

	items, err := s.store.ListFeatured(ctx, featuredLimit)
	if err != nil {
		return nil, err
	}
	page := &FeaturedPage{Testimonials: items, AverageRating: averageRating(items)}
	_ = s.cache.SetFeatured(ctx, page)
	return page, nil
}

func averageRating(items []Testimonial) float64 {
	if len(items) == 0 {
		return 0
	}
	sum := 0
	for _, t := range items {
		sum += t.Rating
	}
	// One decimal, matching the site's "4.9" style display.
	return math.Round(float64(sum)/float64(len(items))*10) / 10
}

func knownServiceType(v string) bool {
	for _, st := range ServiceTypes {
		if st == v {
			return true
		}
	}
	return false
}

func newID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
