// README: Testimonial store backed by PostgreSQL.
package testimonial

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PGStore struct {
	db *pgxpool.Pool
}

func NewPGStore(db *pgxpool.Pool) *PGStore {
	return &PGStore{db: db}
}

func (s *PGStore) Insert(ctx context.Context, t *Testimonial) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO testimonials (
            id, customer_name, customer_location, service_type, rating,
            quote_en, quote_fr, date, verified, featured, created_at
        ) VALUES (
            $1, $2, $3, $4, $5,
            $6, $7, $8, $9, $10, $11
        )`,
		t.ID,
		t.CustomerName,
		t.CustomerLocation,
		t.ServiceType,
		t.Rating,
		t.QuoteEN,
		t.QuoteFR,
		t.Date,
		t.Verified,
		t.Featured,
		t.CreatedAt,
	)
	return err
}

func (s *PGStore) ListVerified(ctx context.Context) ([]Testimonial, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, customer_name, customer_location, service_type, rating,
               quote_en, quote_fr, date, verified, featured, created_at
        FROM testimonials
        WHERE verified
        ORDER BY date DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	return scanTestimonials(rows)
}

func (s *PGStore) ListFeatured(ctx context.Context, limit int) ([]Testimonial, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, customer_name, customer_location, service_type, rating,
               quote_en, quote_fr, date, verified, featured, created_at
        FROM testimonials
        WHERE featured
        ORDER BY date DESC, created_at DESC
        LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	return scanTestimonials(rows)
}

func scanTestimonials(rows pgx.Rows) ([]Testimonial, error) {
	defer rows.Close()
	var out []Testimonial
	for rows.Next() {
		var t Testimonial
		if err := rows.Scan(
			&t.ID, &t.CustomerName, &t.CustomerLocation, &t.ServiceType, &t.Rating,
			&t.QuoteEN, &t.QuoteFR, &t.Date, &t.Verified, &t.Featured, &t.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
