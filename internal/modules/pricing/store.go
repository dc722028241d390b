// README: Quote log backed by PostgreSQL (best-effort funnel record).
package pricing

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) LogQuote(ctx context.Context, req QuoteRequest, b *Breakdown) error {
	_, err := s.db.Exec(ctx, `
        INSERT INTO quote_log (
            service_key, passengers, travel_date, travel_time, pickup, dropoff,
            base_price, peak_surcharge, weekend_surcharge, distance_fee,
            extra_passenger_fee, last_minute_surcharge, total, per_person,
            fallback_base, computed_at
        ) VALUES (
            $1, $2, $3, $4, $5, $6,
            $7, $8, $9, $10,
            $11, $12, $13, $14,
            $15, $16
        )`,
		string(req.Service),
		req.Passengers,
		req.Date,
		fmt.Sprintf("%02d:%02d", req.Hour, req.Minute),
		req.Pickup,
		req.Dropoff,
		b.BasePrice.Amount,
		b.PeakTimeSurcharge.Amount,
		b.WeekendSurcharge.Amount,
		b.DistanceFee.Amount,
		b.ExtraPassengerFee.Amount,
		b.LastMinuteSurcharge.Amount,
		b.Total.Amount,
		b.PerPerson.Amount,
		b.FallbackBase,
		b.ComputedAt,
	)
	return err
}
