package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// TimeSlots returns the ordered slot catalog for a day of week as HH:MM
// strings. Sundays cut off at 19:00, other days at 21:15.
func (r *Repository) TimeSlots(ctx context.Context, dayOfWeek int) ([]string, error) {
	sql := `SELECT DISTINCT start_time
            FROM "court-booking".booktime
            ORDER BY start_time;
        `

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch time slots: %w", err)
	}

	defer rows.Close()

	last := lastSlot
	if dayOfWeek == Sunday {
		last = lastSlotSunday
	}

	var slots []string

	for rows.Next() {
		var start time.Time

		if err := rows.Scan(&start); err != nil {
			return nil, fmt.Errorf("error scanning time slot row: %w", err)
		}

		slot := start.Format("15:04")

		if slot >= firstSlot && slot <= last {
			slots = append(slots, slot)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating time slot rows: %w", err)
	}

	return slots, nil
}

// Courts returns the bookable courts. Rows whose description contains the
// literal "Court" are placeholder entries in the legacy data and are
// excluded from every read.
func (r *Repository) Courts(ctx context.Context) ([]Court, error) {
	sql := `SELECT id, court_no, description
            FROM "court-booking".courts
            WHERE description NOT LIKE '%Court%'
            ORDER BY id;
        `

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch courts: %w", err)
	}

	defer rows.Close()

	var courts []Court

	for rows.Next() {
		var c Court

		if err := rows.Scan(&c.ID, &c.Number, &c.Description); err != nil {
			return nil, fmt.Errorf("error scanning court row: %w", err)
		}

		courts = append(courts, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating court rows: %w", err)
	}

	return courts, nil
}

func (r *Repository) Periods(ctx context.Context) ([]Period, error) {
	sql := `SELECT id, descript, COALESCE(color, 16777215)
            FROM "court-booking".periods
            WHERE descript IS NOT NULL AND descript <> ''
            ORDER BY id;
        `

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch periods: %w", err)
	}

	defer rows.Close()

	var periods []Period

	for rows.Next() {
		var p Period
		var color int

		if err := rows.Scan(&p.ID, &p.Description, &color); err != nil {
			return nil, fmt.Errorf("error scanning period row: %w", err)
		}

		p.Color = fmt.Sprintf("#%06x", color)
		periods = append(periods, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating period rows: %w", err)
	}

	return periods, nil
}

// PeriodAssignments returns, per catalog slot of the given day of week, the
// period id assigned to each court position.
func (r *Repository) PeriodAssignments(ctx context.Context, dayOfWeek int) ([]SlotAssignment, error) {
	sql := `SELECT start_time,
                   COALESCE(court_code_1, 0), COALESCE(court_code_2, 0),
                   COALESCE(court_code_3, 0), COALESCE(court_code_4, 0)
            FROM "court-booking".booktime
            WHERE day_of_week = $1
            ORDER BY start_time;
        `

	rows, err := r.pool.Query(ctx, sql, dayOfWeek)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch period assignments: %w", err)
	}

	defer rows.Close()

	var assignments []SlotAssignment

	for rows.Next() {
		var start time.Time
		codes := make([]int, 4)

		if err := rows.Scan(&start, &codes[0], &codes[1], &codes[2], &codes[3]); err != nil {
			return nil, fmt.Errorf("error scanning period assignment row: %w", err)
		}

		assignments = append(assignments, SlotAssignment{
			Time:      start.Format("15:04"),
			PeriodIDs: codes,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating period assignment rows: %w", err)
	}

	return assignments, nil
}

// Tariffs returns per-court rate and fee lists with zero entries removed.
func (r *Repository) Tariffs(ctx context.Context) ([]Tariff, error) {
	sql := `SELECT description,
                   COALESCE(rate_per_min_1, 0), COALESCE(rate_per_min_2, 0), COALESCE(rate_per_min_3, 0), COALESCE(rate_per_min_4, 0), COALESCE(rate_per_min_5, 0),
                   COALESCE(booking_cost_1, 0), COALESCE(booking_cost_2, 0), COALESCE(booking_cost_3, 0), COALESCE(booking_cost_4, 0), COALESCE(booking_cost_5, 0),
                   COALESCE(cancel_fee_1, 0), COALESCE(cancel_fee_2, 0), COALESCE(cancel_fee_3, 0), COALESCE(cancel_fee_4, 0), COALESCE(cancel_fee_5, 0),
                   COALESCE(penalty_1, 0), COALESCE(penalty_2, 0), COALESCE(penalty_3, 0), COALESCE(penalty_4, 0), COALESCE(penalty_5, 0)
            FROM "court-booking".courts
            WHERE description NOT LIKE '%Court%'
            ORDER BY id;
        `

	rows, err := r.pool.Query(ctx, sql)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch tariffs: %w", err)
	}

	defer rows.Close()

	var tariffs []Tariff

	for rows.Next() {
		var (
			t       Tariff
			rates   [5]float64
			costs   [5]float64
			fees    [5]float64
			penalty [5]float64
		)

		err := rows.Scan(
			&t.CourtDescription,
			&rates[0], &rates[1], &rates[2], &rates[3], &rates[4],
			&costs[0], &costs[1], &costs[2], &costs[3], &costs[4],
			&fees[0], &fees[1], &fees[2], &fees[3], &fees[4],
			&penalty[0], &penalty[1], &penalty[2], &penalty[3], &penalty[4],
		)

		if err != nil {
			return nil, fmt.Errorf("error scanning tariff row: %w", err)
		}

		t.RatesPerMinute = filterZero(rates[:])
		t.BookingCosts = filterZero(costs[:])
		t.CancellationFees = filterZero(fees[:])
		t.PenaltyFees = filterZero(penalty[:])

		tariffs = append(tariffs, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tariff rows: %w", err)
	}

	return tariffs, nil
}

func filterZero(values []float64) []float64 {
	var kept []float64

	for _, v := range values {
		if v > 0 {
			kept = append(kept, v)
		}
	}

	return kept
}
