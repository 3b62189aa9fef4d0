package audit

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

func (r *Repository) Record(ctx context.Context, entry Entry) error {
	sql := `INSERT INTO "court-booking".internetlog
                (log_date, mem_no, court_date, process_date, court, description, activity)
            VALUES ($1, $2, $3, $4, $5, $6, $7);
        `

	now := time.Now()
	_, err := r.pool.Exec(ctx, sql, now, entry.MemberNo, entry.CourtDate, now, entry.Court, entry.Description, entry.Activity)

	if err != nil {
		return fmt.Errorf("failed to insert audit entry: %w", err)
	}

	return nil
}

// EnsureActivityTypes seeds the activity code catalog so every code written
// to the log resolves to a description.
func (r *Repository) EnsureActivityTypes(ctx context.Context) error {
	sql := `INSERT INTO "court-booking".internettype (code, description)
            VALUES ($1, $2)
            ON CONFLICT (code) DO NOTHING;
        `

	types := []struct {
		code        int
		description string
	}{
		{ActivityBooking, "Internet booking - Successful"},
		{ActivityCancellation, "Internet booking - Cancelled"},
		{ActivityLogin, "Internet login - Successful"},
		{ActivityWaitingListOK, "Waitinglist - Successfully added"},
		{ActivityWaitingListFail, "Waitinglist - Error"},
		{ActivityProfileUpdate, "User profile updated"},
	}

	for _, t := range types {
		if _, err := r.pool.Exec(ctx, sql, t.code, t.description); err != nil {
			return fmt.Errorf("failed to seed activity type %v: %w", t.code, err)
		}
	}

	return nil
}
