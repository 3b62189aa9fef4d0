package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LedgerRepository reads and writes the positional booking grid. Every
// write is a single conditional UPDATE, so two members racing for the
// same cell resolve inside the database: exactly one statement matches.
type LedgerRepository struct{ pool *pgxpool.Pool }

func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// Reserve claims the occupant cell for a court if it is still free. Free
// means NULL, 0 or the restricted marker. Returns ErrSlotTaken when
// another member holds the cell and ErrSlotNotFound when no ledger row
// exists for the slot.
func (r *LedgerRepository) Reserve(ctx context.Context, date time.Time, timeSlot string, court, memberNo int, displayName string) error {
	if court < 1 || court > MaxCourts {
		return ErrInvalidCourt
	}

	sql := fmt.Sprintf(`UPDATE "court-booking".bookfile
            SET player_no_%[1]d = $1, play_name_%[1]d = $2
            WHERE book_date = $3 AND start_time = $4
              AND (player_no_%[1]d IS NULL OR player_no_%[1]d = 0 OR player_no_%[1]d = %[2]d);
        `, court, restrictedMarker)

	tag, err := r.pool.Exec(ctx, sql, memberNo, displayName, date, timeSlot)

	if err != nil {
		return fmt.Errorf("failed to reserve slot: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return r.classifyMiss(ctx, date, timeSlot, ErrSlotTaken)
	}

	return nil
}

// Release clears the occupant cell, but only if the given member holds
// it. Returns ErrBookingNotFound otherwise.
func (r *LedgerRepository) Release(ctx context.Context, date time.Time, timeSlot string, court, memberNo int) error {
	if court < 1 || court > MaxCourts {
		return ErrInvalidCourt
	}

	sql := fmt.Sprintf(`UPDATE "court-booking".bookfile
            SET player_no_%[1]d = 0, play_name_%[1]d = NULL
            WHERE book_date = $1 AND start_time = $2 AND player_no_%[1]d = $3;
        `, court)

	tag, err := r.pool.Exec(ctx, sql, date, timeSlot, memberNo)

	if err != nil {
		return fmt.Errorf("failed to release slot: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// classifyMiss distinguishes a contended cell from a slot that has no
// ledger row at all. The read is for error reporting only; it never gates
// the write above.
func (r *LedgerRepository) classifyMiss(ctx context.Context, date time.Time, timeSlot string, taken error) error {
	sql := `SELECT EXISTS (
                SELECT 1 FROM "court-booking".bookfile
                WHERE book_date = $1 AND start_time = $2
            );
        `

	var exists bool

	if err := r.pool.QueryRow(ctx, sql, date, timeSlot).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check slot row: %w", err)
	}

	if !exists {
		return ErrSlotNotFound
	}

	return taken
}

// OccupantAt returns the state of one cell for display or pre-validation.
func (r *LedgerRepository) OccupantAt(ctx context.Context, date time.Time, timeSlot string, court int) (CellState, error) {
	if court < 1 || court > MaxCourts {
		return CellState{}, ErrInvalidCourt
	}

	sql := fmt.Sprintf(`SELECT COALESCE(player_no_%d, 0)
            FROM "court-booking".bookfile
            WHERE book_date = $1 AND start_time = $2;
        `, court)

	var occupant int

	err := r.pool.QueryRow(ctx, sql, date, timeSlot).Scan(&occupant)

	if errors.Is(err, pgx.ErrNoRows) {
		return CellState{}, ErrSlotNotFound
	}

	if err != nil {
		return CellState{}, fmt.Errorf("failed to fetch slot occupant: %w", err)
	}

	return cellState(occupant), nil
}

// PeriodAt returns the period code recorded for one cell.
func (r *LedgerRepository) PeriodAt(ctx context.Context, date time.Time, timeSlot string, court int) (int, error) {
	if court < 1 || court > MaxCourts {
		return 0, ErrInvalidCourt
	}

	sql := fmt.Sprintf(`SELECT COALESCE(book_code_%d, 0)
            FROM "court-booking".bookfile
            WHERE book_date = $1 AND start_time = $2;
        `, court)

	var code int

	err := r.pool.QueryRow(ctx, sql, date, timeSlot).Scan(&code)

	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrSlotNotFound
	}

	if err != nil {
		return 0, fmt.Errorf("failed to fetch slot period: %w", err)
	}

	return code, nil
}

// Rows returns the grid rows for an inclusive date range, ordered by date
// and time.
func (r *LedgerRepository) Rows(ctx context.Context, from, to time.Time) ([]LedgerRow, error) {
	sql := `SELECT book_date, start_time,
                   COALESCE(player_no_1, 0), COALESCE(player_no_2, 0), COALESCE(player_no_3, 0), COALESCE(player_no_4, 0), COALESCE(player_no_5, 0),
                   COALESCE(player_no_6, 0), COALESCE(player_no_7, 0), COALESCE(player_no_8, 0), COALESCE(player_no_9, 0), COALESCE(player_no_10, 0),
                   COALESCE(play_name_1, ''), COALESCE(play_name_2, ''), COALESCE(play_name_3, ''), COALESCE(play_name_4, ''), COALESCE(play_name_5, ''),
                   COALESCE(play_name_6, ''), COALESCE(play_name_7, ''), COALESCE(play_name_8, ''), COALESCE(play_name_9, ''), COALESCE(play_name_10, ''),
                   COALESCE(book_code_1, 0), COALESCE(book_code_2, 0), COALESCE(book_code_3, 0), COALESCE(book_code_4, 0), COALESCE(book_code_5, 0),
                   COALESCE(book_code_6, 0), COALESCE(book_code_7, 0), COALESCE(book_code_8, 0), COALESCE(book_code_9, 0), COALESCE(book_code_10, 0)
            FROM "court-booking".bookfile
            WHERE book_date BETWEEN $1 AND $2
            ORDER BY book_date, start_time;
        `

	rows, err := r.pool.Query(ctx, sql, from, to)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch ledger rows: %w", err)
	}

	defer rows.Close()

	var ledger []LedgerRow

	for rows.Next() {
		var (
			row       LedgerRow
			start     time.Time
			occupants [MaxCourts]int
			names     [MaxCourts]string
			codes     [MaxCourts]int
		)

		dest := []any{&row.Date, &start}
		for i := range occupants {
			dest = append(dest, &occupants[i])
		}
		for i := range names {
			dest = append(dest, &names[i])
		}
		for i := range codes {
			dest = append(dest, &codes[i])
		}

		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("error scanning ledger row: %w", err)
		}

		row.TimeSlot = start.Format("15:04")

		for i := 0; i < MaxCourts; i++ {
			row.Occupants = append(row.Occupants, cellState(occupants[i]))
			row.Names = append(row.Names, names[i])
			row.PeriodCodes = append(row.PeriodCodes, codes[i])
		}

		ledger = append(ledger, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating ledger rows: %w", err)
	}

	return ledger, nil
}

func cellState(occupant int) CellState {
	switch {
	case occupant == restrictedMarker:
		return CellState{Restricted: true}
	case occupant > 0:
		return CellState{Occupied: true, MemberNo: occupant}
	default:
		return CellState{}
	}
}
