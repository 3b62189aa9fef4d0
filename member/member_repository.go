package member

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct{ pool *pgxpool.Pool }

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) FindByNumber(ctx context.Context, memNo int) (Member, error) {
	sql := `SELECT mem_no, surname, first_name, COALESCE(cell_phone, ''), COALESCE(email, ''), COALESCE(credit, 0), COALESCE(blocked, 0)
            FROM "court-booking".clublist
            WHERE mem_no = $1;
        `

	return r.scanMember(r.pool.QueryRow(ctx, sql, memNo), memNo)
}

func (r *Repository) FindByCredentials(ctx context.Context, memNo, pin int) (Member, error) {
	sql := `SELECT mem_no, surname, first_name, COALESCE(cell_phone, ''), COALESCE(email, ''), COALESCE(credit, 0), COALESCE(blocked, 0)
            FROM "court-booking".clublist
            WHERE mem_no = $1 AND pin = $2;
        `

	return r.scanMember(r.pool.QueryRow(ctx, sql, memNo, pin), memNo)
}

func (r *Repository) scanMember(row pgx.Row, memNo int) (Member, error) {
	var m Member
	var blocked int

	err := row.Scan(
		&m.MemberNo,
		&m.Surname,
		&m.FirstName,
		&m.CellPhone,
		&m.Email,
		&m.Credit,
		&blocked,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Member{}, ErrMemberNotFound
	}

	if err != nil {
		return Member{}, fmt.Errorf("failed to fetch member %v: %w", memNo, err)
	}

	m.Blocked = blocked != 0

	return m, nil
}

func (r *Repository) List(ctx context.Context, startMemNo, limit int) ([]Member, error) {
	sql := `SELECT mem_no, surname, first_name, COALESCE(cell_phone, ''), COALESCE(email, ''), COALESCE(credit, 0), COALESCE(blocked, 0)
            FROM "court-booking".clublist
            WHERE mem_no >= $1
            ORDER BY mem_no
            LIMIT $2;
        `

	rows, err := r.pool.Query(ctx, sql, startMemNo, limit)

	if err != nil {
		return nil, fmt.Errorf("failed to fetch members: %w", err)
	}

	defer rows.Close()

	var members []Member

	for rows.Next() {
		var m Member
		var blocked int

		err := rows.Scan(&m.MemberNo, &m.Surname, &m.FirstName, &m.CellPhone, &m.Email, &m.Credit, &blocked)

		if err != nil {
			return nil, fmt.Errorf("error scanning member row: %w", err)
		}

		m.Blocked = blocked != 0
		members = append(members, m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member rows: %w", err)
	}

	return members, nil
}

// UpdateProfile writes every profile field except credit, which only the
// finance layer may mutate via UpdateCredit.
func (r *Repository) UpdateProfile(ctx context.Context, memNo int, update ProfileUpdate) error {
	sql := `UPDATE "court-booking".clublist
            SET first_name = $1, surname = $2, cell_phone = $3, email = $4
            WHERE mem_no = $5;
        `

	tag, err := r.pool.Exec(ctx, sql, update.FirstName, update.Surname, update.CellPhone, update.Email, memNo)

	if err != nil {
		return fmt.Errorf("failed to update member %v profile: %w", memNo, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrMemberNotFound
	}

	return nil
}

func (r *Repository) UpdateCredit(ctx context.Context, memNo int, credit float64) error {
	sql := `UPDATE "court-booking".clublist
            SET credit = $1
            WHERE mem_no = $2;
        `

	tag, err := r.pool.Exec(ctx, sql, credit, memNo)

	if err != nil {
		return fmt.Errorf("failed to update member %v credit: %w", memNo, err)
	}

	if tag.RowsAffected() == 0 {
		return ErrMemberNotFound
	}

	return nil
}

// Limitations returns the member's daily and weekly per-period caps with
// zero-valued caps filtered out.
func (r *Repository) Limitations(ctx context.Context, memNo int) (Limitations, error) {
	sql := `SELECT mem_no,
                   COALESCE(book_1, 0), COALESCE(book_2, 0), COALESCE(book_3, 0), COALESCE(book_4, 0), COALESCE(book_5, 0),
                   COALESCE(week_1, 0), COALESCE(week_2, 0), COALESCE(week_3, 0), COALESCE(week_4, 0), COALESCE(week_5, 0)
            FROM "court-booking".clublist
            WHERE mem_no = $1;
        `

	var (
		lim   Limitations
		daily [5]int
		week  [5]int
	)

	err := r.pool.QueryRow(ctx, sql, memNo).Scan(
		&lim.MemberNo,
		&daily[0], &daily[1], &daily[2], &daily[3], &daily[4],
		&week[0], &week[1], &week[2], &week[3], &week[4],
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return Limitations{}, ErrMemberNotFound
	}

	if err != nil {
		return Limitations{}, fmt.Errorf("failed to fetch limitations for member %v: %w", memNo, err)
	}

	for _, c := range daily {
		if c > 0 {
			lim.DailyLimits = append(lim.DailyLimits, c)
		}
	}

	for _, c := range week {
		if c > 0 {
			lim.WeeklyLimits = append(lim.WeeklyLimits, c)
		}
	}

	return lim, nil
}
