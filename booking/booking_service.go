package booking

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/squashclub/court-booking-backend/audit"
	"github.com/squashclub/court-booking-backend/member"
	"github.com/squashclub/court-booking-backend/schedule"
)

type Ledger interface {
	Reserve(ctx context.Context, date time.Time, timeSlot string, court, memberNo int, displayName string) error
	Release(ctx context.Context, date time.Time, timeSlot string, court, memberNo int) error
	Rows(ctx context.Context, from, to time.Time) ([]LedgerRow, error)
}

type MemberStore interface {
	FindByNumber(ctx context.Context, memNo int) (member.Member, error)
	Limitations(ctx context.Context, memNo int) (member.Limitations, error)
	UpdateCredit(ctx context.Context, memNo int, credit float64) error
}

type ScheduleSource interface {
	TimeSlots(ctx context.Context, dayOfWeek int) ([]string, error)
	Courts(ctx context.Context) ([]schedule.Court, error)
	Periods(ctx context.Context) ([]schedule.Period, error)
	PeriodAssignments(ctx context.Context, dayOfWeek int) ([]schedule.SlotAssignment, error)
	Tariffs(ctx context.Context) ([]schedule.Tariff, error)
}

type Adjuster interface {
	Apply(ctx context.Context, memNo int, kind CostKind) (Adjustment, error)
}

type LimitChecker interface {
	AllowsBooking(ctx context.Context, memNo int, date time.Time, timeSlot string, court int) error
}

type Notifier interface {
	SlotFreed(ctx context.Context, date, timeSlot string, cancellingMember int) error
}

const (
	StatusBooked    = "booked"
	StatusCancelled = "cancelled"

	// WarningCreditNotDebited accompanies a committed ledger write whose
	// credit debit could not be persisted.
	WarningCreditNotDebited = "credit could not be debited, contact the committee"
)

const auditDateLayout = "02/01/2006"

// Service orchestrates the booking workflow: slot resolution, member and
// limit checks, the ledger write, the credit debit and the audit trail.
type Service struct {
	ledger   Ledger
	members  MemberStore
	schedule ScheduleSource
	finance  Adjuster
	limits   LimitChecker
	notifier Notifier
	auditLog audit.Log
	loc      *time.Location
	now      func() time.Time
	logger   *slog.Logger
}

func NewService(
	ledger Ledger,
	members MemberStore,
	scheduleSource ScheduleSource,
	finance Adjuster,
	limits LimitChecker,
	notifier Notifier,
	auditLog audit.Log,
	loc *time.Location,
) *Service {
	return &Service{
		ledger:   ledger,
		members:  members,
		schedule: scheduleSource,
		finance:  finance,
		limits:   limits,
		notifier: notifier,
		auditLog: auditLog,
		loc:      loc,
		now:      func() time.Time { return time.Now().In(loc) },
		logger:   slog.Default().With("component", "booking-service"),
	}
}

// CreateBooking reserves one court cell for the member and debits the
// booking cost. Date is yyyy-mm-dd; slotID is the 1-based index into the
// day's slot catalog.
func (s *Service) CreateBooking(ctx context.Context, memNo int, date string, slotID, court int) (Result, error) {
	m, err := s.members.FindByNumber(ctx, memNo)

	if err != nil {
		return Result{}, err
	}

	day, timeSlot, err := s.resolveSlot(ctx, date, slotID)

	outcome := "failed"
	defer func() {
		s.audit(ctx, memNo, day, timeSlot, court, m, audit.ActivityBooking,
			fmt.Sprintf("internet booking %s", outcome))
	}()

	if err != nil {
		return Result{}, err
	}

	if m.Blocked {
		return Result{}, member.ErrMemberBlocked
	}

	if m.Credit <= 0 {
		return Result{}, ErrInsufficientCredit
	}

	if s.slotStart(day, timeSlot).Before(s.now()) {
		return Result{}, ErrPastSlot
	}

	if err := s.limits.AllowsBooking(ctx, memNo, day, timeSlot, court); err != nil {
		return Result{}, err
	}

	if err := s.ledger.Reserve(ctx, day, timeSlot, court, memNo, m.DisplayName()); err != nil {
		return Result{}, err
	}

	adj, err := s.finance.Apply(ctx, memNo, CostBooking)

	if err != nil {
		// The reservation is committed; report it with a warning rather
		// than pretend it failed.
		s.logger.Error("credit debit failed after reservation",
			"error", err, "member_no", memNo, "date", date, "time_slot", timeSlot)
		outcome = "ok, credit not debited"
		return Result{
			Status:         StatusBooked,
			Cost:           adj.Cost,
			PreviousCredit: adj.PreviousCredit,
			NewCredit:      adj.PreviousCredit,
			Warning:        WarningCreditNotDebited,
		}, nil
	}

	outcome = "ok"

	return Result{
		Status:         StatusBooked,
		Cost:           adj.Cost,
		PreviousCredit: adj.PreviousCredit,
		NewCredit:      adj.NewCredit,
	}, nil
}

// CancelBooking releases the member's reservation, notifies the waiting
// list and debits the cancellation fee. Notification failures never fail
// the cancel; a credit-persist failure downgrades the result to a
// warning.
func (s *Service) CancelBooking(ctx context.Context, memNo int, date string, slotID, court int) (Result, error) {
	m, err := s.members.FindByNumber(ctx, memNo)

	if err != nil {
		return Result{}, err
	}

	day, timeSlot, err := s.resolveSlot(ctx, date, slotID)

	outcome := "failed"
	defer func() {
		s.audit(ctx, memNo, day, timeSlot, court, m, audit.ActivityCancellation,
			fmt.Sprintf("internet cancellation %s", outcome))
	}()

	if err != nil {
		return Result{}, err
	}

	if err := s.ledger.Release(ctx, day, timeSlot, court, memNo); err != nil {
		return Result{}, err
	}

	if err := s.notifier.SlotFreed(ctx, day.Format(auditDateLayout), timeSlot, memNo); err != nil {
		s.logger.Error("waiting list notification failed",
			"error", err, "date", date, "time_slot", timeSlot)
	}

	adj, err := s.finance.Apply(ctx, memNo, CostCancellation)

	if err != nil {
		s.logger.Error("cancellation fee debit failed after release",
			"error", err, "member_no", memNo, "date", date, "time_slot", timeSlot)
		outcome = "ok, fee not debited"
		return Result{
			Status:         StatusCancelled,
			Cost:           adj.Cost,
			PreviousCredit: adj.PreviousCredit,
			NewCredit:      adj.PreviousCredit,
			Warning:        WarningCreditNotDebited,
		}, nil
	}

	outcome = "ok"

	return Result{
		Status:         StatusCancelled,
		Cost:           adj.Cost,
		PreviousCredit: adj.PreviousCredit,
		NewCredit:      adj.NewCredit,
	}, nil
}

// MemberBookings lists the member's reservations in an inclusive date
// range.
func (s *Service) MemberBookings(ctx context.Context, memNo int, from, to string) ([]MemberBooking, error) {
	start, err := time.ParseInLocation(time.DateOnly, from, s.loc)

	if err != nil {
		return nil, fmt.Errorf("invalid start date %q: %w", from, err)
	}

	end, err := time.ParseInLocation(time.DateOnly, to, s.loc)

	if err != nil {
		return nil, fmt.Errorf("invalid end date %q: %w", to, err)
	}

	rows, err := s.ledger.Rows(ctx, start, end)

	if err != nil {
		return nil, err
	}

	var bookings []MemberBooking

	for _, row := range rows {
		for i, cell := range row.Occupants {
			if cell.Occupied && cell.MemberNo == memNo {
				bookings = append(bookings, MemberBooking{
					Date:       row.Date.Format(time.DateOnly),
					TimeSlot:   row.TimeSlot,
					Court:      i + 1,
					PeriodCode: row.PeriodCodes[i],
				})
			}
		}
	}

	return bookings, nil
}

// DayGrid builds the availability grid for one date: every catalog slot
// crossed with every bookable court. memNo marks the viewer's own cells.
func (s *Service) DayGrid(ctx context.Context, memNo int, date string) ([]GridRow, error) {
	day, err := time.ParseInLocation(time.DateOnly, date, s.loc)

	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", date, err)
	}

	dayOfWeek := schedule.DayOfWeek(day)

	slots, err := s.schedule.TimeSlots(ctx, dayOfWeek)

	if err != nil {
		return nil, err
	}

	courts, err := s.schedule.Courts(ctx)

	if err != nil {
		return nil, err
	}

	assignments, err := s.schedule.PeriodAssignments(ctx, dayOfWeek)

	if err != nil {
		return nil, err
	}

	rows, err := s.ledger.Rows(ctx, day, day)

	if err != nil {
		return nil, err
	}

	bySlot := make(map[string]LedgerRow, len(rows))
	for _, row := range rows {
		bySlot[row.TimeSlot] = row
	}

	periodsBySlot := make(map[string][]int, len(assignments))
	for _, a := range assignments {
		periodsBySlot[a.Time] = a.PeriodIDs
	}

	var grid []GridRow

	for slotIdx, slot := range slots {
		row := GridRow{SlotID: slotIdx + 1, TimeSlot: slot}
		ledgerRow, booked := bySlot[slot]
		periodIDs := periodsBySlot[slot]

		for courtIdx, court := range courts {
			cell := GridCell{Court: court.Number}

			if courtIdx < len(periodIDs) {
				cell.PeriodID = periodIDs[courtIdx]
			}

			if booked && court.Number >= 1 && court.Number <= len(ledgerRow.Occupants) {
				state := ledgerRow.Occupants[court.Number-1]
				cell.Occupied = state.Occupied
				cell.Restricted = state.Restricted
				cell.Name = ledgerRow.Names[court.Number-1]
				cell.Mine = state.Occupied && state.MemberNo == memNo
			}

			row.Cells = append(row.Cells, cell)
		}

		grid = append(grid, row)
	}

	return grid, nil
}

// resolveSlot validates the date and turns a 1-based slot id into the
// day's clock time.
func (s *Service) resolveSlot(ctx context.Context, date string, slotID int) (time.Time, string, error) {
	day, err := time.ParseInLocation(time.DateOnly, date, s.loc)

	if err != nil {
		return time.Time{}, "", fmt.Errorf("invalid date %q: %w", date, err)
	}

	slots, err := s.schedule.TimeSlots(ctx, schedule.DayOfWeek(day))

	if err != nil {
		return day, "", err
	}

	if slotID < 1 || slotID > len(slots) {
		return day, "", ErrInvalidSlot
	}

	return day, slots[slotID-1], nil
}

func (s *Service) slotStart(day time.Time, timeSlot string) time.Time {
	clock, err := time.Parse("15:04", timeSlot)

	if err != nil {
		return day
	}

	return time.Date(day.Year(), day.Month(), day.Day(), clock.Hour(), clock.Minute(), 0, 0, s.loc)
}

// audit records the operation outcome. Audit failures are logged, never
// surfaced.
func (s *Service) audit(ctx context.Context, memNo int, day time.Time, timeSlot string, court int, m member.Member, activity int, description string) {
	courtDate := day.Format(auditDateLayout)
	if timeSlot != "" {
		courtDate = fmt.Sprintf("%s %s:00", courtDate, timeSlot)
	}

	entry := audit.Entry{
		MemberNo:    memNo,
		CourtDate:   courtDate,
		Court:       strconv.Itoa(court),
		Description: fmt.Sprintf("%s - %s", m.DisplayName(), description),
		Activity:    activity,
	}

	if err := s.auditLog.Record(ctx, entry); err != nil {
		s.logger.Error("failed to write audit record", "error", err, "activity", activity)
	}
}
