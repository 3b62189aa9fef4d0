package booking

import (
	"context"
	"time"

	"github.com/squashclub/court-booking-backend/schedule"
)

// Evaluator checks a member's bookings against their per-period daily and
// weekly caps. Caps align with the ordered period list by position, not
// by period id: daily cap j applies to the j-th period. The club
// configures both lists together, so the coupling holds in practice.
type Evaluator struct {
	ledger   Ledger
	members  MemberStore
	schedule ScheduleSource
	loc      *time.Location
	now      func() time.Time
}

func NewEvaluator(ledger Ledger, members MemberStore, scheduleSource ScheduleSource, loc *time.Location) *Evaluator {
	return &Evaluator{
		ledger:   ledger,
		members:  members,
		schedule: scheduleSource,
		loc:      loc,
		now:      func() time.Time { return time.Now().In(loc) },
	}
}

// CheckDaily reports the member's usage against each daily cap for one
// date. When the date is today, slots that have already started are not
// counted: a finished morning game does not block an evening booking.
func (e *Evaluator) CheckDaily(ctx context.Context, memNo int, date time.Time) ([]PeriodUsage, error) {
	lim, err := e.members.Limitations(ctx, memNo)

	if err != nil {
		return nil, err
	}

	counts, err := e.countByPeriod(ctx, memNo, date, date, true)

	if err != nil {
		return nil, err
	}

	return e.usage(ctx, lim.DailyLimits, counts)
}

// CheckWeekly reports usage against the weekly caps for the week
// (Sunday..Saturday) containing the date. All rows in the week count,
// elapsed or not.
func (e *Evaluator) CheckWeekly(ctx context.Context, memNo int, date time.Time) ([]PeriodUsage, error) {
	lim, err := e.members.Limitations(ctx, memNo)

	if err != nil {
		return nil, err
	}

	weekStart := date.AddDate(0, 0, -(schedule.DayOfWeek(date) - 1))
	weekEnd := weekStart.AddDate(0, 0, 6)

	counts, err := e.countByPeriod(ctx, memNo, weekStart, weekEnd, false)

	if err != nil {
		return nil, err
	}

	return e.usage(ctx, lim.WeeklyLimits, counts)
}

// AllowsBooking reports whether one more booking in the slot's period
// would break a daily or weekly cap.
func (e *Evaluator) AllowsBooking(ctx context.Context, memNo int, date time.Time, timeSlot string, court int) error {
	periodID, err := e.slotPeriod(ctx, date, timeSlot, court)

	if err != nil {
		return err
	}

	if periodID == 0 {
		return nil
	}

	daily, err := e.CheckDaily(ctx, memNo, date)

	if err != nil {
		return err
	}

	for _, usage := range daily {
		if usage.PeriodID == periodID && usage.Count >= usage.Limit {
			return ErrDailyLimitExceeded
		}
	}

	weekly, err := e.CheckWeekly(ctx, memNo, date)

	if err != nil {
		return err
	}

	for _, usage := range weekly {
		if usage.PeriodID == periodID && usage.Count >= usage.Limit {
			return ErrWeeklyLimitExceeded
		}
	}

	return nil
}

// countByPeriod tallies the member's occupied cells per period code in an
// inclusive date range. With skipElapsed, today's rows whose slot already
// started are excluded.
func (e *Evaluator) countByPeriod(ctx context.Context, memNo int, from, to time.Time, skipElapsed bool) (map[int]int, error) {
	rows, err := e.ledger.Rows(ctx, from, to)

	if err != nil {
		return nil, err
	}

	now := e.now()
	today := now.Format(time.DateOnly)
	clock := now.Format("15:04")

	counts := make(map[int]int)

	for _, row := range rows {
		if skipElapsed && row.Date.Format(time.DateOnly) == today && row.TimeSlot < clock {
			continue
		}

		for i, cell := range row.Occupants {
			if cell.Occupied && cell.MemberNo == memNo {
				counts[row.PeriodCodes[i]]++
			}
		}
	}

	return counts, nil
}

// usage pairs the positional cap list with the ordered period list.
func (e *Evaluator) usage(ctx context.Context, caps []int, counts map[int]int) ([]PeriodUsage, error) {
	periods, err := e.schedule.Periods(ctx)

	if err != nil {
		return nil, err
	}

	var usages []PeriodUsage

	for i, c := range caps {
		if i >= len(periods) {
			break
		}

		usage := PeriodUsage{
			PeriodID:          periods[i].ID,
			PeriodDescription: periods[i].Description,
			Limit:             c,
			Count:             counts[periods[i].ID],
		}
		usage.Exceeded = usage.Count >= usage.Limit

		usages = append(usages, usage)
	}

	return usages, nil
}

// slotPeriod resolves which period the slot falls in for the given court
// via the day's period assignments.
func (e *Evaluator) slotPeriod(ctx context.Context, date time.Time, timeSlot string, court int) (int, error) {
	assignments, err := e.schedule.PeriodAssignments(ctx, schedule.DayOfWeek(date))

	if err != nil {
		return 0, err
	}

	for _, a := range assignments {
		if a.Time == timeSlot {
			if court >= 1 && court <= len(a.PeriodIDs) {
				return a.PeriodIDs[court-1], nil
			}
			return 0, nil
		}
	}

	return 0, nil
}
