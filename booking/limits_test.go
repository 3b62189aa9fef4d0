package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/squashclub/court-booking-backend/member"
	"github.com/squashclub/court-booking-backend/schedule"
)

type stubLedger struct {
	rows     []LedgerRow
	from, to time.Time
}

func (s *stubLedger) Reserve(ctx context.Context, date time.Time, timeSlot string, court, memberNo int, displayName string) error {
	return nil
}

func (s *stubLedger) Release(ctx context.Context, date time.Time, timeSlot string, court, memberNo int) error {
	return nil
}

func (s *stubLedger) Rows(ctx context.Context, from, to time.Time) ([]LedgerRow, error) {
	s.from, s.to = from, to
	return s.rows, nil
}

type stubMembers struct{ lim member.Limitations }

func (s *stubMembers) FindByNumber(ctx context.Context, memNo int) (member.Member, error) {
	return member.Member{MemberNo: memNo}, nil
}

func (s *stubMembers) Limitations(ctx context.Context, memNo int) (member.Limitations, error) {
	return s.lim, nil
}

func (s *stubMembers) UpdateCredit(ctx context.Context, memNo int, credit float64) error {
	return nil
}

type stubSchedule struct {
	periods     []schedule.Period
	assignments []schedule.SlotAssignment
}

func (s *stubSchedule) TimeSlots(ctx context.Context, dayOfWeek int) ([]string, error) {
	return nil, nil
}

func (s *stubSchedule) Courts(ctx context.Context) ([]schedule.Court, error) {
	return nil, nil
}

func (s *stubSchedule) Periods(ctx context.Context) ([]schedule.Period, error) {
	return s.periods, nil
}

func (s *stubSchedule) PeriodAssignments(ctx context.Context, dayOfWeek int) ([]schedule.SlotAssignment, error) {
	return s.assignments, nil
}

func (s *stubSchedule) Tariffs(ctx context.Context) ([]schedule.Tariff, error) {
	return nil, nil
}

func occupiedRow(date time.Time, slot string, memNo, periodCode int) LedgerRow {
	return LedgerRow{
		Date:        date,
		TimeSlot:    slot,
		Occupants:   []CellState{{Occupied: true, MemberNo: memNo}},
		Names:       []string{"J Smith"},
		PeriodCodes: []int{periodCode},
	}
}

var testPeriods = []schedule.Period{
	{ID: 1, Description: "Off-peak"},
	{ID: 2, Description: "Peak"},
}

// 2030-01-15 is a Tuesday.
var testDate = time.Date(2030, time.January, 15, 0, 0, 0, 0, time.UTC)

func TestCheckDailyCountsPerPeriod(t *testing.T) {
	ledger := &stubLedger{rows: []LedgerRow{
		occupiedRow(testDate, "16:30", 101, 2),
		occupiedRow(testDate, "17:15", 101, 2),
		occupiedRow(testDate, "18:00", 202, 2),
	}}

	e := NewEvaluator(ledger,
		&stubMembers{lim: member.Limitations{DailyLimits: []int{2, 2}}},
		&stubSchedule{periods: testPeriods}, time.UTC)

	usages, err := e.CheckDaily(context.Background(), 101, testDate)

	require.NoError(t, err)
	require.Len(t, usages, 2)

	assert.Equal(t, 1, usages[0].PeriodID)
	assert.Equal(t, 0, usages[0].Count)
	assert.False(t, usages[0].Exceeded)

	assert.Equal(t, 2, usages[1].PeriodID)
	assert.Equal(t, 2, usages[1].Count)
	assert.True(t, usages[1].Exceeded)
}

func TestCheckDailyExcludesElapsedSlots(t *testing.T) {
	ledger := &stubLedger{rows: []LedgerRow{
		occupiedRow(testDate, "06:15", 101, 2),
		occupiedRow(testDate, "17:15", 101, 2),
	}}

	e := NewEvaluator(ledger,
		&stubMembers{lim: member.Limitations{DailyLimits: []int{2, 2}}},
		&stubSchedule{periods: testPeriods}, time.UTC)
	e.now = func() time.Time {
		return time.Date(2030, time.January, 15, 12, 0, 0, 0, time.UTC)
	}

	usages, err := e.CheckDaily(context.Background(), 101, testDate)

	require.NoError(t, err)
	assert.Equal(t, 1, usages[1].Count)
}

func TestCheckWeeklyCountsElapsedSlots(t *testing.T) {
	ledger := &stubLedger{rows: []LedgerRow{
		occupiedRow(testDate, "06:15", 101, 2),
		occupiedRow(testDate, "17:15", 101, 2),
	}}

	e := NewEvaluator(ledger,
		&stubMembers{lim: member.Limitations{WeeklyLimits: []int{3, 3}}},
		&stubSchedule{periods: testPeriods}, time.UTC)
	e.now = func() time.Time {
		return time.Date(2030, time.January, 15, 12, 0, 0, 0, time.UTC)
	}

	usages, err := e.CheckWeekly(context.Background(), 101, testDate)

	require.NoError(t, err)
	assert.Equal(t, 2, usages[1].Count)

	// The range is the Sunday..Saturday week containing the date.
	assert.Equal(t, time.Date(2030, time.January, 13, 0, 0, 0, 0, time.UTC), ledger.from)
	assert.Equal(t, time.Date(2030, time.January, 19, 0, 0, 0, 0, time.UTC), ledger.to)
}

func TestAllowsBookingBlocksAtDailyCap(t *testing.T) {
	ledger := &stubLedger{rows: []LedgerRow{
		occupiedRow(testDate, "16:30", 101, 2),
		occupiedRow(testDate, "17:15", 101, 2),
	}}

	e := NewEvaluator(ledger,
		&stubMembers{lim: member.Limitations{DailyLimits: []int{2, 2}}},
		&stubSchedule{
			periods:     testPeriods,
			assignments: []schedule.SlotAssignment{{Time: "18:00", PeriodIDs: []int{2}}},
		}, time.UTC)

	err := e.AllowsBooking(context.Background(), 101, testDate, "18:00", 1)

	assert.ErrorIs(t, err, ErrDailyLimitExceeded)
}

func TestAllowsBookingUncappedPeriod(t *testing.T) {
	ledger := &stubLedger{rows: []LedgerRow{
		occupiedRow(testDate, "16:30", 101, 2),
		occupiedRow(testDate, "17:15", 101, 2),
	}}

	// Only the first period carries a cap; period 2 is unlimited.
	e := NewEvaluator(ledger,
		&stubMembers{lim: member.Limitations{DailyLimits: []int{2}}},
		&stubSchedule{
			periods:     testPeriods,
			assignments: []schedule.SlotAssignment{{Time: "18:00", PeriodIDs: []int{2}}},
		}, time.UTC)

	assert.NoError(t, e.AllowsBooking(context.Background(), 101, testDate, "18:00", 1))
}

func TestAllowsBookingBlocksAtWeeklyCap(t *testing.T) {
	ledger := &stubLedger{rows: []LedgerRow{
		occupiedRow(testDate.AddDate(0, 0, -1), "17:15", 101, 2),
		occupiedRow(testDate.AddDate(0, 0, -2), "17:15", 101, 2),
		occupiedRow(testDate, "17:15", 101, 2),
	}}

	e := NewEvaluator(ledger,
		&stubMembers{lim: member.Limitations{DailyLimits: []int{9, 9}, WeeklyLimits: []int{3, 3}}},
		&stubSchedule{
			periods:     testPeriods,
			assignments: []schedule.SlotAssignment{{Time: "18:00", PeriodIDs: []int{2}}},
		}, time.UTC)

	err := e.AllowsBooking(context.Background(), 101, testDate, "18:00", 1)

	assert.ErrorIs(t, err, ErrWeeklyLimitExceeded)
}
