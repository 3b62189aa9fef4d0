package schedule

import "time"

// Day-of-week encoding used throughout the schedule tables:
// 1 = Sunday ... 7 = Saturday.
const (
	Sunday = 1

	// Slot catalog boundaries. Sundays are truncated at 19:00, every
	// other day runs to 21:15.
	firstSlot      = "05:30"
	lastSlotSunday = "19:00"
	lastSlot       = "21:15"
)

// SlotDuration is the fixed length of every booking slot.
const SlotDuration = 45 * time.Minute

// DayOfWeek converts a calendar date to the 1=Sunday..7=Saturday encoding.
func DayOfWeek(t time.Time) int {
	return int(t.Weekday()) + 1
}

type Court struct {
	ID          int    `json:"id"`
	Number      int    `json:"number"`
	Description string `json:"description"`
}

type Period struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// Tariff carries one court's positional lists of rates and fees. Zero and
// null entries are filtered out on read; all courts currently share the
// same tariffs, so callers take the first configured value they find.
type Tariff struct {
	CourtDescription string    `json:"courtDescription"`
	RatesPerMinute   []float64 `json:"ratesPerMinute"`
	BookingCosts     []float64 `json:"bookingCosts"`
	CancellationFees []float64 `json:"cancellationFees"`
	PenaltyFees      []float64 `json:"penaltyFees"`
}

// SlotAssignment maps one catalog time slot to the period id assigned to
// each court at that time, indexed by court position.
type SlotAssignment struct {
	Time      string `json:"time"`
	PeriodIDs []int  `json:"periodIds"`
}
