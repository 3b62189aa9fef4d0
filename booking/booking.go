package booking

import "time"

// MaxCourts is the number of positional occupant columns a ledger row
// carries. Court numbers index into them 1-based.
const MaxCourts = 10

// restrictedMarker flags a cell held back by the committee. Restricted
// cells show as reserved on the grid but are treated as free by Reserve.
const restrictedMarker = -9

// CellState is one occupant cell of a ledger row with the storage
// sentinels (NULL, 0, -9) normalized away.
type CellState struct {
	Occupied   bool `json:"occupied"`
	Restricted bool `json:"restricted"`
	MemberNo   int  `json:"memberNo,omitempty"`
}

// LedgerRow is one (date, time slot) row of the booking grid. Occupants,
// Names and PeriodCodes are indexed by court position: court n sits at
// index n-1.
type LedgerRow struct {
	Date        time.Time   `json:"-"`
	TimeSlot    string      `json:"timeSlot"`
	Occupants   []CellState `json:"occupants"`
	Names       []string    `json:"names"`
	PeriodCodes []int       `json:"periodCodes"`
}

// CostKind selects which tariff a financial adjustment applies.
type CostKind int

const (
	CostBooking CostKind = iota
	CostCancellation
)

func (k CostKind) String() string {
	if k == CostCancellation {
		return "cancellation"
	}
	return "booking"
}

// Adjustment records one credit debit: the amount charged and the balance
// before and after.
type Adjustment struct {
	Kind           CostKind `json:"-"`
	Cost           float64  `json:"cost"`
	PreviousCredit float64  `json:"previousCredit"`
	NewCredit      float64  `json:"newCredit"`
}

// Result is the outcome of a booking or cancellation that reached the
// ledger. Warning is set when the ledger write committed but a downstream
// step failed.
type Result struct {
	Status         string  `json:"status"`
	Cost           float64 `json:"cost"`
	PreviousCredit float64 `json:"previousCredit"`
	NewCredit      float64 `json:"newCredit"`
	Warning        string  `json:"warning,omitempty"`
}

// MemberBooking is one of a member's own reservations, as listed by
// MemberBookings.
type MemberBooking struct {
	Date       string `json:"date"`
	TimeSlot   string `json:"timeSlot"`
	Court      int    `json:"court"`
	PeriodCode int    `json:"periodCode"`
}

// GridCell is one court's cell in the availability grid. Occupant names
// are shown but member numbers are not exposed.
type GridCell struct {
	Court      int    `json:"court"`
	Occupied   bool   `json:"occupied"`
	Restricted bool   `json:"restricted"`
	Name       string `json:"name,omitempty"`
	PeriodID   int    `json:"periodId"`
	Mine       bool   `json:"mine"`
}

// GridRow is one time slot of the availability grid.
type GridRow struct {
	SlotID   int        `json:"slotId"`
	TimeSlot string     `json:"timeSlot"`
	Cells    []GridCell `json:"cells"`
}

// PeriodUsage reports a member's standing against one period cap.
type PeriodUsage struct {
	PeriodID          int    `json:"periodId"`
	PeriodDescription string `json:"periodDescription"`
	Limit             int    `json:"limit"`
	Count             int    `json:"count"`
	Exceeded          bool   `json:"exceeded"`
}

// PeriodCost is one row of the booking cost quote: what a 45-minute slot
// in that period costs.
type PeriodCost struct {
	PeriodID          int     `json:"periodId"`
	PeriodDescription string  `json:"periodDescription"`
	Cost              float64 `json:"cost"`
}
