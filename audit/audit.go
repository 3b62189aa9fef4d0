// Package audit records internet activity entries for every member-facing
// operation: logins, bookings, cancellations, waiting list changes and
// profile updates.
package audit

import "context"

const (
	ActivityBooking         = 1
	ActivityCancellation    = 101
	ActivityLogin           = 600
	ActivityWaitingListOK   = 650
	ActivityWaitingListFail = 651
	ActivityProfileUpdate   = 700
)

type Entry struct {
	MemberNo int
	// CourtDate is the booked slot as "dd/mm/yyyy HH:MM:SS", or the wall
	// clock for activities without a slot.
	CourtDate   string
	Court       string
	Description string
	Activity    int
}

type Log interface {
	Record(ctx context.Context, entry Entry) error
}
