package waitinglist

import (
	"context"
	"log/slog"

	"github.com/squashclub/court-booking-backend/mail"
)

// Notifier emails waiting members when a booked slot frees up.
type Notifier struct {
	store  *Store
	sender mail.Sender
	logger *slog.Logger
}

func NewNotifier(store *Store, sender mail.Sender) *Notifier {
	return &Notifier{
		store:  store,
		sender: sender,
		logger: slog.Default().With("component", "waitinglist-notifier"),
	}
}

// SlotFreed notifies everyone waiting on the given slot that it is
// available again. Members who were notified are dropped from the list;
// members whose email failed stay on it for the next cancellation. The
// cancelling member is skipped and kept on the list. Date is dd/mm/yyyy;
// timeSlot accepts HH:MM or HH:MM:SS.
func (n *Notifier) SlotFreed(ctx context.Context, date, timeSlot string, cancellingMember int) error {
	if len(timeSlot) > 5 {
		timeSlot = timeSlot[:5]
	}

	return n.store.Update(date, timeSlot, func(entries []Entry) []Entry {
		var retained []Entry

		for _, entry := range entries {
			if entry.MemberNo == cancellingMember {
				retained = append(retained, entry)
				continue
			}

			body, err := mail.CancellationBody(entry.FirstName, date, timeSlot)
			if err != nil {
				n.logger.Error("failed to build notification body",
					"error", err, "date", date, "time_slot", timeSlot)
				retained = append(retained, entry)
				continue
			}

			if err := n.sender.Send(ctx, mail.SubjectBookingCancellation, []string{entry.Email}, body); err != nil {
				n.logger.Error("failed to notify waiting member",
					"error", err, "member_no", entry.MemberNo, "date", date, "time_slot", timeSlot)
				retained = append(retained, entry)
				continue
			}

			n.logger.Info("notified waiting member",
				"member_no", entry.MemberNo, "date", date, "time_slot", timeSlot)
		}

		return retained
	})
}
