package booking

import (
	"context"
	"fmt"
	"log/slog"
	"math"
)

// slotMinutes is the billable length of one booking slot.
const slotMinutes = 45

// Finance debits booking costs and cancellation fees from member credit.
// Both kinds are debits: cancelling does not refund the booking cost, it
// charges a fee on top.
type Finance struct {
	members  MemberStore
	schedule ScheduleSource
	logger   *slog.Logger
}

func NewFinance(members MemberStore, scheduleSource ScheduleSource) *Finance {
	return &Finance{
		members:  members,
		schedule: scheduleSource,
		logger:   slog.Default().With("component", "finance"),
	}
}

// Apply charges the member for one booking or cancellation and persists
// the new balance. A persist failure returns the computed adjustment
// together with ErrCreditUpdateFailed so callers can report a committed
// operation whose debit is outstanding.
func (f *Finance) Apply(ctx context.Context, memNo int, kind CostKind) (Adjustment, error) {
	m, err := f.members.FindByNumber(ctx, memNo)

	if err != nil {
		return Adjustment{}, err
	}

	cost, err := f.cost(ctx, kind)

	if err != nil {
		return Adjustment{}, err
	}

	adj := Adjustment{
		Kind:           kind,
		Cost:           cost,
		PreviousCredit: m.Credit,
		NewCredit:      roundCurrency(m.Credit - cost),
	}

	if err := f.members.UpdateCredit(ctx, memNo, adj.NewCredit); err != nil {
		f.logger.Error("failed to persist credit",
			"error", err, "member_no", memNo, "kind", kind.String(), "cost", cost)
		return adj, fmt.Errorf("%w: %w", ErrCreditUpdateFailed, err)
	}

	return adj, nil
}

// QuoteBookingCosts returns the 45-minute booking cost per period. Rates
// align with the ordered period list by position.
func (f *Finance) QuoteBookingCosts(ctx context.Context) ([]PeriodCost, error) {
	periods, err := f.schedule.Periods(ctx)

	if err != nil {
		return nil, err
	}

	tariffs, err := f.schedule.Tariffs(ctx)

	if err != nil {
		return nil, err
	}

	var rates []float64

	for _, t := range tariffs {
		if len(t.RatesPerMinute) > 0 {
			rates = t.RatesPerMinute
			break
		}
	}

	var costs []PeriodCost

	for i, p := range periods {
		if i >= len(rates) {
			break
		}

		costs = append(costs, PeriodCost{
			PeriodID:          p.ID,
			PeriodDescription: p.Description,
			Cost:              math.Round(rates[i] * slotMinutes),
		})
	}

	return costs, nil
}

// cost resolves the amount to charge. All courts share one tariff, so
// the first configured value wins: the first non-zero per-minute rate
// for bookings, the first non-zero flat fee for cancellations.
func (f *Finance) cost(ctx context.Context, kind CostKind) (float64, error) {
	tariffs, err := f.schedule.Tariffs(ctx)

	if err != nil {
		return 0, err
	}

	for _, t := range tariffs {
		switch kind {
		case CostCancellation:
			if len(t.CancellationFees) > 0 {
				return t.CancellationFees[0], nil
			}
		default:
			if len(t.RatesPerMinute) > 0 {
				return math.Round(t.RatesPerMinute[0] * slotMinutes), nil
			}
		}
	}

	return 0, ErrNoTariff
}

// roundCurrency keeps balances at two decimals after float arithmetic.
func roundCurrency(amount float64) float64 {
	return math.Round(amount*100) / 100
}
