package booking_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/squashclub/court-booking-backend/booking"
	"github.com/squashclub/court-booking-backend/booking/mocks"
	"github.com/squashclub/court-booking-backend/member"
	"github.com/squashclub/court-booking-backend/schedule"
)

// 0.22/min over 45 minutes rounds to a 10.00 booking cost.
var testTariffs = []schedule.Tariff{
	{
		CourtDescription: "Squash",
		RatesPerMinute:   []float64{0.22, 0.30},
		CancellationFees: []float64{5},
	},
}

func setupFinance(t *testing.T) (*booking.Finance, *mocks.MockMemberStore, *mocks.MockScheduleSource) {
	t.Helper()

	ctrl := gomock.NewController(t)
	members := mocks.NewMockMemberStore(ctrl)
	scheduleSource := mocks.NewMockScheduleSource(ctrl)

	return booking.NewFinance(members, scheduleSource), members, scheduleSource
}

func TestApplyDebitsBookingThenCancellation(t *testing.T) {
	finance, members, scheduleSource := setupFinance(t)

	scheduleSource.EXPECT().Tariffs(gomock.Any()).Return(testTariffs, nil).Times(2)

	members.EXPECT().FindByNumber(gomock.Any(), 101).
		Return(member.Member{MemberNo: 101, Credit: 100}, nil)
	members.EXPECT().UpdateCredit(gomock.Any(), 101, 90.0).Return(nil)

	adj, err := finance.Apply(context.Background(), 101, booking.CostBooking)

	require.NoError(t, err)
	assert.Equal(t, 10.0, adj.Cost)
	assert.Equal(t, 100.0, adj.PreviousCredit)
	assert.Equal(t, 90.0, adj.NewCredit)

	// Cancelling afterwards charges the fee on top; nothing is refunded.
	members.EXPECT().FindByNumber(gomock.Any(), 101).
		Return(member.Member{MemberNo: 101, Credit: 90}, nil)
	members.EXPECT().UpdateCredit(gomock.Any(), 101, 85.0).Return(nil)

	adj, err = finance.Apply(context.Background(), 101, booking.CostCancellation)

	require.NoError(t, err)
	assert.Equal(t, 5.0, adj.Cost)
	assert.Equal(t, 85.0, adj.NewCredit)
}

func TestApplyReportsPersistFailure(t *testing.T) {
	finance, members, scheduleSource := setupFinance(t)

	scheduleSource.EXPECT().Tariffs(gomock.Any()).Return(testTariffs, nil)
	members.EXPECT().FindByNumber(gomock.Any(), 101).
		Return(member.Member{MemberNo: 101, Credit: 100}, nil)
	members.EXPECT().UpdateCredit(gomock.Any(), 101, 90.0).Return(assert.AnError)

	adj, err := finance.Apply(context.Background(), 101, booking.CostBooking)

	assert.ErrorIs(t, err, booking.ErrCreditUpdateFailed)
	// The computed adjustment still comes back for warning responses.
	assert.Equal(t, 10.0, adj.Cost)
	assert.Equal(t, 100.0, adj.PreviousCredit)
}

func TestApplyNoTariffConfigured(t *testing.T) {
	finance, members, scheduleSource := setupFinance(t)

	scheduleSource.EXPECT().Tariffs(gomock.Any()).Return(nil, nil)
	members.EXPECT().FindByNumber(gomock.Any(), 101).
		Return(member.Member{MemberNo: 101, Credit: 100}, nil)

	_, err := finance.Apply(context.Background(), 101, booking.CostBooking)

	assert.ErrorIs(t, err, booking.ErrNoTariff)
}

func TestQuoteBookingCosts(t *testing.T) {
	finance, _, scheduleSource := setupFinance(t)

	scheduleSource.EXPECT().Periods(gomock.Any()).Return([]schedule.Period{
		{ID: 1, Description: "Off-peak"},
		{ID: 2, Description: "Peak"},
	}, nil)
	scheduleSource.EXPECT().Tariffs(gomock.Any()).Return(testTariffs, nil)

	costs, err := finance.QuoteBookingCosts(context.Background())

	require.NoError(t, err)
	require.Len(t, costs, 2)
	assert.Equal(t, booking.PeriodCost{PeriodID: 1, PeriodDescription: "Off-peak", Cost: 10}, costs[0])
	assert.Equal(t, booking.PeriodCost{PeriodID: 2, PeriodDescription: "Peak", Cost: 14}, costs[1])
}
