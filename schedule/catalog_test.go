package schedule_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/squashclub/court-booking-backend/schedule"
	sc_mocks "github.com/squashclub/court-booking-backend/schedule/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCatalogCachesCourts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := sc_mocks.NewMockSource(ctrl)
	catalog := schedule.NewCatalog(source)
	ctx := context.Background()

	courts := []schedule.Court{
		{ID: 1, Number: 1, Description: "VISIONS"},
		{ID: 2, Number: 2, Description: "GLASS BACK"},
	}

	source.EXPECT().Courts(ctx).Return(courts, nil).Times(1)

	first, err := catalog.Courts(ctx)
	require.NoError(t, err)
	require.Equal(t, courts, first)

	// Second read must come from the cache, not the source.
	second, err := catalog.Courts(ctx)
	require.NoError(t, err)
	require.Equal(t, courts, second)
}

func TestCatalogCachesTimeSlotsPerDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := sc_mocks.NewMockSource(ctrl)
	catalog := schedule.NewCatalog(source)
	ctx := context.Background()

	sundaySlots := []string{"05:30", "06:15", "19:00"}
	mondaySlots := []string{"05:30", "06:15", "21:15"}

	source.EXPECT().TimeSlots(ctx, 1).Return(sundaySlots, nil).Times(1)
	source.EXPECT().TimeSlots(ctx, 2).Return(mondaySlots, nil).Times(1)

	got, err := catalog.TimeSlots(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, sundaySlots, got)

	got, err = catalog.TimeSlots(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, mondaySlots, got)

	got, err = catalog.TimeSlots(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, sundaySlots, got)
}

func TestCatalogDoesNotCacheErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	source := sc_mocks.NewMockSource(ctrl)
	catalog := schedule.NewCatalog(source)
	ctx := context.Background()

	periods := []schedule.Period{{ID: 1, Description: "NORMAL", Color: "#ffffff"}}

	source.EXPECT().Periods(ctx).Return(nil, errors.New("db down")).Times(1)
	source.EXPECT().Periods(ctx).Return(periods, nil).Times(1)

	_, err := catalog.Periods(ctx)
	require.Error(t, err)

	got, err := catalog.Periods(ctx)
	require.NoError(t, err)
	require.Equal(t, periods, got)
}

func TestDayOfWeek(t *testing.T) {
	// 2025-01-05 is a Sunday.
	sunday := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	require.Equal(t, 1, schedule.DayOfWeek(sunday))
	require.Equal(t, 2, schedule.DayOfWeek(sunday.AddDate(0, 0, 1)))
	require.Equal(t, 7, schedule.DayOfWeek(sunday.AddDate(0, 0, 6)))
}
