package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
)

// Source is the raw schedule data access the Catalog caches over.
type Source interface {
	TimeSlots(ctx context.Context, dayOfWeek int) ([]string, error)
	Courts(ctx context.Context) ([]Court, error)
	Periods(ctx context.Context) ([]Period, error)
	PeriodAssignments(ctx context.Context, dayOfWeek int) ([]SlotAssignment, error)
	Tariffs(ctx context.Context) ([]Tariff, error)
}

// Catalog caches the rarely-changing schedule data (slot catalog, courts,
// periods, tariffs) in front of the repository.
type Catalog struct {
	source Source
	cache  *cache.Cache
}

func NewCatalog(source Source) *Catalog {
	return &Catalog{
		source: source,
		cache:  cache.New(5*time.Minute, 10*time.Minute),
	}
}

func (c *Catalog) TimeSlots(ctx context.Context, dayOfWeek int) ([]string, error) {
	key := fmt.Sprintf("timeslots-%d", dayOfWeek)

	if cached, found := c.cache.Get(key); found {
		return cached.([]string), nil
	}

	slots, err := c.source.TimeSlots(ctx, dayOfWeek)

	if err != nil {
		return nil, err
	}

	c.cache.Set(key, slots, cache.DefaultExpiration)

	return slots, nil
}

func (c *Catalog) Courts(ctx context.Context) ([]Court, error) {
	if cached, found := c.cache.Get("courts"); found {
		return cached.([]Court), nil
	}

	courts, err := c.source.Courts(ctx)

	if err != nil {
		return nil, err
	}

	c.cache.Set("courts", courts, cache.DefaultExpiration)

	return courts, nil
}

func (c *Catalog) Periods(ctx context.Context) ([]Period, error) {
	if cached, found := c.cache.Get("periods"); found {
		return cached.([]Period), nil
	}

	periods, err := c.source.Periods(ctx)

	if err != nil {
		return nil, err
	}

	c.cache.Set("periods", periods, cache.DefaultExpiration)

	return periods, nil
}

func (c *Catalog) PeriodAssignments(ctx context.Context, dayOfWeek int) ([]SlotAssignment, error) {
	key := fmt.Sprintf("assignments-%d", dayOfWeek)

	if cached, found := c.cache.Get(key); found {
		return cached.([]SlotAssignment), nil
	}

	assignments, err := c.source.PeriodAssignments(ctx, dayOfWeek)

	if err != nil {
		return nil, err
	}

	c.cache.Set(key, assignments, cache.DefaultExpiration)

	return assignments, nil
}

func (c *Catalog) Tariffs(ctx context.Context) ([]Tariff, error) {
	if cached, found := c.cache.Get("tariffs"); found {
		return cached.([]Tariff), nil
	}

	tariffs, err := c.source.Tariffs(ctx)

	if err != nil {
		return nil, err
	}

	c.cache.Set("tariffs", tariffs, cache.DefaultExpiration)

	return tariffs, nil
}
