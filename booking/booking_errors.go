package booking

import "errors"

var (
	ErrSlotTaken           = errors.New("slot already taken")
	ErrSlotNotFound        = errors.New("slot not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrInvalidSlot         = errors.New("invalid slot id")
	ErrInvalidCourt        = errors.New("invalid court number")
	ErrPastSlot            = errors.New("slot is in the past")
	ErrInsufficientCredit  = errors.New("insufficient credit")
	ErrDailyLimitExceeded  = errors.New("daily booking limit exceeded")
	ErrWeeklyLimitExceeded = errors.New("weekly booking limit exceeded")
	ErrCreditUpdateFailed  = errors.New("failed to update credit")
	ErrNoTariff            = errors.New("no tariff configured")
)
