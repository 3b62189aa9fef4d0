package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	bk "github.com/squashclub/court-booking-backend/booking"
	"github.com/squashclub/court-booking-backend/member"
)

type BookingService interface {
	CreateBooking(ctx context.Context, memNo int, date string, slotID, court int) (bk.Result, error)
	CancelBooking(ctx context.Context, memNo int, date string, slotID, court int) (bk.Result, error)
	MemberBookings(ctx context.Context, memNo int, from, to string) ([]bk.MemberBooking, error)
	DayGrid(ctx context.Context, memNo int, date string) ([]bk.GridRow, error)
}

type LimitService interface {
	CheckDaily(ctx context.Context, memNo int, date time.Time) ([]bk.PeriodUsage, error)
	CheckWeekly(ctx context.Context, memNo int, date time.Time) ([]bk.PeriodUsage, error)
}

type CostService interface {
	QuoteBookingCosts(ctx context.Context) ([]bk.PeriodCost, error)
}

type BookingHandler struct {
	service BookingService
	limits  LimitService
	costs   CostService
	loc     *time.Location
}

func NewBookingHandler(service BookingService, limits LimitService, costs CostService, loc *time.Location) *BookingHandler {
	return &BookingHandler{service: service, limits: limits, costs: costs, loc: loc}
}

func (h *BookingHandler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.Create)
	rg.POST("/cancel", h.Cancel)
	rg.GET("/grid", h.Grid)
	rg.GET("/mine", h.Mine)
	rg.GET("/limits/daily", h.DailyLimits)
	rg.GET("/limits/weekly", h.WeeklyLimits)
	rg.GET("/costs", h.Costs)
}

type bookingRequest struct {
	Date   string `json:"date" binding:"required"`
	SlotID int    `json:"slotId" binding:"required"`
	Court  int    `json:"court" binding:"required"`
}

func (h *BookingHandler) Create(c *gin.Context) {
	m := c.MustGet("member").(member.Member)

	var req bookingRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	result, err := h.service.CreateBooking(c.Request.Context(), m.MemberNo, req.Date, req.SlotID, req.Court)

	if err != nil {
		h.bookingError(c, err, "failed to create booking")
		return
	}

	c.IndentedJSON(http.StatusCreated, result)
}

func (h *BookingHandler) Cancel(c *gin.Context) {
	m := c.MustGet("member").(member.Member)

	var req bookingRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	result, err := h.service.CancelBooking(c.Request.Context(), m.MemberNo, req.Date, req.SlotID, req.Court)

	if err != nil {
		h.bookingError(c, err, "failed to cancel booking")
		return
	}

	c.IndentedJSON(http.StatusOK, result)
}

func (h *BookingHandler) Grid(c *gin.Context) {
	m := c.MustGet("member").(member.Member)
	date := c.Query("date")

	grid, err := h.service.DayGrid(c.Request.Context(), m.MemberNo, date)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to build booking grid"})
		return
	}

	c.IndentedJSON(http.StatusOK, grid)
}

func (h *BookingHandler) Mine(c *gin.Context) {
	m := c.MustGet("member").(member.Member)

	bookings, err := h.service.MemberBookings(c.Request.Context(), m.MemberNo, c.Query("startDate"), c.Query("endDate"))

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to get bookings"})
		return
	}

	c.IndentedJSON(http.StatusOK, bookings)
}

func (h *BookingHandler) DailyLimits(c *gin.Context) {
	h.limitUsage(c, h.limits.CheckDaily)
}

func (h *BookingHandler) WeeklyLimits(c *gin.Context) {
	h.limitUsage(c, h.limits.CheckWeekly)
}

func (h *BookingHandler) limitUsage(c *gin.Context, check func(ctx context.Context, memNo int, date time.Time) ([]bk.PeriodUsage, error)) {
	m := c.MustGet("member").(member.Member)

	date, err := time.ParseInLocation(time.DateOnly, c.Query("date"), h.loc)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse date"})
		return
	}

	usages, err := check(c.Request.Context(), m.MemberNo, date)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check limits"})
		return
	}

	c.IndentedJSON(http.StatusOK, usages)
}

func (h *BookingHandler) Costs(c *gin.Context) {
	costs, err := h.costs.QuoteBookingCosts(c.Request.Context())

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get booking costs"})
		return
	}

	c.IndentedJSON(http.StatusOK, costs)
}

func (h *BookingHandler) bookingError(c *gin.Context, err error, fallback string) {
	c.Error(err)

	switch {
	case errors.Is(err, bk.ErrSlotTaken):
		c.JSON(http.StatusConflict, gin.H{"error": "slot already taken"})
	case errors.Is(err, bk.ErrSlotNotFound), errors.Is(err, bk.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	case errors.Is(err, bk.ErrInvalidSlot), errors.Is(err, bk.ErrInvalidCourt):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid slot or court"})
	case errors.Is(err, bk.ErrPastSlot):
		c.JSON(http.StatusForbidden, gin.H{"error": "slot is in the past"})
	case errors.Is(err, bk.ErrInsufficientCredit):
		c.JSON(http.StatusForbidden, gin.H{"error": "insufficient credit"})
	case errors.Is(err, bk.ErrDailyLimitExceeded):
		c.JSON(http.StatusForbidden, gin.H{"error": "daily booking limit exceeded"})
	case errors.Is(err, bk.ErrWeeklyLimitExceeded):
		c.JSON(http.StatusForbidden, gin.H{"error": "weekly booking limit exceeded"})
	case errors.Is(err, member.ErrMemberBlocked):
		c.JSON(http.StatusForbidden, gin.H{"error": "member is blocked"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}
