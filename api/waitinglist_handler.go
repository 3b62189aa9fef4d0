package api

import (
	"errors"
	"log/slog"
	"net/http"
	netmail "net/mail"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/squashclub/court-booking-backend/audit"
	"github.com/squashclub/court-booking-backend/member"
	"github.com/squashclub/court-booking-backend/waitinglist"
)

type WaitingListStore interface {
	Add(date, timeSlot string, entry waitinglist.Entry) (bool, error)
	Remove(date, timeSlot string, memberNo int) error
	Entries(date, timeSlot string) ([]waitinglist.Entry, error)
	Cleanup(now time.Time) error
}

type WaitingListHandler struct {
	store    WaitingListStore
	auditLog audit.Log
	loc      *time.Location
	logger   *slog.Logger
}

func NewWaitingListHandler(store WaitingListStore, auditLog audit.Log, loc *time.Location) *WaitingListHandler {
	return &WaitingListHandler{
		store:    store,
		auditLog: auditLog,
		loc:      loc,
		logger:   slog.Default().With("component", "waitinglist-handler"),
	}
}

func (h *WaitingListHandler) Register(rg *gin.RouterGroup) {
	rg.POST("", h.Add)
	rg.DELETE("", h.Remove)
	rg.GET("", h.List)
}

type waitingListRequest struct {
	Date     string `json:"date" binding:"required"`
	TimeSlot string `json:"timeSlot" binding:"required"`
}

func (r waitingListRequest) validate() error {
	if _, err := time.Parse("02/01/2006", r.Date); err != nil {
		return errors.New("date must be dd/mm/yyyy")
	}

	if _, err := time.Parse("15:04", r.TimeSlot); err != nil {
		return errors.New("timeSlot must be HH:MM")
	}

	return nil
}

func (h *WaitingListHandler) Add(c *gin.Context) {
	m := c.MustGet("member").(member.Member)

	var req waitingListRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Notifications go to the address on file, so refuse to queue a
	// member who could never receive one.
	if _, err := netmail.ParseAddress(m.Email); err != nil {
		h.audit(c, m, req, audit.ActivityWaitingListFail, "waiting list add refused, no valid email")
		c.JSON(http.StatusBadRequest, gin.H{"error": "no valid email address on file"})
		return
	}

	// Stale dates are swept on every add, exactly as the nightly job
	// does.
	if err := h.store.Cleanup(time.Now().In(h.loc)); err != nil {
		h.logger.Error("waiting list cleanup failed", "error", err)
	}

	already, err := h.store.Add(req.Date, req.TimeSlot, waitinglist.Entry{
		MemberNo:  m.MemberNo,
		FirstName: m.FirstName,
		LastName:  m.Surname,
		Email:     m.Email,
		Status:    "waiting",
	})

	if err != nil {
		c.Error(err)
		h.audit(c, m, req, audit.ActivityWaitingListFail, "waiting list add failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to join waiting list"})
		return
	}

	h.audit(c, m, req, audit.ActivityWaitingListOK, "waiting list add ok")

	if already {
		c.IndentedJSON(http.StatusOK, gin.H{"message": "already on waiting list"})
		return
	}

	c.IndentedJSON(http.StatusCreated, gin.H{"message": "added to waiting list"})
}

func (h *WaitingListHandler) Remove(c *gin.Context) {
	m := c.MustGet("member").(member.Member)

	var req waitingListRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.store.Remove(req.Date, req.TimeSlot, m.MemberNo)

	if err != nil {
		c.Error(err)
		if errors.Is(err, waitinglist.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not on waiting list"})
			return
		}
		h.audit(c, m, req, audit.ActivityWaitingListFail, "waiting list remove failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to leave waiting list"})
		return
	}

	h.audit(c, m, req, audit.ActivityWaitingListOK, "waiting list remove ok")

	c.IndentedJSON(http.StatusOK, gin.H{"message": "removed from waiting list"})
}

func (h *WaitingListHandler) List(c *gin.Context) {
	req := waitingListRequest{Date: c.Query("date"), TimeSlot: c.Query("timeSlot")}

	if err := req.validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries, err := h.store.Entries(req.Date, req.TimeSlot)

	if err != nil {
		c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read waiting list"})
		return
	}

	if entries == nil {
		entries = []waitinglist.Entry{}
	}

	c.IndentedJSON(http.StatusOK, entries)
}

func (h *WaitingListHandler) audit(c *gin.Context, m member.Member, req waitingListRequest, activity int, description string) {
	entry := audit.Entry{
		MemberNo:    m.MemberNo,
		CourtDate:   req.Date + " " + req.TimeSlot + ":00",
		Description: m.DisplayName() + " - " + description,
		Activity:    activity,
	}

	if err := h.auditLog.Record(c.Request.Context(), entry); err != nil {
		h.logger.Error("failed to write audit record", "error", err, "activity", activity)
	}
}
