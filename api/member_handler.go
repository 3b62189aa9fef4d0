package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/squashclub/court-booking-backend/audit"
	"github.com/squashclub/court-booking-backend/member"
)

type MemberService interface {
	FindByCredentials(ctx context.Context, memNo, pin int) (member.Member, error)
	UpdateProfile(ctx context.Context, memNo int, update member.ProfileUpdate) error
}

type MemberHandler struct {
	service  MemberService
	auditLog audit.Log
	logger   *slog.Logger
}

func NewMemberHandler(service MemberService, auditLog audit.Log) *MemberHandler {
	return &MemberHandler{
		service:  service,
		auditLog: auditLog,
		logger:   slog.Default().With("component", "member-handler"),
	}
}

// RegisterPublic mounts the routes that run before authentication.
func (h *MemberHandler) RegisterPublic(rg *gin.RouterGroup) {
	rg.POST("/login", h.Login)
}

func (h *MemberHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/me", h.Me)
	rg.PUT("/me", h.UpdateProfile)
}

type loginRequest struct {
	MemberNo int `json:"memberNo" binding:"required"`
	Pin      int `json:"pin" binding:"required"`
}

func (h *MemberHandler) Login(c *gin.Context) {
	var req loginRequest

	if err := c.BindJSON(&req); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	m, err := h.service.FindByCredentials(c.Request.Context(), req.MemberNo, req.Pin)

	if err != nil {
		c.Error(err)
		if errors.Is(err, member.ErrMemberNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid member number or pin"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log in"})
		return
	}

	if m.Blocked {
		h.audit(c, m, audit.ActivityLogin, "internet login refused, member blocked")
		c.JSON(http.StatusForbidden, gin.H{"error": "member is blocked"})
		return
	}

	h.audit(c, m, audit.ActivityLogin, "internet login ok")

	c.IndentedJSON(http.StatusOK, m)
}

func (h *MemberHandler) Me(c *gin.Context) {
	m := c.MustGet("member").(member.Member)

	c.IndentedJSON(http.StatusOK, m)
}

func (h *MemberHandler) UpdateProfile(c *gin.Context) {
	m := c.MustGet("member").(member.Member)

	var update member.ProfileUpdate

	if err := c.BindJSON(&update); err != nil {
		c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse JSON body"})
		return
	}

	if err := h.service.UpdateProfile(c.Request.Context(), m.MemberNo, update); err != nil {
		c.Error(err)
		if errors.Is(err, member.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "member not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	h.audit(c, m, audit.ActivityProfileUpdate, "internet profile update ok")

	c.IndentedJSON(http.StatusOK, gin.H{"message": "profile updated"})
}

func (h *MemberHandler) audit(c *gin.Context, m member.Member, activity int, description string) {
	entry := audit.Entry{
		MemberNo:    m.MemberNo,
		CourtDate:   time.Now().Format("02/01/2006 15:04:05"),
		Description: m.DisplayName() + " - " + description,
		Activity:    activity,
	}

	if err := h.auditLog.Record(c.Request.Context(), entry); err != nil {
		h.logger.Error("failed to write audit record", "error", err, "activity", activity)
	}
}
