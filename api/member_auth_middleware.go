package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/squashclub/court-booking-backend/member"
)

type MemberFinder interface {
	FindByCredentials(ctx context.Context, memNo, pin int) (member.Member, error)
}

// MemberAuth validates the X-Member-No/X-Member-Pin header pair against
// the member list on every request and stores the member in the context
// under "member". Blocked members are rejected outright.
func MemberAuth(members MemberFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		memNo, err := strconv.Atoi(c.GetHeader("X-Member-No"))

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		pin, err := strconv.Atoi(c.GetHeader("X-Member-Pin"))

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authentication"})
			c.Abort()
			return
		}

		m, err := members.FindByCredentials(c.Request.Context(), memNo, pin)

		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid authentication"})
			c.Abort()
			return
		}

		if m.Blocked {
			c.JSON(http.StatusForbidden, gin.H{"error": "member is blocked"})
			c.Abort()
			return
		}

		c.Set("member", m)
	}
}
