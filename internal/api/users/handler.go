package users

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"menyqr-app/internal/profile"
)

// GetCurrentUser serves GET /dashboard/me. The entitled list mirrors the
// server-side gates so the client can hide controls; it grants nothing.
func GetCurrentUser(c *gin.Context) {
	p, ok := profile.From(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	c.JSON(http.StatusOK, BuildMeResponse(p))
}
