package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"menyqr-app/internal/infra/identity"
	"menyqr-app/internal/profile"
	"menyqr-app/internal/repository"
)

type ProfileResolver interface {
	Resolve(ctx context.Context, userID string) (profile.Profile, error)
}

// CurrentUser loads the signed-in restaurant for dashboard pages.
// A cookie that names nobody is cleared and the visitor sent to the login
// page; with presence-only guarding this is what breaks the
// /login -> /dashboard -> /login loop.
func CurrentUser(cookie string, tokens *identity.Tokens, profiles ProfileResolver, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, _ := c.Cookie(cookie)
		userID, err := tokens.Parse(raw)
		if err != nil {
			dropSession(c, cookie)
			return
		}

		p, err := profiles.Resolve(c.Request.Context(), userID)
		if errors.Is(err, repository.ErrNotFound) {
			log.Info("session for unknown user", zap.String("user_id", userID))
			dropSession(c, cookie)
			return
		}
		if err != nil {
			log.Error("resolve profile failed", zap.String("user_id", userID), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
			return
		}

		profile.Set(c, p)
		c.Next()
	}
}

func dropSession(c *gin.Context, cookie string) {
	c.SetCookie(cookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login")
	c.Abort()
}
