package session

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"menyqr-app/internal/domain/plans"
	"menyqr-app/internal/domain/users"
	"menyqr-app/internal/infra/identity"
	"menyqr-app/internal/repository"
)

type IDVerifier interface {
	Verify(ctx context.Context, rawIDToken string) (identity.Claims, error)
}

// Invalidator drops cached profile data after sign-in refreshes it.
type Invalidator interface {
	Invalidate(ctx context.Context, userID string)
}

type Handler struct {
	Verifier IDVerifier // nil when no identity issuer is configured
	Users    repository.Writer
	Tokens   *identity.Tokens
	Profiles Invalidator
	Cookie   string
	Secure   bool
	Log      *zap.Logger
}

// POST /api/session
// Trades an identity provider ID token for the session cookie.
func (h *Handler) Create(c *gin.Context) {
	if h.Verifier == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Sign-in is not configured"})
		return
	}

	var input struct {
		IDToken        string `json:"id_token" binding:"required"`
		RestaurantName string `json:"restaurant_name"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid id_token"})
		return
	}

	ctx := c.Request.Context()
	claims, err := h.Verifier.Verify(ctx, input.IDToken)
	if err != nil {
		h.Log.Info("id token rejected", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid id_token"})
		return
	}

	user := userFromClaims(claims, input.RestaurantName)
	if err := h.Users.UpsertUser(ctx, &user); err != nil {
		h.Log.Error("upsert user failed", zap.String("user_id", claims.Subject), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store user"})
		return
	}
	if h.Profiles != nil {
		h.Profiles.Invalidate(ctx, user.ID)
	}

	token, err := h.Tokens.Issue(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create session"})
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.Cookie, token, int(h.Tokens.TTL.Seconds()), "/", "", h.Secure, true)
	c.JSON(http.StatusOK, gin.H{"redirect": "/dashboard"})
}

// POST /api/logout
func (h *Handler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.Cookie, "", -1, "/", "", h.Secure, true)
	c.JSON(http.StatusOK, gin.H{"redirect": "/"})
}

// New accounts start on the free tier; UpsertUser keeps the tier of
// existing ones.
func userFromClaims(claims identity.Claims, restaurantName string) users.User {
	name := strings.TrimSpace(restaurantName)
	if name == "" {
		name = strings.TrimSpace(claims.Name)
	}
	if name == "" {
		name, _, _ = strings.Cut(claims.Email, "@")
	}

	var photo *string
	if claims.Picture != "" {
		p := claims.Picture
		photo = &p
	}

	return users.User{
		ID:          claims.Subject,
		DisplayName: name,
		Email:       claims.Email,
		PhotoURL:    photo,
		Tier:        plans.Freemium.Key(),
	}
}
