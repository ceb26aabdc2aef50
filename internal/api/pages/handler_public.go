package pages

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"menyqr-app/internal/domain/menus"
	"menyqr-app/internal/domain/plans"
	"menyqr-app/internal/profile"
	"menyqr-app/internal/repository"
)

// GET /m/:menuId
// Public; no session involved.
func (h *Handler) PublicMenu(c *gin.Context) {
	id := c.Param("menuId")
	if !menus.ValidID(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return
	}
	ctx := c.Request.Context()

	m, err := h.Store.GetMenu(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu not found"})
		return
	}
	if err != nil {
		h.internalError(c, "Failed to load menu", err)
		return
	}

	owner := profile.Profile{Tier: plans.Freemium}
	u, err := h.Store.GetUser(ctx, m.RestaurantID)
	switch {
	case err == nil:
		owner = profile.Profile{User: u, Tier: plans.ParseTier(u.Tier)}
	case !errors.Is(err, repository.ErrNotFound):
		h.internalError(c, "Failed to load restaurant", err)
		return
	}

	c.JSON(http.StatusOK, BuildPublicMenu(h.policy, owner, m))
}
