package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"menyqr-app/config"
	"menyqr-app/internal/api/billing"
	"menyqr-app/internal/api/pages"
	"menyqr-app/internal/api/session"
	stripewebhooks "menyqr-app/internal/api/stripewebhook"
	"menyqr-app/internal/api/users"
	"menyqr-app/internal/app/http/middleware"
	guard "menyqr-app/internal/domain/routes"
	"menyqr-app/internal/infra/identity"
	"menyqr-app/internal/infra/stripe"
	"menyqr-app/internal/profile"
	"menyqr-app/internal/repository"
)

// Deps are the collaborators the HTTP layer is assembled from.
// Verifier and Gateway stay nil when their provider is not configured.
type Deps struct {
	Config   *config.Config
	Store    repository.Store
	Profiles *profile.Service
	Tokens   *identity.Tokens
	Verifier session.IDVerifier
	Gateway  billing.Gateway
	Log      *zap.Logger
}

// SessionChecker picks what the route guard treats as a session.
func SessionChecker(cfg config.SessionConfig, tokens *identity.Tokens) identity.SessionChecker {
	if cfg.Verify {
		return identity.TokenChecker{Cookie: cfg.Cookie, Tokens: tokens}
	}
	return identity.PresenceChecker{Cookie: cfg.Cookie}
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(d.Log))
	r.Use(middleware.Metrics())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{d.Config.Server.CORSOrigin},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	cfg := d.Config
	prices := stripe.PricesFromConfig(cfg.Stripe)
	secure := strings.HasPrefix(cfg.Server.BaseURL, "https://")

	r.Use(middleware.RouteGuard(guard.NewGuard(), SessionChecker(cfg.Session, d.Tokens), d.Log))

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Raw body: the Stripe signature covers it byte for byte.
	webhook := &stripewebhooks.Handler{
		Secret:   cfg.Stripe.WebhookSecret,
		Prices:   prices,
		Users:    d.Store,
		Profiles: d.Profiles,
		Log:      d.Log,
	}
	r.POST("/api/billing/webhook", webhook.Handle)

	sess := &session.Handler{
		Verifier: d.Verifier,
		Users:    d.Store,
		Tokens:   d.Tokens,
		Profiles: d.Profiles,
		Cookie:   cfg.Session.Cookie,
		Secure:   secure,
		Log:      d.Log,
	}
	// Stored text stays raw; the public menu sanitises it when rendered.
	api := r.Group("/api")
	api.POST("/session", sess.Create)
	api.POST("/logout", sess.Logout)

	h := pages.NewHandler(d.Store, guard.DefaultTable, cfg.Server.BaseURL, prices, d.Log)

	r.GET("/", h.Home)
	r.GET("/login", h.Login)
	r.GET("/register", h.Register)
	r.GET("/m/:menuId", h.PublicMenu)

	dash := r.Group("/dashboard")
	dash.Use(middleware.CurrentUser(cfg.Session.Cookie, d.Tokens, d.Profiles, d.Log))
	dash.GET("", h.Overview)
	dash.GET("/menus", h.Menus)
	dash.GET("/analytics", h.Analytics)
	dash.GET("/subscription", h.Subscription)
	dash.GET("/settings", h.Settings)
	dash.GET("/me", users.GetCurrentUser)

	checkout := &billing.CheckoutHandler{
		Gateway:  d.Gateway,
		Prices:   prices,
		Users:    d.Store,
		Profiles: d.Profiles,
		BaseURL:  cfg.Server.BaseURL,
		Log:      d.Log,
	}
	dash.POST("/subscription/checkout", middleware.SanitizeJSONBody(), checkout.Create)
}
