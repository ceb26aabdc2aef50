package pages

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"

	"menyqr-app/internal/domain/plans"
	"menyqr-app/internal/domain/routes"
	"menyqr-app/internal/infra/stripe"
	"menyqr-app/internal/profile"
	"menyqr-app/internal/repository"
)

// Handler answers every page with its view model as JSON.
type Handler struct {
	Store   repository.Reader
	Table   routes.Table
	BaseURL string
	Prices  stripe.PriceMap
	Log     *zap.Logger

	policy *bluemonday.Policy
}

func NewHandler(store repository.Reader, table routes.Table, baseURL string, prices stripe.PriceMap, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		Store:   store,
		Table:   table,
		BaseURL: baseURL,
		Prices:  prices,
		Log:     log,
		policy:  bluemonday.StrictPolicy(),
	}
}

// GET /
func (h *Handler) Home(c *gin.Context) {
	c.JSON(http.StatusOK, HomeResponse{
		Title:    "Den moderne måten å presentere menyen din på",
		Subtitle: "Bytt ut papirmenyer med en elegant, digital løsning. Enkel å opprette, umiddelbart oppdatert, og elsket av kunder.",
		CTALabel: "Opprett din gratis meny nå",
		CTAHref:  "/register",
		Features: []FeatureDTO{
			{Title: "Mobilvennlig Design", Description: "Menyene dine ser fantastiske ut på alle enheter, fra mobiltelefoner til nettbrett."},
			{Title: "Enkel Redigering", Description: "Oppdater retter, priser og kategorier på sekunder med vårt intuitive dra-og-slipp-verktøy."},
			{Title: "QR-Kode Generering", Description: "Få unike, nedlastbare QR-koder som gir kundene dine umiddelbar tilgang til menyen."},
		},
		Plans:        plans.Catalogue(),
		LoginHref:    "/login",
		RegisterHref: "/register",
	})
}

// GET /login
func (h *Handler) Login(c *gin.Context) {
	c.JSON(http.StatusOK, GuestResponse{
		Mode:        "login",
		Title:       "Logg inn",
		Description: "Skriv inn e-posten din under for å logge på kontoen din.",
		Providers:   []string{"password", "google"},
		SessionURL:  "/api/session",
		AltLabel:    "Registrer deg",
		AltHref:     "/register",
	})
}

// GET /register
func (h *Handler) Register(c *gin.Context) {
	c.JSON(http.StatusOK, GuestResponse{
		Mode:        "register",
		Title:       "Registrer deg",
		Description: "Opprett din konto for å starte med MenyQR.",
		Providers:   []string{"password", "google"},
		SessionURL:  "/api/session",
		AltLabel:    "Logg inn",
		AltHref:     "/login",
	})
}

func (h *Handler) currentProfile(c *gin.Context) (profile.Profile, bool) {
	p, ok := profile.From(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not identified"})
		return profile.Profile{}, false
	}
	return p, true
}

func (h *Handler) internalError(c *gin.Context, msg string, err error) {
	h.Log.Error(msg,
		zap.String("path", c.Request.URL.Path),
		zap.String("request_id", c.GetString("request_id")),
		zap.Error(err),
	)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
