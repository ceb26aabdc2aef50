package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"menyqr-app/internal/domain/routes"
	"menyqr-app/internal/infra/identity"
	"menyqr-app/internal/metrics"
)

// RouteGuard applies the guard decision to every request before any page
// handler runs. Excluded paths (API, static files) are passed through.
func RouteGuard(guard *routes.Guard, checker identity.SessionChecker, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		p := routes.Normalize(c.Request.URL.Path)
		if guard.IsExcluded(p) {
			c.Next()
			return
		}

		d := guard.Decide(p, checker.HasSession(c.Request))
		metrics.RouteDecisions.WithLabelValues(string(guard.Classify(p)), string(d.Action)).Inc()

		if d.Allowed() {
			c.Next()
			return
		}

		log.Debug("route guard redirect",
			zap.String("path", p),
			zap.String("location", d.Location),
			zap.String("request_id", c.GetString("request_id")),
		)
		c.Redirect(http.StatusFound, d.Location)
		c.Abort()
	}
}
