package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Asilbek2706/QR-Menu-Editor/internal/adapter/http/middleware"
)

// NewRouter assembles the full HTTP surface. The application has two
// entry modes, selected by the table query parameter: with it, the
// customer surface scoped to that table; without it, the operator
// console.
func NewRouter(log *slog.Logger, ch *CustomerHandler, oh *OperatorHandler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Metrics(), middleware.Logging(log))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Mode probe: the entry point a scanned QR code lands on.
	r.GET("/", func(c *gin.Context) {
		if table := c.Query("table"); table != "" {
			c.JSON(http.StatusOK, gin.H{
				"mode":  "customer",
				"table": table,
				"views": []string{"menu", "order"},
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"mode":  "operator",
			"views": []string{"editor", "dashboard", "qr_share", "preview"},
		})
	})

	v1 := r.Group("/v1")
	{
		// customer surface (table-scoped)
		v1.GET("/menu", ch.Menu)
		v1.POST("/orders", ch.Checkout)
		v1.GET("/tables/:table/order", ch.TrackOrder)

		// operator surface
		v1.GET("/dashboard", oh.Dashboard)
		v1.POST("/orders/:id/start", oh.Start)
		v1.POST("/orders/:id/ready", oh.Ready)
		v1.POST("/orders/:id/cancel", oh.Cancel)
		v1.GET("/restaurant", oh.GetRestaurant)
		v1.PUT("/restaurant", oh.ReplaceRestaurant)
		v1.POST("/tables", oh.AddTable)
		v1.GET("/tables/:table/qr.png", oh.TableQR)
		v1.POST("/items/:id/suggest", oh.SuggestDescription)
	}

	return r
}
