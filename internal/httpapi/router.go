package httpapi

import (
	"net/http"

	"buildmart-be/internal/importer"
	"buildmart-be/internal/metrics"
	"buildmart-be/internal/middleware"
	"buildmart-be/internal/order"
	"buildmart-be/internal/rfq"
	"buildmart-be/internal/shipment"
	"buildmart-be/internal/user"
	"buildmart-be/internal/utils"

	"github.com/gin-gonic/gin"
)

// Services bundles everything the router needs. Fields are interfaces so
// tests can plug in mocks per handler.
type Services struct {
	Users     user.Service
	Orders    order.Service
	Shipments shipment.Service
	Imports   importer.Service
	RFQs      rfq.Service
	Stats     metrics.Repository
}

func NewRouter(s Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging())
	r.Use(middleware.Auth())
	r.Use(middleware.RateLimit())

	r.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	v1 := r.Group("/api/v1")

	v1.POST("/auth/register", registerHandler(s.Users))
	v1.POST("/auth/login", loginHandler(s.Users))

	authed := v1.Group("")
	authed.Use(middleware.RequireAuth())
	{
		authed.POST("/orders", createOrderHandler(s.Orders))
		authed.GET("/orders/:id", getOrderHandler(s.Orders))
		authed.GET("/shipments/:id/events", shipmentTimelineHandler(s.Shipments))
		authed.POST("/rfqs", createRFQHandler(s.RFQs))
	}

	partner := v1.Group("")
	partner.Use(middleware.RequireAuth(), middleware.RequireRole(utils.RolePartner, utils.RoleAdmin))
	{
		partner.PATCH("/shipments/:id/status", updateShipmentStatusHandler(s.Shipments))
		partner.POST("/imports/:id/apply", applyImportHandler(s.Imports))
		partner.GET("/rfqs", listRFQsHandler(s.RFQs))
		partner.GET("/partner/dashboard", partnerDashboardHandler(s.Stats))
	}

	return r
}
