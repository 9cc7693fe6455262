package httpapi

import (
	"net/http"

	"buildmart-be/internal/metrics"
	"buildmart-be/internal/utils"

	"github.com/gin-gonic/gin"
)

type dashboardResponse struct {
	OrdersByStatus   map[string]int `json:"ordersByStatus"`
	Revenue          string         `json:"revenue"`
	PendingShipments int            `json:"pendingShipments"`
}

func partnerDashboardHandler(stats metrics.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeID, ok := utils.GetStoreIDFromContext(c.Request.Context())
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "no store associated with this account"})
			return
		}

		s, err := stats.DashboardStats(c.Request.Context(), storeID)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, dashboardResponse{
			OrdersByStatus:   s.OrdersByStatus,
			Revenue:          s.Revenue.String(),
			PendingShipments: s.PendingShipments,
		})
	}
}
