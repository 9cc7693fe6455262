package httpapi

import (
	"net/http"
	"time"

	"buildmart-be/internal/shipment"
	"buildmart-be/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type statusChangeRequest struct {
	Status     string  `json:"status" binding:"required"`
	Message    *string `json:"message"`
	ReasonCode *string `json:"reasonCode"`
	Visibility string  `json:"visibility"`
}

type eventResponse struct {
	ID         string  `json:"id"`
	Status     string  `json:"status"`
	Message    *string `json:"message,omitempty"`
	ReasonCode *string `json:"reasonCode,omitempty"`
	Visibility string  `json:"visibility"`
	CreatedAt  string  `json:"createdAt"`
}

func updateShipmentStatusHandler(shipments shipment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shipment id"})
			return
		}

		var req statusChangeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}

		input := shipment.StatusChangeInput{
			ShipmentID: id,
			Status:     shipment.Status(req.Status),
			Message:    req.Message,
			ReasonCode: req.ReasonCode,
			Visibility: shipment.Visibility(req.Visibility),
		}

		if err := shipments.RecordStatusChange(c.Request.Context(), input); err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

func shipmentTimelineHandler(shipments shipment.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid shipment id"})
			return
		}

		// Internal events stay hidden from buyers regardless of the flag.
		role := utils.GetUserRoleFromContext(c.Request.Context())
		includeInternal := c.Query("includeInternal") == "true" &&
			(role == utils.RolePartner || role == utils.RoleAdmin)

		events, err := shipments.Timeline(c.Request.Context(), id, includeInternal)
		if err != nil {
			writeError(c, err)
			return
		}

		out := make([]eventResponse, 0, len(events))
		for _, e := range events {
			out = append(out, eventResponse{
				ID:         e.ID.String(),
				Status:     string(e.Status),
				Message:    e.Message,
				ReasonCode: e.ReasonCode,
				Visibility: string(e.Visibility),
				CreatedAt:  e.CreatedAt.Format(time.RFC3339),
			})
		}

		c.JSON(http.StatusOK, gin.H{"events": out})
	}
}
