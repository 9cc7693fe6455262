package httpapi

import (
	"errors"
	"net/http"

	"buildmart-be/internal/importer"
	"buildmart-be/internal/logger"
	"buildmart-be/internal/order"
	"buildmart-be/internal/rfq"
	"buildmart-be/internal/shipment"
	"buildmart-be/internal/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeError translates domain errors to HTTP statuses. Anything not
// recognized is a persistence failure and surfaces as a generic 500 so
// internals never leak to the client.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, order.ErrInvalidQuantity),
		errors.Is(err, order.ErrNegativePrice),
		errors.Is(err, order.ErrMissingCity),
		errors.Is(err, order.ErrMissingAddress),
		errors.Is(err, order.ErrUnknownMethod),
		errors.Is(err, shipment.ErrInvalidStatus),
		errors.Is(err, shipment.ErrReasonRequired),
		errors.Is(err, rfq.ErrEmptyDescription):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	case errors.Is(err, user.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})

	case errors.Is(err, order.ErrUnauthorized),
		errors.Is(err, shipment.ErrUnauthorized),
		errors.Is(err, rfq.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "access denied"})

	case errors.Is(err, importer.ErrWrongStore):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})

	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, shipment.ErrShipmentNotFound),
		errors.Is(err, importer.ErrJobNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})

	case errors.Is(err, shipment.ErrInvalidTransition),
		errors.Is(err, importer.ErrJobNotMapped):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, importer.ErrUnreadableCSV):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})

	default:
		logger.FromCtx(c.Request.Context()).Error("request failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func writeBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
}
