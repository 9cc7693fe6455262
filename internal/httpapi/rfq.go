package httpapi

import (
	"net/http"
	"time"

	"buildmart-be/internal/rfq"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type createRFQRequest struct {
	Description string           `json:"description" binding:"required"`
	Budget      *decimal.Decimal `json:"budget"`
	Phone       *string          `json:"phone"`
	City        *string          `json:"city"`
}

type rfqResponse struct {
	ID          uint    `json:"id"`
	Description string  `json:"description"`
	Budget      *string `json:"budget,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	City        *string `json:"city,omitempty"`
	Score       int     `json:"score"`
	Category    string  `json:"category"`
	CreatedAt   string  `json:"createdAt"`
}

func mapRFQ(r rfq.RFQ) rfqResponse {
	resp := rfqResponse{
		ID:          r.ID,
		Description: r.Description,
		Phone:       r.Phone,
		City:        r.City,
		Score:       r.Score,
		Category:    r.Category,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
	}
	if r.Budget != nil {
		s := r.Budget.String()
		resp.Budget = &s
	}
	return resp
}

func createRFQHandler(rfqs rfq.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createRFQRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			writeBindError(c, err)
			return
		}

		r, err := rfqs.Create(c.Request.Context(), rfq.CreateInput{
			Description: req.Description,
			Budget:      req.Budget,
			Phone:       req.Phone,
			City:        req.City,
		})
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusCreated, mapRFQ(*r))
	}
}

func listRFQsHandler(rfqs rfq.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := rfqs.List(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}

		out := make([]rfqResponse, 0, len(items))
		for _, r := range items {
			out = append(out, mapRFQ(r))
		}
		c.JSON(http.StatusOK, gin.H{"rfqs": out})
	}
}
