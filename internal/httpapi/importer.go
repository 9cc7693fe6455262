package httpapi

import (
	"net/http"

	"buildmart-be/internal/importer"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type importSummaryResponse struct {
	Created   int                 `json:"created"`
	Updated   int                 `json:"updated"`
	Failed    int                 `json:"failed"`
	RowErrors []importer.RowError `json:"rowErrors"`
}

func applyImportHandler(imports importer.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid import job id"})
			return
		}

		summary, err := imports.Apply(c.Request.Context(), id)
		if err != nil {
			writeError(c, err)
			return
		}

		c.JSON(http.StatusOK, importSummaryResponse{
			Created:   summary.Created,
			Updated:   summary.Updated,
			Failed:    summary.Failed,
			RowErrors: summary.RowErrors,
		})
	}
}
