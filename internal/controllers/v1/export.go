package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/greenenvelopes/backend/internal/httputil"
	"github.com/greenenvelopes/backend/internal/models"
)

// RegisterExportRoutes registers the routes for the export with
// the RouterGroup that is passed.
func RegisterExportRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsExport)
	r.GET("", GetExport)
}

type ExportQuery struct {
	FromDate  time.Time `form:"fromDate"`  // Only records at and after this time
	UntilDate time.Time `form:"untilDate"` // Only records before and at this time
	Envelope  string    `form:"envelope"`  // Glob pattern for the envelope name, e.g. "Groc*"
}

type ExportListResponse struct {
	Data  []models.ExportRow `json:"data"`                                                 // Flat rows for report generation, ascending by date
	Error *string            `json:"error" example:"parsing time \"x\" as RFC3339 failed"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export rows
// @Description	Returns every ledger record as a flat row for report generation, ordered ascending by date
// @Tags			Export
// @Produce		json
// @Success		200	{object}	ExportListResponse
// @Failure		400	{object}	ExportListResponse
// @Failure		500	{object}	ExportListResponse
// @Router			/v1/export [get]
// @Param			fromDate	query	string	false	"Only records at and after this RFC3339 timestamp"
// @Param			untilDate	query	string	false	"Only records before and at this RFC3339 timestamp"
// @Param			envelope	query	string	false	"Glob pattern for the envelope name"
func GetExport(c *gin.Context) {
	var query ExportQuery
	if err := c.Bind(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, ExportListResponse{Error: &e})
		return
	}

	rows, err := models.ExportRows(models.DB, query.FromDate, query.UntilDate, query.Envelope)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ExportListResponse{Error: &e})
		return
	}

	c.JSON(http.StatusOK, ExportListResponse{Data: rows})
}
