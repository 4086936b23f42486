package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/greenenvelopes/backend/internal/httputil"
	"github.com/greenenvelopes/backend/internal/models"
	ge_uuid "github.com/greenenvelopes/backend/internal/uuid"
	"golang.org/x/exp/slices"
)

// RegisterHistoryRoutes registers the routes for the history feed with
// the RouterGroup that is passed.
func RegisterHistoryRoutes(r *gin.RouterGroup) {
	r.OPTIONS("", OptionsHistory)
	r.GET("", GetHistory)
}

type HistoryQuery struct {
	Filter     models.HistoryFilter `form:"filter"`   // all, income or expenses. Defaults to all.
	EnvelopeID ge_uuid.UUID         `form:"envelope"` // Restrict the feed to one envelope
	Search     string               `form:"search"`   // Case-insensitive substring search over envelope names and notes
}

type HistoryListResponse struct {
	Data  []models.HistoryItem `json:"data"`                                                          // History feed, most recent first
	Error *string              `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			History
// @Success		204
// @Router			/v1/history [options]
func OptionsHistory(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get history
// @Description	Returns the unified feed of expenses, transfers and income allocations, most recent first
// @Tags			History
// @Produce		json
// @Success		200	{object}	HistoryListResponse
// @Failure		400	{object}	HistoryListResponse
// @Router			/v1/history [get]
// @Param			filter		query	string	false	"all, income or expenses. 'expenses' includes transfers. Defaults to all."
// @Param			envelope	query	string	false	"Restrict the feed to records referencing this envelope ID"
// @Param			search		query	string	false	"Case-insensitive substring search over envelope names and notes"
func GetHistory(c *gin.Context) {
	var query HistoryQuery
	if err := c.Bind(&query); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, HistoryListResponse{Error: &e})
		return
	}

	filter := query.Filter
	if filter == "" {
		filter = models.HistoryFilterAll
	}

	if !slices.Contains([]models.HistoryFilter{models.HistoryFilterAll, models.HistoryFilterIncome, models.HistoryFilterExpenses}, filter) {
		e := errHistoryFilterInvalid.Error()
		c.JSON(http.StatusBadRequest, HistoryListResponse{Error: &e})
		return
	}

	var envelopeID *uuid.UUID
	if query.EnvelopeID != ge_uuid.Nil {
		envelopeID = &query.EnvelopeID.UUID
	}

	c.JSON(http.StatusOK, HistoryListResponse{
		Data: models.HistoryItems(models.DB, filter, envelopeID, query.Search),
	})
}
