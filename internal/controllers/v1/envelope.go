package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/greenenvelopes/backend/internal/httputil"
	"github.com/greenenvelopes/backend/internal/models"
)

// RegisterEnvelopeRoutes registers the routes for envelopes with
// the RouterGroup that is passed.
func RegisterEnvelopeRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsEnvelopeList)
		r.GET("", GetEnvelopes)
		r.POST("", CreateEnvelope)
	}

	// Manual ordering
	{
		r.OPTIONS("/order", OptionsEnvelopeOrder)
		r.POST("/order", OrderEnvelopes)
	}

	// Envelope with ID
	{
		r.OPTIONS("/:id", OptionsEnvelopeDetail)
		r.GET("/:id", GetEnvelope)
		r.PATCH("/:id", UpdateEnvelope)
		r.DELETE("/:id", DeleteEnvelope)
		r.OPTIONS("/:id/activity", OptionsEnvelopeActivity)
		r.GET("/:id/activity", GetEnvelopeActivity)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Router			/v1/envelopes [options]
func OptionsEnvelopeList(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Router			/v1/envelopes/order [options]
func OptionsEnvelopeOrder(c *gin.Context) {
	httputil.OptionsPost(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/envelopes/{id} [options]
func OptionsEnvelopeDetail(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.First(&models.Envelope{}, id).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	httputil.OptionsGetPatchDelete(c)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Envelopes
// @Success		204
// @Param			id	path	string	true	"ID formatted as string"
// @Router			/v1/envelopes/{id}/activity [options]
func OptionsEnvelopeActivity(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Create envelope
// @Description	Creates a new envelope at the end of the manual ordering
// @Tags			Envelopes
// @Produce		json
// @Success		201			{object}	EnvelopeResponse
// @Failure		400			{object}	EnvelopeResponse
// @Failure		500			{object}	EnvelopeResponse
// @Param			envelope	body		v1.EnvelopeEditable	true	"Envelope"
// @Router			/v1/envelopes [post]
func CreateEnvelope(c *gin.Context) {
	var editable EnvelopeEditable

	err := httputil.BindData(c, &editable)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeResponse{Error: &e})
		return
	}

	envelope, err := models.CreateEnvelope(models.DB, editable.model())
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeResponse{Error: &e})
		return
	}

	data := newEnvelope(c, envelope)
	c.JSON(http.StatusCreated, EnvelopeResponse{Data: &data})
}

// @Summary		Get envelopes
// @Description	Returns all envelopes sorted by their display order
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	EnvelopeListResponse
// @Failure		500	{object}	EnvelopeListResponse
// @Router			/v1/envelopes [get]
func GetEnvelopes(c *gin.Context) {
	envelopes, err := models.Envelopes(models.DB)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeListResponse{Error: &e})
		return
	}

	data := make([]Envelope, 0, len(envelopes))
	for _, envelope := range envelopes {
		data = append(data, newEnvelope(c, envelope))
	}

	c.JSON(http.StatusOK, EnvelopeListResponse{Data: data})
}

// @Summary		Get envelope
// @Description	Returns a specific envelope with its current balance
// @Tags			Envelopes
// @Produce		json
// @Success		200	{object}	EnvelopeResponse
// @Failure		400	{object}	EnvelopeResponse
// @Failure		404	{object}	EnvelopeResponse
// @Failure		500	{object}	EnvelopeResponse
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/envelopes/{id} [get]
func GetEnvelope(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeResponse{Error: &e})
		return
	}

	var envelope models.Envelope
	err = models.DB.First(&envelope, id).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeResponse{Error: &e})
		return
	}

	data := newEnvelope(c, envelope)
	c.JSON(http.StatusOK, EnvelopeResponse{Data: &data})
}

// @Summary		Get recent activity
// @Description	Returns the most recent transactions and income allocations affecting the envelope
// @Tags			Envelopes
// @Produce		json
// @Success		200		{object}	ActivityListResponse
// @Failure		400		{object}	ActivityListResponse
// @Failure		404		{object}	ActivityListResponse
// @Failure		500		{object}	ActivityListResponse
// @Param			id		path		string	true	"ID formatted as string"
// @Param			limit	query		int		false	"Maximum number of activity items. Defaults to 10."
// @Router			/v1/envelopes/{id}/activity [get]
func GetEnvelopeActivity(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ActivityListResponse{Error: &e})
		return
	}

	var envelope models.Envelope
	err = models.DB.First(&envelope, id).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), ActivityListResponse{Error: &e})
		return
	}

	limit := 10
	if param := c.Query("limit"); param != "" {
		limit, err = strconv.Atoi(param)
		if err != nil || limit < 1 {
			e := "the limit must be a positive number"
			c.JSON(http.StatusBadRequest, ActivityListResponse{Error: &e})
			return
		}
	}

	c.JSON(http.StatusOK, ActivityListResponse{Data: envelope.RecentActivity(models.DB, limit)})
}

// @Summary		Update envelope
// @Description	Updates an existing envelope. Only values to be updated need to be specified.
// @Tags			Envelopes
// @Accept			json
// @Produce		json
// @Success		200			{object}	EnvelopeResponse
// @Failure		400			{object}	EnvelopeResponse
// @Failure		404			{object}	EnvelopeResponse
// @Failure		500			{object}	EnvelopeResponse
// @Param			id			path		string				true	"ID formatted as string"
// @Param			envelope	body		v1.EnvelopeEditable	true	"Envelope"
// @Router			/v1/envelopes/{id} [patch]
func UpdateEnvelope(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeResponse{Error: &e})
		return
	}

	var envelope models.Envelope
	err = models.DB.First(&envelope, id).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeResponse{Error: &e})
		return
	}

	updateFields, err := httputil.GetBodyFields(c, EnvelopeEditable{})
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeResponse{Error: &e})
		return
	}

	var data EnvelopeEditable
	err = httputil.BindData(c, &data)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeResponse{Error: &e})
		return
	}

	err = models.DB.Model(&envelope).Select("", updateFields...).Updates(data.model()).Error
	if err != nil {
		e := err.Error()
		c.JSON(status(err), EnvelopeResponse{Error: &e})
		return
	}

	apiResource := newEnvelope(c, envelope)
	c.JSON(http.StatusOK, EnvelopeResponse{Data: &apiResource})
}

// @Summary		Reorder envelopes
// @Description	Sets the manual ordering to the order of the passed envelope IDs. Every envelope must appear exactly once.
// @Tags			Envelopes
// @Accept			json
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			ids	body		[]string	true	"Envelope IDs in the new order"
// @Router			/v1/envelopes/order [post]
func OrderEnvelopes(c *gin.Context) {
	var ids []uuid.UUID

	err := httputil.BindData(c, &ids)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.ReorderEnvelopes(models.DB, ids)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Delete envelope
// @Description	Deletes an envelope. Deletion is blocked while transactions still reference the envelope.
// @Tags			Envelopes
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		string	true	"ID formatted as string"
// @Router			/v1/envelopes/{id} [delete]
func DeleteEnvelope(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	var envelope models.Envelope
	err = models.DB.First(&envelope, id).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	err = models.DB.Delete(&envelope).Error
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
