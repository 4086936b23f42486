package v1

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/greenenvelopes/backend/internal/models"
	"github.com/shopspring/decimal"
)

// EnvelopeEditable represents all user configurable parameters of an envelope
type EnvelopeEditable struct {
	Name         string              `json:"name" example:"Groceries" default:""`              // Name of the envelope
	Icon         string              `json:"icon" example:"cart.fill" default:""`              // Icon reference for the UI
	TargetAmount decimal.NullDecimal `json:"targetAmount" example:"250.00" swaggertype:"number"` // Optional target amount for progress display
}

// model transforms the API representation into the model representation
func (e EnvelopeEditable) model() models.Envelope {
	return models.Envelope{
		Name:         e.Name,
		Icon:         e.Icon,
		TargetAmount: e.TargetAmount,
	}
}

type EnvelopeLinks struct {
	Self         string `json:"self" example:"https://example.com/api/v1/envelopes/45b6b5b9-f746-4ae9-b77b-7688b91f8166"`                     // The envelope itself
	Activity     string `json:"activity" example:"https://example.com/api/v1/envelopes/45b6b5b9-f746-4ae9-b77b-7688b91f8166/activity"`        // The envelope's recent activity feed
	Transactions string `json:"transactions" example:"https://example.com/api/v1/transactions?envelope=45b6b5b9-f746-4ae9-b77b-7688b91f8166"` // The envelope's transactions
}

// Envelope is the API representation of an envelope. The balance is
// recomputed from the ledger on every read.
type Envelope struct {
	models.DefaultModel
	EnvelopeEditable
	Order   uint            `json:"order" example:"2"`      // Position in manual ordering
	Balance decimal.Decimal `json:"balance" example:"27.52"` // Current balance, derived from all records
	Links   EnvelopeLinks   `json:"links"`                  // Links to related resources
}

func newEnvelope(c *gin.Context, model models.Envelope) Envelope {
	url := c.GetString(string(models.ContextURL))

	return Envelope{
		DefaultModel: model.DefaultModel,
		EnvelopeEditable: EnvelopeEditable{
			Name:         model.Name,
			Icon:         model.Icon,
			TargetAmount: model.TargetAmount,
		},
		Order:   model.Order,
		Balance: model.Balance(models.DB),
		Links: EnvelopeLinks{
			Self:         fmt.Sprintf("%s/v1/envelopes/%s", url, model.ID),
			Activity:     fmt.Sprintf("%s/v1/envelopes/%s/activity", url, model.ID),
			Transactions: fmt.Sprintf("%s/v1/transactions?envelope=%s", url, model.ID),
		},
	}
}

type EnvelopeResponse struct {
	Data  *Envelope `json:"data"`                                                          // The Envelope data, if the request was successful
	Error *string   `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type EnvelopeListResponse struct {
	Data  []Envelope `json:"data"`                                                          // List of Envelopes in display order
	Error *string    `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ActivityListResponse struct {
	Data  []models.ActivityItem `json:"data"`                                                          // Recent activity, most recent first
	Error *string               `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}
