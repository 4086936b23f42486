package models

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"gorm.io/gorm"
)

// swagger:enum HistoryFilter
type HistoryFilter string

const (
	HistoryFilterAll    HistoryFilter = "all"
	HistoryFilterIncome HistoryFilter = "income"

	// HistoryFilterExpenses groups expenses and transfers together, the
	// filter splits the feed into "money in" and "money out", not by
	// transaction type.
	HistoryFilterExpenses HistoryFilter = "expenses"
)

// swagger:enum HistoryItemType
type HistoryItemType string

const (
	HistoryItemExpense  HistoryItemType = "expense"
	HistoryItemTransfer HistoryItemType = "transfer"
	HistoryItemIncome   HistoryItemType = "income"
)

// HistoryItem is a read-only projection of one ledger record for the
// unified history feed.
type HistoryItem struct {
	ID           string          `json:"id" example:"exp-d430d7c3-d14c-4712-9336-ee56965a6673"`
	Type         HistoryItemType `json:"type" example:"expense"`
	Date         time.Time       `json:"date" example:"2023-09-12T00:00:00Z"`
	Amount       decimal.Decimal `json:"amount" example:"-14.03"`          // Signed, income positive, expense and transfer negative
	Note         string          `json:"note" example:"Lunch"`             // Empty if the transaction has no note
	EnvelopeName string          `json:"envelopeName" example:"Groceries"` // The envelope the record belongs to, for transfers the source
	Detail       string          `json:"detail" example:"Transfer to Holiday"`
}

// HistoryItems merges expenses, transfers and income allocations into one
// feed, most recent first.
//
// The aggregation is stateless, it is a pure function of the currently
// committed records and the three parameters. An empty search matches
// everything, otherwise matching is case-folded substring search over the
// involved envelope names and the note. A failing sub-query contributes an
// empty slice instead of failing the whole feed.
func HistoryItems(db *gorm.DB, filter HistoryFilter, envelopeID *uuid.UUID, search string) []HistoryItem {
	items := []HistoryItem{}

	if filter != HistoryFilterExpenses {
		q := db.Preload("Transaction").Preload("Envelope")
		if envelopeID != nil {
			q = q.Where("envelope_id = ?", *envelopeID)
		}

		var allocations []IncomeAllocation
		if err := q.Find(&allocations).Error; err == nil {
			for _, a := range allocations {
				if !matchesSearch(search, a.Envelope.Name, a.Transaction.Note) {
					continue
				}

				items = append(items, HistoryItem{
					ID:           fmt.Sprintf("inc-%s", a.ID),
					Type:         HistoryItemIncome,
					Date:         a.Transaction.Date,
					Amount:       a.Amount,
					Note:         a.Transaction.Note,
					EnvelopeName: a.Envelope.Name,
					Detail:       "Income",
				})
			}
		}
	}

	if filter != HistoryFilterIncome {
		q := db.Preload("Envelope").Preload("SourceEnvelope").Preload("TargetEnvelope").
			Where("type IN ?", []TransactionType{TypeExpense, TypeTransfer})
		if envelopeID != nil {
			q = q.Where("envelope_id = ? OR source_envelope_id = ? OR target_envelope_id = ?", *envelopeID, *envelopeID, *envelopeID)
		}

		var transactions []Transaction
		if err := q.Find(&transactions).Error; err == nil {
			for _, t := range transactions {
				if !matchesSearch(search,
					envelopeName(t.Envelope),
					envelopeName(t.SourceEnvelope),
					envelopeName(t.TargetEnvelope),
					t.Note,
				) {
					continue
				}

				if t.Type == TypeExpense {
					items = append(items, HistoryItem{
						ID:           fmt.Sprintf("exp-%s", t.ID),
						Type:         HistoryItemExpense,
						Date:         t.Date,
						Amount:       t.Amount.Neg(),
						Note:         t.Note,
						EnvelopeName: envelopeName(t.Envelope),
						Detail:       "Expense",
					})
					continue
				}

				items = append(items, HistoryItem{
					ID:           fmt.Sprintf("tr-%s", t.ID),
					Type:         HistoryItemTransfer,
					Date:         t.Date,
					Amount:       t.Amount.Neg(),
					Note:         t.Note,
					EnvelopeName: envelopeName(t.SourceEnvelope),
					Detail:       fmt.Sprintf("Transfer to %s", envelopeName(t.TargetEnvelope)),
				})
			}
		}
	}

	sort.Slice(items, func(i, j int) bool {
		if !items[i].Date.Equal(items[j].Date) {
			return items[i].Date.After(items[j].Date)
		}
		return items[i].ID < items[j].ID
	})

	return items
}

// matchesSearch reports whether any of the fields contains the search
// string. Matching uses Unicode case folding, not just ASCII lower casing.
func matchesSearch(search string, fields ...string) bool {
	if search == "" {
		return true
	}

	fold := cases.Fold()
	needle := fold.String(search)

	for _, field := range fields {
		if strings.Contains(fold.String(field), needle) {
			return true
		}
	}

	return false
}
