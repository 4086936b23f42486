package models

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Envelope represents a named bucket of money.
//
// Its balance is never stored, it is always derived from the
// full set of transactions and income allocations.
type Envelope struct {
	DefaultModel
	Name         string              `json:"name" example:"Groceries"`
	Icon         string              `json:"icon" example:"cart.fill"`                                // Reference to the icon the UI renders for this envelope
	Order        uint                `json:"order" gorm:"column:display_order" example:"2"`           // Position of the envelope in manual ordering
	TargetAmount decimal.NullDecimal `json:"targetAmount" gorm:"type:DECIMAL(20,8)" example:"250.00"` // Optional target for progress display
}

// BeforeSave trims whitespace from the strings.
func (e *Envelope) BeforeSave(_ *gorm.DB) error {
	e.Name = strings.TrimSpace(e.Name)
	e.Icon = strings.TrimSpace(e.Icon)

	return nil
}

// BeforeDelete blocks deletion while transactions still reference the
// envelope. History must never be destroyed by deleting an envelope.
//
// Income allocations into the envelope are deleted with it, an
// allocation without an envelope is meaningless.
func (e *Envelope) BeforeDelete(tx *gorm.DB) error {
	var count int64
	err := tx.Model(&Transaction{}).
		Where("envelope_id = ? OR source_envelope_id = ? OR target_envelope_id = ?", e.ID, e.ID, e.ID).
		Count(&count).Error
	if err != nil {
		return err
	}

	if count > 0 {
		return ErrEnvelopeHasTransactions
	}

	return tx.Where("envelope_id = ?", e.ID).Delete(&IncomeAllocation{}).Error
}

// CreateEnvelope creates an envelope at the end of the manual ordering.
func CreateEnvelope(db *gorm.DB, envelope Envelope) (Envelope, error) {
	var count int64
	err := db.Model(&Envelope{}).Count(&count).Error
	if err != nil {
		return Envelope{}, err
	}

	envelope.Order = uint(count)
	err = db.Create(&envelope).Error
	if err != nil {
		return Envelope{}, err
	}

	return envelope, nil
}

// Envelopes returns all envelopes sorted by their display order.
func Envelopes(db *gorm.DB) ([]Envelope, error) {
	var envelopes []Envelope
	err := db.Order("display_order ASC").Find(&envelopes).Error
	if err != nil {
		return nil, err
	}

	return envelopes, nil
}

// ReorderEnvelopes rewrites the display order to match the passed ID list.
//
// The list must contain every envelope exactly once. The whole reorder is
// one unit of work, either all envelopes get their new position or none do.
func ReorderEnvelopes(db *gorm.DB, ids []uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var count int64
		err := tx.Model(&Envelope{}).Count(&count).Error
		if err != nil {
			return err
		}

		seen := make(map[uuid.UUID]bool, len(ids))
		for _, id := range ids {
			if seen[id] {
				return ErrEnvelopeOrderIncomplete
			}
			seen[id] = true
		}

		if count != int64(len(ids)) {
			return ErrEnvelopeOrderIncomplete
		}

		for position, id := range ids {
			result := tx.Model(&Envelope{}).Where("id = ?", id).Update("display_order", position)
			if result.Error != nil {
				return result.Error
			}

			if result.RowsAffected == 0 {
				return ErrEnvelopeOrderIncomplete
			}
		}

		return nil
	})
}

// Balance computes the current balance of the envelope:
//
//	sum(income allocations in) + sum(transfers in) - sum(expenses) - sum(transfers out)
//
// There is no caching, every call recomputes the balance from all committed
// records so that a read directly after a write reflects it. A failing
// sub-query contributes zero so that a partial data problem does not take
// down the whole dashboard.
func (e Envelope) Balance(db *gorm.DB) decimal.Decimal {
	balance := decimal.Zero

	var allocations []IncomeAllocation
	if err := db.Where(&IncomeAllocation{EnvelopeID: e.ID}).Find(&allocations).Error; err == nil {
		for _, a := range allocations {
			balance = balance.Add(a.Amount)
		}
	}

	var transfersIn []Transaction
	if err := db.Where(&Transaction{Type: TypeTransfer, TargetEnvelopeID: &e.ID}).Find(&transfersIn).Error; err == nil {
		for _, t := range transfersIn {
			balance = balance.Add(t.Amount)
		}
	}

	var expenses []Transaction
	if err := db.Where(&Transaction{Type: TypeExpense, EnvelopeID: &e.ID}).Find(&expenses).Error; err == nil {
		for _, t := range expenses {
			balance = balance.Sub(t.Amount)
		}
	}

	var transfersOut []Transaction
	if err := db.Where(&Transaction{Type: TypeTransfer, SourceEnvelopeID: &e.ID}).Find(&transfersOut).Error; err == nil {
		for _, t := range transfersOut {
			balance = balance.Sub(t.Amount)
		}
	}

	return balance
}

// ActivityItem is one entry in the recent activity feed of an envelope.
type ActivityItem struct {
	ID           uuid.UUID       `json:"id" example:"d1b4ce9c-15b7-441c-b52e-0b6dab3a0b21"`
	Type         ActivityType    `json:"type" example:"transfer_out"`
	Date         time.Time       `json:"date" example:"2023-09-12T00:00:00Z"`
	Amount       decimal.Decimal `json:"amount" example:"-14.03"`        // Signed, negative for money leaving the envelope
	Note         string          `json:"note" example:"Lunch"`           // Note of the transaction, empty if none was set
	EnvelopeName string          `json:"envelopeName" example:"Holiday"` // For transfers the counterpart envelope, otherwise the envelope itself
}

// swagger:enum ActivityType
type ActivityType string

const (
	ActivityExpense     ActivityType = "expense"
	ActivityTransferIn  ActivityType = "transfer_in"
	ActivityTransferOut ActivityType = "transfer_out"
	ActivityIncome      ActivityType = "income"
)

// RecentActivity returns the last transactions and income allocations
// affecting the envelope, most recent first.
//
// Each source is fetched with its own cap before merging. Allocations are
// over-fetched at twice the limit since they are dated by their parent
// transaction, capping them at the limit before the merge could wrongly
// drop a still eligible one. Equal dates are broken by ascending item ID
// so the feed is deterministic.
//
// Like Balance, this fails open: a failing sub-query contributes nothing.
func (e Envelope) RecentActivity(db *gorm.DB, limit int) []ActivityItem {
	items := make([]ActivityItem, 0, limit)

	var expenses []Transaction
	if err := db.Where(&Transaction{Type: TypeExpense, EnvelopeID: &e.ID}).
		Order("datetime(date) DESC").Limit(limit).Find(&expenses).Error; err == nil {
		for _, t := range expenses {
			items = append(items, ActivityItem{
				ID:           t.ID,
				Type:         ActivityExpense,
				Date:         t.Date,
				Amount:       t.Amount.Neg(),
				Note:         t.Note,
				EnvelopeName: e.Name,
			})
		}
	}

	var transfersOut []Transaction
	if err := db.Preload("TargetEnvelope").Where(&Transaction{Type: TypeTransfer, SourceEnvelopeID: &e.ID}).
		Order("datetime(date) DESC").Limit(limit).Find(&transfersOut).Error; err == nil {
		for _, t := range transfersOut {
			items = append(items, ActivityItem{
				ID:           t.ID,
				Type:         ActivityTransferOut,
				Date:         t.Date,
				Amount:       t.Amount.Neg(),
				Note:         t.Note,
				EnvelopeName: envelopeName(t.TargetEnvelope),
			})
		}
	}

	var transfersIn []Transaction
	if err := db.Preload("SourceEnvelope").Where(&Transaction{Type: TypeTransfer, TargetEnvelopeID: &e.ID}).
		Order("datetime(date) DESC").Limit(limit).Find(&transfersIn).Error; err == nil {
		for _, t := range transfersIn {
			items = append(items, ActivityItem{
				ID:           t.ID,
				Type:         ActivityTransferIn,
				Date:         t.Date,
				Amount:       t.Amount,
				Note:         t.Note,
				EnvelopeName: envelopeName(t.SourceEnvelope),
			})
		}
	}

	var allocations []IncomeAllocation
	if err := db.Preload("Transaction").Where(&IncomeAllocation{EnvelopeID: e.ID}).
		Limit(2 * limit).Find(&allocations).Error; err == nil {
		for _, a := range allocations {
			items = append(items, ActivityItem{
				ID:           a.ID,
				Type:         ActivityIncome,
				Date:         a.Transaction.Date,
				Amount:       a.Amount,
				Note:         a.Transaction.Note,
				EnvelopeName: e.Name,
			})
		}
	}

	sort.Slice(items, func(i, j int) bool {
		if !items[i].Date.Equal(items[j].Date) {
			return items[i].Date.After(items[j].Date)
		}
		return items[i].ID.String() < items[j].ID.String()
	})

	if len(items) > limit {
		items = items[:limit]
	}

	return items
}

func envelopeName(e *Envelope) string {
	if e == nil {
		return ""
	}
	return e.Name
}
