package models

import (
	"sort"
	"time"

	"github.com/ryanuber/go-glob"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ExportRow is the flat projection consumed by report generation.
// Rendering to CSV or PDF happens outside of the engine.
type ExportRow struct {
	Date     time.Time       `json:"date" example:"2023-09-12T00:00:00Z"`
	Envelope string          `json:"envelope" example:"Groceries"` // For transfers the source envelope
	Type     TransactionType `json:"type" example:"expense"`
	Amount   decimal.Decimal `json:"amount" example:"-14.03"` // Signed, income positive, expense and transfer negative
	Note     string          `json:"note" example:"Lunch"`
}

// ExportRows returns every ledger record as a flat row, ordered ascending
// by date. Income transactions appear once per allocation, dated and
// annotated by their parent.
//
// from and until bound the export to an inclusive date interval when they
// are non-zero. envelopePattern optionally restricts the rows to envelopes
// whose name matches the glob pattern.
func ExportRows(db *gorm.DB, from, until time.Time, envelopePattern string) ([]ExportRow, error) {
	rows := []ExportRow{}

	// Allocations are filtered in memory since their effective date is the
	// parent transaction's.
	var allocations []IncomeAllocation
	err := db.Preload("Transaction").Preload("Envelope").Find(&allocations).Error
	if err != nil {
		return nil, err
	}

	for _, a := range allocations {
		if !inInterval(a.Transaction.Date, from, until) {
			continue
		}

		rows = append(rows, ExportRow{
			Date:     a.Transaction.Date,
			Envelope: a.Envelope.Name,
			Type:     TypeIncome,
			Amount:   a.Amount,
			Note:     a.Transaction.Note,
		})
	}

	q := db.Preload("Envelope").Preload("SourceEnvelope").
		Where("type IN ?", []TransactionType{TypeExpense, TypeTransfer})
	if !from.IsZero() {
		q = q.Where("datetime(date) >= datetime(?)", from)
	}
	if !until.IsZero() {
		q = q.Where("datetime(date) <= datetime(?)", until)
	}

	var transactions []Transaction
	err = q.Find(&transactions).Error
	if err != nil {
		return nil, err
	}

	for _, t := range transactions {
		name := envelopeName(t.Envelope)
		if t.Type == TypeTransfer {
			name = envelopeName(t.SourceEnvelope)
		}

		rows = append(rows, ExportRow{
			Date:     t.Date,
			Envelope: name,
			Type:     t.Type,
			Amount:   t.Amount.Neg(),
			Note:     t.Note,
		})
	}

	if envelopePattern != "" {
		filtered := rows[:0]
		for _, row := range rows {
			if glob.Glob(envelopePattern, row.Envelope) {
				filtered = append(filtered, row)
			}
		}
		rows = filtered
	}

	// Ascending by date, ties broken by type so the order is deterministic
	sort.SliceStable(rows, func(i, j int) bool {
		if !rows[i].Date.Equal(rows[j].Date) {
			return rows[i].Date.Before(rows[j].Date)
		}
		return rows[i].Type < rows[j].Type
	})

	return rows, nil
}

func inInterval(date, from, until time.Time) bool {
	if !from.IsZero() && date.Before(from) {
		return false
	}

	if !until.IsZero() && date.After(until) {
		return false
	}

	return true
}
