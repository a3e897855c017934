package models

import (
	"time"
)

// ExecutionEntry is one line in a project's execution ledger: money
// actually spent on the project, booked against a work category. The
// ledger is what the estimate gets reconciled against once work starts.
type ExecutionEntry struct {
	ID            int64      `json:"id"`
	Project       string     `json:"project"`
	EntryDate     time.Time  `json:"entry_date"`
	Category      string     `json:"category"` // 철거, 설비, 목공...
	Vendor        *string    `json:"vendor,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Amount        int64      `json:"amount"`
	PaymentMethod *string    `json:"payment_method,omitempty"` // card, transfer, cash
	CreatedBy     *string    `json:"created_by,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at,omitempty"`
}

// CreateExecutionEntryRequest is the request body for booking a spend
type CreateExecutionEntryRequest struct {
	Project       string  `json:"project" binding:"required"`
	EntryDate     string  `json:"entry_date" binding:"required"` // YYYY-MM-DD
	Category      string  `json:"category" binding:"required"`
	Vendor        *string `json:"vendor,omitempty"`
	Description   *string `json:"description,omitempty"`
	Amount        int64   `json:"amount" binding:"required"`
	PaymentMethod *string `json:"payment_method,omitempty"`
}

// UpdateExecutionEntryRequest is a partial patch against a ledger entry
type UpdateExecutionEntryRequest struct {
	EntryDate     *string `json:"entry_date,omitempty"`
	Category      *string `json:"category,omitempty"`
	Vendor        *string `json:"vendor,omitempty"`
	Description   *string `json:"description,omitempty"`
	Amount        *int64  `json:"amount,omitempty"`
	PaymentMethod *string `json:"payment_method,omitempty"`
}

// ExecutionSummary aggregates a project's ledger for the history view
type ExecutionSummary struct {
	Total      int64            `json:"total"`
	ByCategory map[string]int64 `json:"by_category"`
}

// SummarizeExecution totals the ledger overall and per work category
func SummarizeExecution(entries []ExecutionEntry) ExecutionSummary {
	s := ExecutionSummary{ByCategory: map[string]int64{}}
	for _, e := range entries {
		s.Total += e.Amount
		s.ByCategory[e.Category] += e.Amount
	}
	return s
}
