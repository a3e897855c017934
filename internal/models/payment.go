package models

import (
	"time"
)

// Payment milestone names in collection order
const (
	MilestoneContract = "계약금"
	MilestoneStart    = "착수금"
	MilestoneMiddle   = "중도금"
	MilestoneFinal    = "잔금"
)

// MilestoneOrder lists the four collection milestones in contract order
var MilestoneOrder = []string{MilestoneContract, MilestoneStart, MilestoneMiddle, MilestoneFinal}

// MilestonePercent maps each milestone to its share of the VAT-inclusive
// contract amount (10/40/40/10)
var MilestonePercent = map[string]int{
	MilestoneContract: 10,
	MilestoneStart:    40,
	MilestoneMiddle:   40,
	MilestoneFinal:    10,
}

// ExpectedPaymentDates holds the configured expected date per milestone
type ExpectedPaymentDates struct {
	Contract *time.Time `json:"contract,omitempty"`
	Start    *time.Time `json:"start,omitempty"`
	Middle   *time.Time `json:"middle,omitempty"`
	Final    *time.Time `json:"final,omitempty"`
}

// ByMilestone returns the expected date for a milestone name, nil when unset
func (d ExpectedPaymentDates) ByMilestone(name string) *time.Time {
	switch name {
	case MilestoneContract:
		return d.Contract
	case MilestoneStart:
		return d.Start
	case MilestoneMiddle:
		return d.Middle
	case MilestoneFinal:
		return d.Final
	}
	return nil
}

// PaymentEntry is a received payment; Type is a comma-joined list of the
// milestone names the entry covers (e.g. "계약금,착수금")
type PaymentEntry struct {
	ID         int64     `json:"id"`
	Type       string    `json:"type"`
	Amount     int64     `json:"amount"`
	ReceivedAt time.Time `json:"received_at"`
}

// ConstructionPayment represents the payment plan for one construction contract
type ConstructionPayment struct {
	ID                   int64                `json:"id"`
	Project              string               `json:"project"`
	TotalAmount          int64                `json:"total_amount"`
	VATType              string               `json:"vat_type"` // "included" or "separate"
	VATPercentage        int                  `json:"vat_percentage"`
	VATAmount            int64                `json:"vat_amount"`
	Payments             []PaymentEntry       `json:"payments"`
	ExpectedPaymentDates ExpectedPaymentDates `json:"expected_payment_dates"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            *time.Time           `json:"updated_at,omitempty"`
}

// TotalWithVAT returns the contract amount including VAT
func (p ConstructionPayment) TotalWithVAT() int64 {
	if p.VATType == "separate" {
		return p.TotalAmount + p.VATAmount
	}
	return p.TotalAmount
}

// UpdateExpectedDatesRequest patches expected payment dates; milestones
// listed in Clear have their date removed (drops that calendar entry).
type UpdateExpectedDatesRequest struct {
	Contract *string  `json:"contract,omitempty"` // YYYY-MM-DD
	Start    *string  `json:"start,omitempty"`
	Middle   *string  `json:"middle,omitempty"`
	Final    *string  `json:"final,omitempty"`
	Clear    []string `json:"clear,omitempty"` // milestone keys: contract|start|middle|final
}
