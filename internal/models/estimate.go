package models

import (
	"math"
	"time"
)

// Product is a spec-book catalog entry
type Product struct {
	ID        int64      `json:"id"`
	Category  string     `json:"category"`
	Name      string     `json:"name"`
	Vendor    *string    `json:"vendor,omitempty"`
	UnitPrice int64      `json:"unit_price"`
	Unit      string     `json:"unit"` // EA, m2, set...
	ImageURL  *string    `json:"image_url,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// EstimateItem is one line in an estimate
type EstimateItem struct {
	ID        int64   `json:"id"`
	ProductID *int64  `json:"product_id,omitempty"`
	Name      string  `json:"name"`
	Quantity  float64 `json:"quantity"`
	UnitPrice int64   `json:"unit_price"`
	Total     int64   `json:"total"`
}

// Estimate is a project estimate with computed totals
type Estimate struct {
	ID         int64          `json:"id"`
	Project    string         `json:"project"`
	Items      []EstimateItem `json:"items"`
	VATType    string         `json:"vat_type"` // "included" or "separate"
	Subtotal   int64          `json:"subtotal"`
	VATAmount  int64          `json:"vat_amount"`
	GrandTotal int64          `json:"grand_total"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  *time.Time     `json:"updated_at,omitempty"`
}

// vatRate is the Korean VAT rate applied to estimates
const vatRate = 0.10

// Recalculate recomputes line totals, subtotal and VAT in place.
// For "separate" VAT the grand total adds 10% on top of the subtotal;
// for "included" the subtotal already carries VAT and is split out.
func (e *Estimate) Recalculate() {
	var subtotal int64
	for i := range e.Items {
		e.Items[i].Total = int64(math.Round(e.Items[i].Quantity * float64(e.Items[i].UnitPrice)))
		subtotal += e.Items[i].Total
	}
	e.Subtotal = subtotal

	if e.VATType == "separate" {
		e.VATAmount = int64(math.Round(float64(subtotal) * vatRate))
		e.GrandTotal = subtotal + e.VATAmount
	} else {
		e.VATAmount = int64(math.Round(float64(subtotal) / (1 + vatRate) * vatRate))
		e.GrandTotal = subtotal
	}
}
