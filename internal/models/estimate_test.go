package models

import (
	"testing"
)

func TestEstimateRecalculate_SeparateVAT(t *testing.T) {
	e := Estimate{
		VATType: "separate",
		Items: []EstimateItem{
			{Name: "도배", Quantity: 2, UnitPrice: 500000},
			{Name: "타일", Quantity: 1.5, UnitPrice: 1000000},
		},
	}
	e.Recalculate()

	if e.Items[0].Total != 1000000 || e.Items[1].Total != 1500000 {
		t.Fatalf("line totals: got %d, %d", e.Items[0].Total, e.Items[1].Total)
	}
	if e.Subtotal != 2500000 {
		t.Errorf("subtotal: got %d, want 2500000", e.Subtotal)
	}
	if e.VATAmount != 250000 {
		t.Errorf("vat: got %d, want 250000", e.VATAmount)
	}
	if e.GrandTotal != 2750000 {
		t.Errorf("grand total: got %d, want 2750000", e.GrandTotal)
	}
}

func TestEstimateRecalculate_IncludedVAT(t *testing.T) {
	e := Estimate{
		VATType: "included",
		Items:   []EstimateItem{{Name: "철거", Quantity: 1, UnitPrice: 1100000}},
	}
	e.Recalculate()

	if e.GrandTotal != 1100000 {
		t.Errorf("grand total: got %d, want 1100000 (unchanged)", e.GrandTotal)
	}
	if e.VATAmount != 100000 {
		t.Errorf("vat split out: got %d, want 100000", e.VATAmount)
	}
}

func TestTotalWithVAT(t *testing.T) {
	sep := ConstructionPayment{TotalAmount: 100000000, VATType: "separate", VATAmount: 10000000}
	if got := sep.TotalWithVAT(); got != 110000000 {
		t.Errorf("separate: got %d, want 110000000", got)
	}
	inc := ConstructionPayment{TotalAmount: 110000000, VATType: "included", VATAmount: 10000000}
	if got := inc.TotalWithVAT(); got != 110000000 {
		t.Errorf("included: got %d, want 110000000", got)
	}
}
