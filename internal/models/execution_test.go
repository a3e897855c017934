package models

import (
	"testing"
)

func TestSummarizeExecution(t *testing.T) {
	entries := []ExecutionEntry{
		{Category: "철거", Amount: 1500000},
		{Category: "설비", Amount: 800000},
		{Category: "철거", Amount: 500000},
	}

	s := SummarizeExecution(entries)
	if s.Total != 2800000 {
		t.Errorf("total: got %d, want 2800000", s.Total)
	}
	if s.ByCategory["철거"] != 2000000 {
		t.Errorf("철거: got %d, want 2000000", s.ByCategory["철거"])
	}
	if s.ByCategory["설비"] != 800000 {
		t.Errorf("설비: got %d, want 800000", s.ByCategory["설비"])
	}
}

func TestSummarizeExecution_Empty(t *testing.T) {
	s := SummarizeExecution(nil)
	if s.Total != 0 {
		t.Errorf("total: got %d, want 0", s.Total)
	}
	if s.ByCategory == nil {
		t.Error("by-category map must be allocated for an empty ledger")
	}
}
