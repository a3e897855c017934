package models

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestStringList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want StringList
	}{
		{"array", `["김민수","박지은"]`, StringList{"김민수", "박지은"}},
		{"comma string", `"김민수, 박지은"`, StringList{"김민수", "박지은"}},
		{"single name", `"현장팀"`, StringList{"현장팀"}},
		{"whitespace entries", `" 김민수 ,, 박지은 "`, StringList{"김민수", "박지은"}},
		{"empty string", `""`, StringList{}},
		{"empty array", `[]`, StringList{}},
	}

	for _, tt := range tests {
		var got StringList
		if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
			t.Fatalf("%s: unmarshal failed: %v", tt.name, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestStringList_RejectsNonString(t *testing.T) {
	var got StringList
	if err := json.Unmarshal([]byte(`42`), &got); err == nil {
		t.Fatal("numeric payload: want error, got nil")
	}
}
