package model

import "testing"

func TestIsValidObjectID(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"000000000000000000000000", true},
		{"64b0c0ffee00000000000001", true},
		{"not-an-id", false},
		{"", false},
		{"64b0c0ffee0000000000000", false},   // 23 位
		{"64b0c0ffee000000000000012", false}, // 25 位
		{"64B0C0FFEE00000000000001", false},  // 大写不接受
		{"64b0c0ffee0000000000000g", false},  // 非十六进制字符
	}

	for _, tt := range tests {
		if got := IsValidObjectID(tt.id); got != tt.want {
			t.Errorf("IsValidObjectID(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}

func TestNewObjectID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewObjectID()
		if !IsValidObjectID(id) {
			t.Fatalf("NewObjectID() produced invalid id %q", id)
		}
		if seen[id] {
			t.Fatalf("NewObjectID() produced duplicate id %q", id)
		}
		seen[id] = true
	}
}
