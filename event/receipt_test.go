package event

import "testing"

func TestTransactionReceipt_Succeeded(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"0x1", true},
		{"0x0", false},
		{"0x", false},
		{"0x00", false},
		{"0xa", true},
	}

	for _, tt := range tests {
		r := TransactionReceipt{Status: tt.status}
		if got := r.Succeeded(); got != tt.want {
			t.Errorf("Succeeded() for status %q = %v, want %v", tt.status, got, tt.want)
		}
	}
}
