package domain

import "testing"

func TestParseTaskFilter(t *testing.T) {
	tests := []struct {
		in     string
		want   TaskFilter
		wantOK bool
	}{
		{"", FilterAll, true},
		{"all", FilterAll, true},
		{"pending", FilterPending, true},
		{"completed", FilterCompleted, true},
		{"done", FilterAll, false},
		{"ALL", FilterAll, false},
	}

	for _, tt := range tests {
		got, ok := ParseTaskFilter(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseTaskFilter(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}
