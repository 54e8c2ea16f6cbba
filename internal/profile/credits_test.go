package profile

import "testing"

func TestCreditsForCompletion(t *testing.T) {
	tests := []struct {
		pct  int
		want int
	}{
		{0, 0},
		{29, 0},
		{30, 10},
		{49, 10},
		{50, 20},
		{69, 20},
		{70, 30},
		{79, 30},
		{80, 50},
		{89, 50},
		{90, 75},
		{99, 75},
		{100, 100},
	}

	for _, tt := range tests {
		if got := CreditsForCompletion(tt.pct); got != tt.want {
			t.Errorf("CreditsForCompletion(%d) = %d, want %d", tt.pct, got, tt.want)
		}
	}
}

func TestCreditsMonotonic(t *testing.T) {
	prev := CreditsForCompletion(0)
	for pct := 1; pct <= 100; pct++ {
		got := CreditsForCompletion(pct)
		if got < prev {
			t.Fatalf("CreditsForCompletion(%d) = %d dropped below %d", pct, got, prev)
		}
		prev = got
	}
}
