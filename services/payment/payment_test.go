package payment

import "testing"

func TestSiteFee(t *testing.T) {
	cases := []struct {
		amount int64
		want   int64
	}{
		{100, 10},
		{1000, 100},
		{101, 11},  // 10.1 rounds up
		{109, 11},  // 10.9 rounds up
		{99, 10},   // 9.9 rounds up
		{5, 1},     // 0.5 rounds up
		{1, 1},     // 0.1 rounds up
		{10, 1},
	}

	for _, tc := range cases {
		if got := SiteFee(tc.amount); got != tc.want {
			t.Errorf("SiteFee(%d) = %d, want %d", tc.amount, got, tc.want)
		}
	}
}
