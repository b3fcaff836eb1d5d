package intent

import "testing"

func TestWeights(t *testing.T) {
	tests := []struct {
		intent Intent
		want   Weights
	}{
		{Code, Weights{Code: 3.0, Name: 1.0, Category: 0.3}},
		{Product, Weights{Code: 1.0, Name: 3.0, Category: 1.0}},
		{Category, Weights{Code: 0.5, Name: 1.5, Category: 3.0}},
		{"", Weights{Code: 1.0, Name: 3.0, Category: 1.0}},
	}

	for _, tc := range tests {
		if got := tc.intent.Weights(); got != tc.want {
			t.Errorf("%q.Weights() = %+v, want %+v", tc.intent, got, tc.want)
		}
	}
}
