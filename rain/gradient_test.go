package rain

import "testing"

// TestLeaderAlwaysWins verifies the head cell gets the leader color for
// every trail length
func TestLeaderAlwaysWins(t *testing.T) {
	for length := 1; length <= 50; length++ {
		if got := ColorOf(0, length, true); got != ColorLeader {
			t.Errorf("length %d: expected ColorLeader, got %v", length, got)
		}
	}
}

// TestGradientBuckets verifies the normalized-distance thresholds
func TestGradientBuckets(t *testing.T) {
	tests := []struct {
		name        string
		dist        int
		trailLength int
		expected    ColorState
	}{
		{"behind leader", 1, 11, ColorDim},
		{"below mid threshold", 1, 11, ColorDim},
		{"at mid threshold", 2, 11, ColorMid},
		{"upper mid", 4, 11, ColorMid},
		{"at main threshold", 5, 11, ColorMain},
		{"trail top", 10, 11, ColorMain},
		{"single-cell trail", 3, 1, ColorDim},
		{"two-cell trail full distance", 1, 2, ColorMain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ColorOf(tt.dist, tt.trailLength, false); got != tt.expected {
				t.Errorf("ColorOf(%d, %d, false) = %v, expected %v",
					tt.dist, tt.trailLength, got, tt.expected)
			}
		})
	}
}

// TestGradientIsPure verifies repeated calls with identical inputs agree
func TestGradientIsPure(t *testing.T) {
	for dist := 0; dist < 40; dist++ {
		for _, length := range []int{1, 2, 7, 23} {
			first := ColorOf(dist, length, dist == 0)
			second := ColorOf(dist, length, dist == 0)
			if first != second {
				t.Fatalf("ColorOf(%d, %d) not deterministic: %v then %v",
					dist, length, first, second)
			}
		}
	}
}
