package match

import (
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		// Identical strings
		{"", "", 0},
		{"a", "a", 0},
		{"spine", "spine", 0},

		// Empty vs non-empty
		{"", "abc", 3},
		{"abc", "", 3},

		// Single character operations
		{"a", "b", 1},    // substitution
		{"a", "ab", 1},   // insertion
		{"ab", "a", 1},   // deletion
		{"abc", "ab", 1}, // deletion
		{"ab", "abc", 1}, // insertion

		// Multiple operations
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"algorithm", "altruistic", 6},

		// Case-sensitive at this level
		{"ABC", "abc", 3},
		{"Head", "head", 1},

		// Runes, not bytes
		{"bräu", "brau", 1},
		{"肩", "肘", 1},

		// Real-world bone name examples
		{"spine", "spine_01", 3},
		{"head", "head_01", 3},
		{"arm.l", "arm.r", 1},
		{"upperarm_l", "upper_arm.l", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			// Verify symmetry
			resultReverse := Levenshtein(tt.b, tt.a)
			if result != resultReverse {
				t.Errorf("Levenshtein symmetry failed: (%q, %q) = %d, (%q, %q) = %d",
					tt.a, tt.b, result, tt.b, tt.a, resultReverse)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"Arm_Up", "arm up", 0},
		{"arm_up", "arm_up", 0},
		{"Upper Arm", "upper_arm", 0},
		{"HEAD", "head", 0},
		{"Spine", "Spine_01", 3},
		{"Head", "Spine_01", 7},
		{"Arm", "Arm.L", 2},
		{"Arm", "Arm.R", 2},
		{" arm", "_arm", 0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Distance(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			if reverse := Distance(tt.b, tt.a); reverse != result {
				t.Errorf("Distance symmetry failed: %d != %d", result, reverse)
			}

			if self := Distance(tt.a, tt.a); self != 0 {
				t.Errorf("Distance(%q, %q) = %d, want 0", tt.a, tt.a, self)
			}
		})
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		// Identical strings
		{"", "", 1.0},
		{"Hand", "hand", 1.0},
		{"Upper Arm", "upper_arm", 1.0},

		// Completely different
		{"abc", "xyz", 0.0},

		// Partial matches
		{"kitten", "sitting", 1.0 - 3.0/7.0}, // ~0.571
		{"Spine", "Spine_01", 1.0 - 3.0/8.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Similarity(tt.a, tt.b)
			// Allow small floating point tolerance
			if diff := result - tt.expected; diff < -0.001 || diff > 0.001 {
				t.Errorf("Similarity(%q, %q) = %f, want %f", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

// Benchmark tests
func BenchmarkLevenshtein(b *testing.B) {
	a := "algorithm"
	bStr := "altruistic"
	for i := 0; i < b.N; i++ {
		Levenshtein(a, bStr)
	}
}

func BenchmarkDistance(b *testing.B) {
	a := "Upper Arm Twist L"
	bStr := "upperarm_twist_01_l"
	for i := 0; i < b.N; i++ {
		Distance(a, bStr)
	}
}
