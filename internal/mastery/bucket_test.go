package mastery

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		correct   int
		incorrect int
		want      Bucket
	}{
		{"never attempted", 0, 0, BucketLearning},
		{"one correct", 1, 0, BucketStudying},
		{"only incorrect", 0, 3, BucketStudying},
		{"two correct clean", 2, 0, BucketMastered},
		{"two correct one wrong", 2, 1, BucketMastered},
		{"two correct two wrong", 2, 2, BucketStudying},
		{"dominated by correct", 6, 3, BucketMastered},
		{"even split", 4, 4, BucketStudying},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.correct, tt.incorrect, nil)
			if got != tt.want {
				t.Errorf("Classify(%d, %d) = %q, want %q", tt.correct, tt.incorrect, got, tt.want)
			}
		})
	}
}

func TestClassifyCustomPolicy(t *testing.T) {
	strict := func(correct, incorrect int) bool {
		return correct >= 5 && incorrect == 0
	}

	if got := Classify(4, 0, strict); got != BucketStudying {
		t.Errorf("Classify(4, 0, strict) = %q, want %q", got, BucketStudying)
	}
	if got := Classify(5, 0, strict); got != BucketMastered {
		t.Errorf("Classify(5, 0, strict) = %q, want %q", got, BucketMastered)
	}
}
