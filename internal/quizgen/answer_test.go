package quizgen

import "testing"

func TestGradeExactTypes(t *testing.T) {
	tests := []struct {
		name     string
		qType    QuestionType
		expected string
		answer   string
		want     bool
	}{
		{"multiple choice match", TypeMultipleChoice, "A function plus scope", "A function plus scope", true},
		{"multiple choice mismatch", TypeMultipleChoice, "A function plus scope", "A loop", false},
		{"multiple choice case sensitive", TypeMultipleChoice, "A Function", "a function", false},
		{"true false match", TypeTrueFalse, LabelTrue, LabelTrue, true},
		{"true false mismatch", TypeTrueFalse, LabelTrue, LabelFalse, false},
		{"true false lowercase rejected", TypeTrueFalse, LabelTrue, "true", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &Question{Type: tt.qType, Expected: tt.expected, UserAnswer: tt.answer}
			if got := Grade(q); got != tt.want {
				t.Errorf("Grade(%q vs %q) = %v, want %v", tt.answer, tt.expected, got, tt.want)
			}
		})
	}
}

func TestGradeWritten(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		answer   string
		want     bool
	}{
		{
			name:     "contains needle with different case and padding",
			expected: "A Promise is an object representing eventual completion",
			answer:   "  a promise is an object  ",
			want:     true,
		},
		{
			name:     "missing needle",
			expected: "A Promise is an object representing eventual completion",
			answer:   "some kind of callback",
			want:     false,
		},
		{
			name:     "short expected requires whole answer",
			expected: "closure",
			answer:   "it's a closure over the scope",
			want:     true,
		},
		{
			name:     "short expected absent",
			expected: "closure",
			answer:   "a clo",
			want:     false,
		},
		{
			name:     "needle split mid word still matches prefix",
			expected: "hoisting moves declarations",
			answer:   "hoisting m",
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := &Question{Type: TypeWritten, Expected: tt.expected, UserAnswer: tt.answer}
			if got := Grade(q); got != tt.want {
				t.Errorf("Grade(%q vs %q) = %v, want %v", tt.answer, tt.expected, got, tt.want)
			}
		})
	}
}

func TestGradeSkippedAndEmpty(t *testing.T) {
	t.Run("skipped", func(t *testing.T) {
		q := &Question{Type: TypeTrueFalse, Expected: LabelTrue, UserAnswer: LabelTrue, IsSkipped: true}
		if Grade(q) {
			t.Error("skipped question graded correct")
		}
	})

	t.Run("empty answer", func(t *testing.T) {
		q := &Question{Type: TypeWritten, Expected: "anything"}
		if Grade(q) {
			t.Error("empty answer graded correct")
		}
	})
}

func TestGradeIsPure(t *testing.T) {
	q := &Question{
		Type:       TypeWritten,
		Expected:   "A Promise is an object",
		UserAnswer: "a promise is an object",
	}

	first := Grade(q)
	second := Grade(q)
	if first != second {
		t.Errorf("Grade not stable: first %v, second %v", first, second)
	}
	if q.IsCorrect || q.IsSkipped {
		t.Error("Grade mutated the question")
	}
}
