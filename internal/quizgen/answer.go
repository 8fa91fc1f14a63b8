package quizgen

import "strings"

// needleLen is how many characters of the expected written answer must
// appear in the learner's response.
const needleLen = 10

// Grade decides correctness of an answered question. Pure: grading the same
// question twice yields the same result, and the question is not mutated.
//
// Rules per type:
//   - multiple choice / true-false: exact, case-sensitive string equality.
//     These are closed-form answers, so no normalization is applied.
//   - written: case-insensitive and whitespace-trimmed; correct iff the
//     learner's answer contains the first 10 characters of the expected
//     answer as a substring (the whole expected answer when shorter). A
//     loose heuristic: free text can't be graded exactly, but the core of
//     the reference answer has to appear.
//
// Skipped or empty answers are always incorrect.
func Grade(q *Question) bool {
	if q.IsSkipped || q.UserAnswer == "" {
		return false
	}

	switch q.Type {
	case TypeWritten:
		return checkWritten(q.UserAnswer, q.Expected)
	default:
		return q.UserAnswer == q.Expected
	}
}

// checkWritten applies the written-answer heuristic.
func checkWritten(learnerAnswer, expected string) bool {
	learner := strings.ToLower(strings.TrimSpace(learnerAnswer))
	reference := strings.ToLower(strings.TrimSpace(expected))
	if reference == "" {
		return false
	}

	// First needleLen characters, counting runes so multi-byte answers
	// don't get split mid-character.
	needle := reference
	if runes := []rune(reference); len(runes) > needleLen {
		needle = string(runes[:needleLen])
	}

	return strings.Contains(learner, needle)
}
