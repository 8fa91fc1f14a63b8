package mastery

// Bucket classifies a card's historical correctness for reporting.
// Derived on demand from the card's counters, never stored.
type Bucket string

const (
	// BucketLearning: the card has never been attempted.
	BucketLearning Bucket = "still learning"

	// BucketStudying: attempted, but not yet dominated by correct answers.
	BucketStudying Bucket = "still studying"

	// BucketMastered: correct answers dominate per the active policy.
	BucketMastered Bucket = "mastered"
)

// Policy decides whether a card's counters qualify as mastered.
// Swappable so the threshold can be tuned without touching call sites.
type Policy func(correct, incorrect int) bool

// DefaultPolicy requires at least two correct answers and twice as many
// correct as incorrect.
func DefaultPolicy(correct, incorrect int) bool {
	return correct >= 2 && correct >= incorrect*2
}

// Classify maps a card's counters into a bucket under the given policy.
// A nil policy falls back to DefaultPolicy.
func Classify(correct, incorrect int, policy Policy) Bucket {
	if correct == 0 && incorrect == 0 {
		return BucketLearning
	}
	if policy == nil {
		policy = DefaultPolicy
	}
	if policy(correct, incorrect) {
		return BucketMastered
	}
	return BucketStudying
}
