package generation

import "time"

// BackoffPolicy supplies the pauses between generation attempts.
type BackoffPolicy interface {
	// Delay is the steady-state pause between successful batches.
	Delay(attempt int) time.Duration
	// FailureDelay is the pause after a failed or malformed batch.
	FailureDelay(attempt int) time.Duration
	// LowYieldDelay is the extended pause taken after a sustained run
	// of low-uniqueness batches.
	LowYieldDelay(attempt int) time.Duration
}

// FixedBackoff pauses a constant base delay between batches, doubling it
// after failures and low-yield streaks.
type FixedBackoff struct {
	Base time.Duration
}

func (b FixedBackoff) Delay(int) time.Duration         { return b.Base }
func (b FixedBackoff) FailureDelay(int) time.Duration  { return 2 * b.Base }
func (b FixedBackoff) LowYieldDelay(int) time.Duration { return 2 * b.Base }

// ExponentialBackoff doubles the failure pause with each attempt, capped
// at Max when Max is positive.
type ExponentialBackoff struct {
	Base time.Duration
	Max  time.Duration
}

func (b ExponentialBackoff) Delay(int) time.Duration { return b.Base }

func (b ExponentialBackoff) FailureDelay(attempt int) time.Duration {
	d := b.Base
	for i := 1; i < attempt; i++ {
		d *= 2
		if b.Max > 0 && d >= b.Max {
			return b.Max
		}
	}
	return d
}

func (b ExponentialBackoff) LowYieldDelay(attempt int) time.Duration {
	return b.FailureDelay(attempt)
}
