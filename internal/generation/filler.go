package generation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/artatlas/curator/internal/artwork"
)

const (
	// DefaultBatchSize keeps batches small enough that the model does
	// not truncate the JSON output mid-string.
	DefaultBatchSize = 10

	// DefaultDelay is the steady-state pause between batches.
	DefaultDelay = 2 * time.Second

	// attemptSlack extends the attempt budget past the minimum number
	// of full batches, absorbing duplicate-heavy and failed batches.
	attemptSlack = 20

	// requestBuffer caps how far past the remaining gap a batch may
	// over-request to compensate for expected duplicates.
	requestBuffer = 5

	maxDuplicateBuffer   = 5
	bufferGrowthInterval = 3

	lowYieldThreshold   = 0.5
	lowYieldStreakLimit = 3
)

// MaxAttempts bounds a fill at the minimum number of full batches plus
// slack, so even an all-duplicate provider terminates.
func MaxAttempts(target, batchSize int) int {
	if batchSize < 1 {
		batchSize = 1
	}
	return target/batchSize + attemptSlack
}

// FillResult reports one category's fill outcome. Records holds the
// accumulated unique records; the counters feed the run summary and the
// YAML report.
type FillResult struct {
	Category   artwork.Category `json:"category"`
	Target     int              `json:"target"`
	Records    []artwork.Record `json:"-"`
	Attempts   int              `json:"attempts"`
	Parsed     int              `json:"parsed"`
	Duplicates int              `json:"duplicates"`
	Discarded  int              `json:"discarded"`
	Failures   int              `json:"failures"`
	Satisfied  bool             `json:"satisfied"`
}

// Filler drives repeated generation batches until a category's target is
// met or the attempt budget runs out.
type Filler struct {
	generator *Generator
	batchSize int
	backoff   BackoffPolicy
	limiter   *rate.Limiter
}

// NewFiller returns a Filler. A batchSize below 1 falls back to
// DefaultBatchSize, a nil backoff to FixedBackoff at DefaultDelay. The
// limiter paces provider calls and may be nil.
func NewFiller(generator *Generator, batchSize int, backoff BackoffPolicy, limiter *rate.Limiter) *Filler {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	if backoff == nil {
		backoff = FixedBackoff{Base: DefaultDelay}
	}
	return &Filler{generator: generator, batchSize: batchSize, backoff: backoff, limiter: limiter}
}

// BatchSize returns the nominal per-batch request size.
func (f *Filler) BatchSize() int {
	return f.batchSize
}

// Fill generates records for one category until target unique records
// accumulate or the attempt budget is exhausted. Only the first
// records still needed from each batch are kept; overflow is discarded.
// Fill never returns an error: provider failures and malformed responses
// count against the attempt budget, and a short result is reported
// through the FillResult counters. Cancelling the context stops the loop
// at the next iteration boundary with whatever has accumulated.
func (f *Filler) Fill(ctx context.Context, category artwork.Category, target int, existing []artwork.Record) FillResult {
	result := FillResult{Category: category, Target: target}
	if target <= 0 {
		result.Satisfied = true
		return result
	}

	known := artwork.NewKeySet(existing)
	accumulated := make([]artwork.Record, 0, target)
	maxAttempts := MaxAttempts(target, f.batchSize)
	lowYieldStreak := 0

	slog.Info("Filling category", "category", category, "target", target, "existing", len(existing))

	for len(accumulated) < target && result.Attempts < maxAttempts {
		if ctx.Err() != nil {
			slog.Warn("Generation cancelled", "category", category, "generated", len(accumulated))
			break
		}

		result.Attempts++
		remaining := target - len(accumulated)

		// Request more than the gap to compensate for duplicates,
		// growing the buffer as attempts accumulate.
		duplicateBuffer := min(maxDuplicateBuffer, result.Attempts/bufferGrowthInterval)
		requested := min(f.batchSize+duplicateBuffer, remaining+requestBuffer)
		if requested < 1 {
			requested = 1
		}

		if f.limiter != nil {
			if err := f.limiter.Wait(ctx); err != nil {
				slog.Warn("Generation cancelled", "category", category, "generated", len(accumulated))
				break
			}
		}

		knownRecords := make([]artwork.Record, 0, len(existing)+len(accumulated))
		knownRecords = append(knownRecords, existing...)
		knownRecords = append(knownRecords, accumulated...)

		batch, parsed, err := f.generator.GenerateBatch(ctx, BatchRequest{
			Category: category,
			Count:    requested,
			BatchNum: result.Attempts - 1,
			Known:    knownRecords,
		}, known)
		if err != nil {
			result.Failures++
			if TruncatedResponse(err) {
				slog.Warn("Model output truncated, retrying", "category", category, "attempt", result.Attempts)
			} else {
				slog.Warn("Batch failed, retrying", "category", category, "attempt", result.Attempts, "error", err)
			}
			if !f.pause(ctx, f.backoff.FailureDelay(result.Attempts)) {
				break
			}
			continue
		}

		result.Parsed += parsed
		result.Duplicates += parsed - len(batch)

		if float64(len(batch))/float64(requested) < lowYieldThreshold {
			lowYieldStreak++
			slog.Warn("Low unique yield", "category", category, "unique", len(batch), "requested", requested)
		} else {
			lowYieldStreak = 0
		}

		kept := batch
		if len(kept) > remaining {
			result.Discarded += len(kept) - remaining
			kept = kept[:remaining]
		}
		for _, record := range kept {
			known.Add(record.Key())
		}
		accumulated = append(accumulated, kept...)

		slog.Info("Batch complete",
			"category", category,
			"progress", fmt.Sprintf("%d/%d", len(accumulated), target),
			"unique", len(batch),
			"parsed", parsed)

		if len(accumulated) >= target {
			break
		}

		if lowYieldStreak >= lowYieldStreakLimit {
			slog.Info("Sustained low yield, extending pause", "category", category)
			lowYieldStreak = 0
			if !f.pause(ctx, f.backoff.LowYieldDelay(result.Attempts)) {
				break
			}
		} else if !f.pause(ctx, f.backoff.Delay(result.Attempts)) {
			break
		}
	}

	result.Records = accumulated
	result.Satisfied = len(accumulated) >= target
	if !result.Satisfied {
		slog.Warn("Target not reached", "category", category, "generated", len(accumulated), "target", target)
	}
	return result
}

// pause sleeps for d unless the context is cancelled first, reporting
// whether the fill should keep going.
func (f *Filler) pause(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
