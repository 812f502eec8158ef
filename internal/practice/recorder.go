package practice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/avast/retry-go"

	"github.com/reclamegraag/examiner/internal/srs"
	"github.com/reclamegraag/examiner/internal/wordset"
)

// ErrSessionIncomplete is returned when saving a session that has not finished.
var ErrSessionIncomplete = errors.New("session is not complete")

// Store is the part of the repository the recorder writes to.
type Store interface {
	UpdatePairProgress(ctx context.Context, id int64, progress wordset.Progress) error
	CreateSession(ctx context.Context, session *wordset.PracticeSession) error
}

// Recorder applies answers to the scheduling state of pairs and writes them
// to the store. Pair updates are written in the background so the session
// never waits on storage. Writes for the same pair are applied in the order
// they were recorded. A completed session is saved at most once.
type Recorder struct {
	store    Store
	attempts uint
	delay    time.Duration
	now      func() time.Time
	logger   *slog.Logger

	pending sync.WaitGroup
	errs    chan error

	// tails holds the latest queued write of each pair; a new write waits for
	// it to finish.
	tailsMu sync.Mutex
	tails   map[int64]chan struct{}

	mu    sync.Mutex
	saved map[string]struct{}
}

// NewRecorder creates a Recorder that tries each write retryAttempts+1 times.
func NewRecorder(store Store, retryAttempts uint) *Recorder {
	return &Recorder{
		store:    store,
		attempts: retryAttempts + 1,
		delay:    100 * time.Millisecond,
		now:      time.Now,
		logger:   slog.Default().With("component", "recorder"),
		errs:     make(chan error, 64),
		tails:    make(map[int64]chan struct{}),
		saved:    make(map[string]struct{}),
	}
}

// Errors delivers write failures that happened in the background.
func (r *Recorder) Errors() <-chan error {
	return r.errs
}

// Wait blocks until every background write has finished.
func (r *Recorder) Wait() {
	r.pending.Wait()
}

// RecordAnswer runs the scheduler for pair, updates it in place and writes
// the new progress in the background.
func (r *Recorder) RecordAnswer(ctx context.Context, pair *wordset.WordPair, resp Response) {
	now := r.now()
	quality := srs.DeriveQuality(resp.Correct, resp.Elapsed)
	next := srs.NextReview(quality, pair.EaseFactor, pair.Interval, now)

	progress := pair.Progress()
	progress.EaseFactor = next.EaseFactor
	progress.Interval = next.Interval
	progress.NextReview = next.NextReview
	countAnswer(&progress, resp.Correct, now)
	pair.ApplyProgress(progress)

	r.logger.Debug("recorded answer",
		"pair_id", pair.ID,
		"quality", int(quality),
		"interval", next.Interval,
		"ease_factor", next.EaseFactor)
	r.write(ctx, pair.ID, progress)
}

// RecordDrillAnswer updates only the counters and the last practice time of
// pair. Quick drills leave the schedule untouched.
func (r *Recorder) RecordDrillAnswer(ctx context.Context, pair *wordset.WordPair, correct bool) {
	progress := pair.Progress()
	countAnswer(&progress, correct, r.now())
	pair.ApplyProgress(progress)
	r.write(ctx, pair.ID, progress)
}

func countAnswer(progress *wordset.Progress, correct bool, now time.Time) {
	if correct {
		progress.CorrectCount++
	} else {
		progress.IncorrectCount++
	}
	progress.LastPractice = &now
}

func (r *Recorder) write(ctx context.Context, id int64, progress wordset.Progress) {
	done := make(chan struct{})
	r.tailsMu.Lock()
	previous := r.tails[id]
	r.tails[id] = done
	r.tailsMu.Unlock()

	r.pending.Add(1)
	go func() {
		defer r.pending.Done()
		defer r.release(id, done)
		if previous != nil {
			<-previous
		}

		err := r.retry(ctx, func() error {
			return r.store.UpdatePairProgress(ctx, id, progress)
		})
		if err == nil {
			return
		}
		err = fmt.Errorf("store.UpdatePairProgress(%d) > %w", id, err)
		r.logger.Error("failed to save pair progress", "pair_id", id, "error", err)
		select {
		case r.errs <- err:
		default:
		}
	}()
}

func (r *Recorder) release(id int64, done chan struct{}) {
	r.tailsMu.Lock()
	if r.tails[id] == done {
		delete(r.tails, id)
	}
	r.tailsMu.Unlock()
	close(done)
}

// SaveSession stores the history entry of a completed session. It returns
// false without writing when the session was already saved.
func (r *Recorder) SaveSession(ctx context.Context, session *Session) (bool, error) {
	if !session.IsComplete() {
		return false, ErrSessionIncomplete
	}

	key := session.ID.String()
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.saved[key]; ok {
		return false, nil
	}

	record := session.Record()
	if err := r.retry(ctx, func() error {
		return r.store.CreateSession(ctx, &record)
	}); err != nil {
		r.logger.Error("failed to save session", "session", key, "error", err)
		return false, fmt.Errorf("store.CreateSession() > %w", err)
	}
	r.saved[key] = struct{}{}
	r.logger.Debug("saved session", "session", key, "id", record.ID)
	return true, nil
}

func (r *Recorder) retry(ctx context.Context, fn func() error) error {
	return retry.Do(
		func() error {
			err := fn()
			if errors.Is(err, wordset.ErrNotFound) {
				return retry.Unrecoverable(err)
			}
			return err
		},
		retry.Context(ctx),
		retry.Attempts(r.attempts),
		retry.Delay(r.delay),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			return retry.BackOffDelay(n, err, config)
		}),
	)
}
