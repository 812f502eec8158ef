// Package reminder periodically reports word sets with pairs due for review.
package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/reclamegraag/examiner/internal/srs"
	"github.com/reclamegraag/examiner/internal/wordset"
)

// DueSet is a set with the number of its pairs due for review.
type DueSet struct {
	Set wordset.WordSet
	Due int
}

// Notifier delivers a reminder.
type Notifier interface {
	Notify(ctx context.Context, due []DueSet) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, due []DueSet) error

func (f NotifierFunc) Notify(ctx context.Context, due []DueSet) error {
	return f(ctx, due)
}

type sets interface {
	FindAllSets(ctx context.Context) ([]wordset.WordSet, error)
	FindAllPairs(ctx context.Context) ([]wordset.WordPair, error)
}

// Scheduler manages the reminder job
type Scheduler struct {
	scheduler *gocron.Scheduler
	repo      sets
	notifier  Notifier
	now       func() time.Time
	logger    *slog.Logger

	mu     sync.Mutex
	ctx    context.Context
	cancel context.CancelFunc
}

// New creates a new scheduler instance
func New(repo wordset.SetRepository, notifier Notifier) *Scheduler {
	s := gocron.NewScheduler(time.Local)
	s.SingletonModeAll()
	return &Scheduler{
		scheduler: s,
		repo:      repo,
		notifier:  notifier,
		now:       time.Now,
		logger:    slog.Default().With("component", "reminder"),
	}
}

// Start runs the check every interval, starting immediately, without blocking.
func (s *Scheduler) Start(ctx context.Context, every time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx, s.cancel = context.WithCancel(ctx)
	if _, err := s.scheduler.Every(every).Do(s.run); err != nil {
		return fmt.Errorf("scheduler.Every(%s).Do() > %w", every, err)
	}
	s.scheduler.StartAsync()
	return nil
}

// Stop terminates the reminder job
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	s.scheduler.Stop()
}

func (s *Scheduler) run() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()

	if err := s.Check(ctx); err != nil {
		s.logger.ErrorContext(ctx, "reminder check failed", "error", err)
	}
}

// Check notifies about every set with due pairs. Nothing is sent when no pair is due.
func (s *Scheduler) Check(ctx context.Context) error {
	due, err := DueSets(ctx, s.repo, s.now())
	if err != nil {
		return fmt.Errorf("DueSets() > %w", err)
	}
	if len(due) == 0 {
		s.logger.DebugContext(ctx, "no pairs due")
		return nil
	}
	if err := s.notifier.Notify(ctx, due); err != nil {
		return fmt.Errorf("notifier.Notify() > %w", err)
	}
	return nil
}

// DueSets counts due pairs per set, most due first.
func DueSets(ctx context.Context, repo sets, now time.Time) ([]DueSet, error) {
	allSets, err := repo.FindAllSets(ctx)
	if err != nil {
		return nil, fmt.Errorf("FindAllSets() > %w", err)
	}
	pairs, err := repo.FindAllPairs(ctx)
	if err != nil {
		return nil, fmt.Errorf("FindAllPairs() > %w", err)
	}

	counts := make(map[int64]int)
	for _, i := range srs.DueForReview(pairs, now) {
		counts[pairs[i].SetID]++
	}

	var due []DueSet
	for _, set := range allSets {
		if counts[set.ID] > 0 {
			due = append(due, DueSet{Set: set, Due: counts[set.ID]})
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].Due > due[j].Due
	})
	return due, nil
}
