package wordset

import (
	"context"
	"log/slog"
	"sync"
)

// ChangeKind names the kind of entity that was written.
type ChangeKind string

const (
	ChangeSet     ChangeKind = "set"
	ChangePair    ChangeKind = "pair"
	ChangeSession ChangeKind = "session"
)

// Change describes one successful write.
type Change struct {
	Kind  ChangeKind
	SetID int64
	ID    int64
}

// Listener receives a change after it has been committed.
type Listener func(ctx context.Context, change Change)

// ObservedRepository wraps a Repository and notifies subscribers of every
// successful write. Reads pass through untouched.
type ObservedRepository struct {
	Repository

	mu        sync.RWMutex
	listeners map[int]Listener
	nextID    int
	logger    *slog.Logger
}

// NewObservedRepository creates a new ObservedRepository around repo.
func NewObservedRepository(repo Repository) *ObservedRepository {
	return &ObservedRepository{
		Repository: repo,
		listeners:  make(map[int]Listener),
		logger:     slog.Default().With("component", "observed_repository"),
	}
}

// Subscribe registers a listener and returns a function that removes it.
func (r *ObservedRepository) Subscribe(listener Listener) func() {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.nextID
	r.nextID++
	r.listeners[id] = listener
	r.logger.Debug("registered listener", "listener_count", len(r.listeners))

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		delete(r.listeners, id)
	}
}

func (r *ObservedRepository) publish(ctx context.Context, change Change) {
	r.mu.RLock()
	listeners := make([]Listener, 0, len(r.listeners))
	for _, l := range r.listeners {
		listeners = append(listeners, l)
	}
	r.mu.RUnlock()

	r.logger.Debug("publishing change",
		"kind", change.Kind,
		"set_id", change.SetID,
		"id", change.ID,
		"listener_count", len(listeners))
	for _, l := range listeners {
		l(ctx, change)
	}
}

func (r *ObservedRepository) CreateSet(ctx context.Context, set *WordSet, pairs []WordPair) error {
	if err := r.Repository.CreateSet(ctx, set, pairs); err != nil {
		return err
	}
	r.publish(ctx, Change{Kind: ChangeSet, SetID: set.ID, ID: set.ID})
	return nil
}

func (r *ObservedRepository) UpdateSet(ctx context.Context, set *WordSet) error {
	if err := r.Repository.UpdateSet(ctx, set); err != nil {
		return err
	}
	r.publish(ctx, Change{Kind: ChangeSet, SetID: set.ID, ID: set.ID})
	return nil
}

func (r *ObservedRepository) DeleteSet(ctx context.Context, id int64) error {
	if err := r.Repository.DeleteSet(ctx, id); err != nil {
		return err
	}
	r.publish(ctx, Change{Kind: ChangeSet, SetID: id, ID: id})
	return nil
}

func (r *ObservedRepository) CreatePair(ctx context.Context, pair *WordPair) error {
	if err := r.Repository.CreatePair(ctx, pair); err != nil {
		return err
	}
	r.publish(ctx, Change{Kind: ChangePair, SetID: pair.SetID, ID: pair.ID})
	return nil
}

func (r *ObservedRepository) UpdatePairTerms(ctx context.Context, pair *WordPair) error {
	if err := r.Repository.UpdatePairTerms(ctx, pair); err != nil {
		return err
	}
	r.publish(ctx, Change{Kind: ChangePair, SetID: pair.SetID, ID: pair.ID})
	return nil
}

func (r *ObservedRepository) UpdatePairProgress(ctx context.Context, id int64, progress Progress) error {
	if err := r.Repository.UpdatePairProgress(ctx, id, progress); err != nil {
		return err
	}
	r.publish(ctx, Change{Kind: ChangePair, ID: id})
	return nil
}

func (r *ObservedRepository) DeletePair(ctx context.Context, id int64) error {
	if err := r.Repository.DeletePair(ctx, id); err != nil {
		return err
	}
	r.publish(ctx, Change{Kind: ChangePair, ID: id})
	return nil
}

func (r *ObservedRepository) ResetSetProgress(ctx context.Context, setID int64) error {
	if err := r.Repository.ResetSetProgress(ctx, setID); err != nil {
		return err
	}
	r.publish(ctx, Change{Kind: ChangePair, SetID: setID})
	return nil
}

func (r *ObservedRepository) CreateSession(ctx context.Context, session *PracticeSession) error {
	if err := r.Repository.CreateSession(ctx, session); err != nil {
		return err
	}
	r.publish(ctx, Change{Kind: ChangeSession, SetID: session.SetID, ID: session.ID})
	return nil
}
