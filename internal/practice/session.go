package practice

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/reclamegraag/examiner/internal/wordset"
)

// Round identifies which pass over the queue is running.
type Round int

const (
	RoundFirst Round = iota
	RoundRetry
)

func (r Round) String() string {
	if r == RoundRetry {
		return "retry"
	}
	return "first"
}

// Stats is the headline score of a session.
type Stats struct {
	Correct    int
	Incorrect  int
	Total      int
	Percentage int
}

func newStats(correct, incorrect int) Stats {
	total := correct + incorrect
	stats := Stats{Correct: correct, Incorrect: incorrect, Total: total}
	if total > 0 {
		stats.Percentage = int(math.Round(float64(correct) / float64(total) * 100))
	}
	return stats
}

// Config holds the options a session is started with.
type Config struct {
	Mode      wordset.PracticeMode
	Direction Direction
	// Distractors are the pairs multiple-choice options are drawn from,
	// usually every pair of the set. The practiced pairs are used when empty.
	Distractors []*wordset.WordPair
	// Rand drives shuffling, random directions and multiple-choice options.
	// A time-seeded source is used when nil.
	Rand *rand.Rand
	// Now defaults to time.Now.
	Now func() time.Time
}

// Response is the outcome of one answered question.
type Response struct {
	Correct bool
	// Elapsed is zero when the answer was not timed.
	Elapsed time.Duration
	Input   string
}

type tally struct {
	correct   int
	incorrect int
}

// activeRound is the state of the pass currently running.
type activeRound struct {
	round    Round
	queue    []*wordset.WordPair
	position int
	missed   map[int64]struct{}
	tally    tally
	// question caches the resolved question at position.
	question *Question
}

// Session is one practice run over a set of pairs. A pass over the shuffled
// pairs is followed by retry passes over exactly the pairs missed in the
// previous pass, until a pass ends without mistakes.
//
// Session is not safe for concurrent use.
type Session struct {
	ID        uuid.UUID
	SetID     int64
	StartedAt time.Time

	config Config
	rng    *rand.Rand
	now    func() time.Time
	pairs  []*wordset.WordPair

	// active is nil once the session is complete.
	active     *activeRound
	reviewed   []wordset.ReviewedPair
	firstRound *Stats
}

// NewSession starts a session over pairs. A session without pairs is
// complete from the start.
func NewSession(setID int64, pairs []*wordset.WordPair, config Config) *Session {
	if config.Direction == "" {
		config.Direction = DirectionAToB
	}
	rng := config.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	now := config.Now
	if now == nil {
		now = time.Now
	}

	s := &Session{
		SetID:  setID,
		config: config,
		rng:    rng,
		now:    now,
		pairs:  pairs,
	}
	s.Reset()
	return s
}

// Reset reshuffles the original pairs and clears every log and tally.
// The restarted run gets a new identity and is recorded on its own.
func (s *Session) Reset() {
	s.ID = uuid.New()
	s.StartedAt = s.now()
	s.reviewed = nil
	s.firstRound = nil
	s.active = nil
	if len(s.pairs) == 0 {
		return
	}
	s.active = &activeRound{
		round:  RoundFirst,
		queue:  shuffle(s.rng, s.pairs),
		missed: make(map[int64]struct{}),
	}
}

// Mode returns the mode the session was started with.
func (s *Session) Mode() wordset.PracticeMode {
	return s.config.Mode
}

// IsComplete reports whether the session has finished.
func (s *Session) IsComplete() bool {
	return s.active == nil
}

// Round returns the pass currently running. A complete session reports the
// last pass it ran.
func (s *Session) Round() Round {
	if s.active == nil {
		if s.firstRound != nil {
			return RoundRetry
		}
		return RoundFirst
	}
	return s.active.round
}

// Position returns the zero-based index of the current question within the
// pass and the length of the pass.
func (s *Session) Position() (int, int) {
	if s.active == nil {
		return 0, 0
	}
	return s.active.position, len(s.active.queue)
}

// CurrentQuestion returns the question at the current position, or nil when
// the session is complete. The question is resolved once per position and
// returned unchanged on subsequent calls.
func (s *Session) CurrentQuestion() *Question {
	a := s.active
	if a == nil || a.position >= len(a.queue) {
		return nil
	}
	if a.question == nil {
		q := Resolve(a.queue[a.position], s.config.Direction, s.rng)
		if s.config.Mode == wordset.ModeMultipleChoice {
			q.Options = BuildOptions(q, s.distractors(), s.rng)
		}
		a.question = &q
	}
	return a.question
}

func (s *Session) distractors() []*wordset.WordPair {
	if len(s.config.Distractors) > 0 {
		return s.config.Distractors
	}
	return s.pairs
}

// Answer records the response to the current question without advancing.
// It returns false when there is no current question.
func (s *Session) Answer(resp Response) bool {
	q := s.CurrentQuestion()
	if q == nil {
		return false
	}

	s.reviewed = append(s.reviewed, wordset.ReviewedPair{
		PairID:      q.Pair.ID,
		TermA:       q.Pair.TermA,
		TermB:       q.Pair.TermB,
		UserAnswer:  resp.Input,
		Correct:     resp.Correct,
		TimeSpentMs: resp.Elapsed.Milliseconds(),
	})

	if resp.Correct {
		s.active.tally.correct++
	} else {
		s.active.tally.incorrect++
		s.active.missed[q.Pair.ID] = struct{}{}
	}
	return true
}

// Advance moves to the next question. At the end of a pass it either starts
// a retry pass over the missed pairs or completes the session.
// It returns false when the session is already complete.
func (s *Session) Advance() bool {
	a := s.active
	if a == nil {
		return false
	}

	a.position++
	a.question = nil
	if a.position < len(a.queue) {
		return true
	}

	if len(a.missed) == 0 {
		s.active = nil
		return true
	}

	if a.round == RoundFirst {
		stats := newStats(a.tally.correct, a.tally.incorrect)
		s.firstRound = &stats
	}

	var retry []*wordset.WordPair
	for _, p := range a.queue {
		if _, ok := a.missed[p.ID]; ok {
			retry = append(retry, p)
			delete(a.missed, p.ID)
		}
	}
	s.active = &activeRound{
		round:  RoundRetry,
		queue:  shuffle(s.rng, retry),
		missed: make(map[int64]struct{}),
	}
	return true
}

// Stats returns the first pass score once a retry pass has started, and the
// score over every recorded answer otherwise.
func (s *Session) Stats() Stats {
	if s.firstRound != nil {
		return *s.firstRound
	}
	var correct, incorrect int
	for _, r := range s.reviewed {
		if r.Correct {
			correct++
		} else {
			incorrect++
		}
	}
	return newStats(correct, incorrect)
}

// Reviewed returns every recorded answer, including those of retry passes.
func (s *Session) Reviewed() []wordset.ReviewedPair {
	return s.reviewed
}

// Record builds the history entry for the session.
func (s *Session) Record() wordset.PracticeSession {
	stats := s.Stats()
	record := wordset.PracticeSession{
		UUID:             s.ID.String(),
		SetID:            s.SetID,
		Mode:             s.config.Mode,
		StartedAt:        s.StartedAt,
		TotalQuestions:   stats.Total,
		CorrectAnswers:   stats.Correct,
		IncorrectAnswers: stats.Incorrect,
		ReviewedPairs:    append([]wordset.ReviewedPair(nil), s.reviewed...),
	}
	if s.IsComplete() {
		completed := s.now()
		record.CompletedAt = &completed
	}
	return record
}
