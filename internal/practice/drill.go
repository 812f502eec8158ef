package practice

import (
	"math/rand/v2"
	"time"

	"github.com/reclamegraag/examiner/internal/wordset"
)

// Drill is the quick mode loop. A wrong answer sends the pair to the back of
// the queue and a right answer masters it. The drill ends when every pair
// has been mastered.
type Drill struct {
	SetID int64

	direction Direction
	rng       *rand.Rand
	pairs     []*wordset.WordPair

	queue    []*wordset.WordPair
	mastered map[int64]struct{}
	tally    tally
	asked    int
	question *Question
}

// NewDrill starts a drill over pairs.
func NewDrill(setID int64, pairs []*wordset.WordPair, config Config) *Drill {
	if config.Direction == "" {
		config.Direction = DirectionAToB
	}
	rng := config.Rand
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}

	d := &Drill{
		SetID:     setID,
		direction: config.Direction,
		rng:       rng,
		pairs:     pairs,
	}
	d.Reset()
	return d
}

// Reset reshuffles the pairs and forgets every answer.
func (d *Drill) Reset() {
	d.queue = shuffle(d.rng, d.pairs)
	d.mastered = make(map[int64]struct{}, len(d.pairs))
	d.tally = tally{}
	d.asked = 0
	d.question = nil
}

// IsComplete reports whether the queue is empty.
func (d *Drill) IsComplete() bool {
	return len(d.queue) == 0
}

// CurrentQuestion returns the question at the front of the queue, or nil
// when the drill is complete.
func (d *Drill) CurrentQuestion() *Question {
	if len(d.queue) == 0 {
		return nil
	}
	if d.question == nil {
		q := Resolve(d.queue[0], d.direction, d.rng)
		d.question = &q
	}
	return d.question
}

// Answer masters or requeues the pair at the front of the queue.
// It returns false when there is no current question.
func (d *Drill) Answer(correct bool) bool {
	if len(d.queue) == 0 {
		return false
	}

	pair := d.queue[0]
	d.queue = d.queue[1:]
	d.question = nil
	d.asked++

	if correct {
		d.tally.correct++
		d.mastered[pair.ID] = struct{}{}
		return true
	}
	d.tally.incorrect++
	d.queue = append(d.queue, pair)
	return true
}

// Progress returns the number of mastered pairs and the number of pairs.
func (d *Drill) Progress() (int, int) {
	return len(d.mastered), len(d.pairs)
}

// Asked returns how many questions have been answered so far.
func (d *Drill) Asked() int {
	return d.asked
}

// Stats returns the score over every answer of the drill.
func (d *Drill) Stats() Stats {
	return newStats(d.tally.correct, d.tally.incorrect)
}
