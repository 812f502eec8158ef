package practice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reclamegraag/examiner/internal/wordset"
)

func TestDrill_WrongAnswerGoesToTheBack(t *testing.T) {
	pairs := newTestPairs(3)
	d := NewDrill(1, pairs, newTestConfig(wordset.ModeQuick, DirectionAToB))

	missedOnce := map[int64]bool{}
	for !d.IsComplete() {
		q := d.CurrentQuestion()
		require.NotNil(t, q)
		// Pair 2 is wrong on its first attempt only.
		correct := q.Pair.ID != 2 || missedOnce[2]
		if !correct {
			missedOnce[2] = true
		}
		require.True(t, d.Answer(correct))
		require.LessOrEqual(t, d.Asked(), 10)
	}

	mastered, total := d.Progress()
	assert.Equal(t, 3, mastered)
	assert.Equal(t, 3, total)
	assert.Equal(t, 4, d.Asked())
	assert.Equal(t, Stats{Correct: 3, Incorrect: 1, Total: 4, Percentage: 75}, d.Stats())
	assert.False(t, d.Answer(true))
	assert.Nil(t, d.CurrentQuestion())
}

func TestDrill_RequeuedPairComesBackLast(t *testing.T) {
	d := NewDrill(1, newTestPairs(3), newTestConfig(wordset.ModeQuick, DirectionAToB))

	first := d.CurrentQuestion().Pair
	require.True(t, d.Answer(false))
	assert.NotEqual(t, first.ID, d.CurrentQuestion().Pair.ID)

	require.True(t, d.Answer(true))
	require.True(t, d.Answer(true))
	assert.Equal(t, first.ID, d.CurrentQuestion().Pair.ID)

	mastered, _ := d.Progress()
	assert.Equal(t, 2, mastered)
}

func TestDrill_EmptyAndReset(t *testing.T) {
	empty := NewDrill(1, nil, newTestConfig(wordset.ModeQuick, DirectionAToB))
	assert.True(t, empty.IsComplete())
	assert.False(t, empty.Answer(true))

	d := NewDrill(1, newTestPairs(2), newTestConfig(wordset.ModeQuick, DirectionBToA))
	q := d.CurrentQuestion()
	assert.Equal(t, q.Pair.TermB, q.Prompt)
	d.Answer(true)
	d.Answer(false)

	d.Reset()
	mastered, _ := d.Progress()
	assert.Zero(t, mastered)
	assert.Zero(t, d.Asked())
	assert.Equal(t, Stats{}, d.Stats())
	assert.False(t, d.IsComplete())
}
