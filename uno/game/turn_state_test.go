package game_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurrent(t *testing.T) {
	turns := game.NewTurnState(4)
	assert.Equal(t, 0, turns.Current())
	turns.Advance()
	assert.Equal(t, 1, turns.Current())
	turns.Reverse()
	turns.Advance()
	assert.Equal(t, 0, turns.Current())
	turns.Advance()
	assert.Equal(t, 3, turns.Current())
	turns.Advance()
	assert.Equal(t, 2, turns.Current())
	turns.Reverse()
	turns.Advance()
	assert.Equal(t, 3, turns.Current())
	turns.Advance()
	assert.Equal(t, 0, turns.Current())
}

func TestAdvance(t *testing.T) {
	turns := game.NewTurnState(4)
	assert.Equal(t, 1, turns.Advance())
	assert.Equal(t, 2, turns.Advance())
	assert.Equal(t, 3, turns.Advance())
	assert.Equal(t, 0, turns.Advance())
}

func TestPeek(t *testing.T) {
	turns := game.NewTurnState(3)
	require.Equal(t, 1, turns.Peek())
	require.Equal(t, 0, turns.Current())
	turns.Reverse()
	require.Equal(t, 2, turns.Peek())
}

func TestReverse(t *testing.T) {
	t.Run("flips_direction", func(t *testing.T) {
		turns := game.NewTurnState(4)
		require.Equal(t, 1, turns.Direction())
		turns.Reverse()
		require.Equal(t, -1, turns.Direction())
		turns.Reverse()
		require.Equal(t, 1, turns.Direction())
	})

	t.Run("two_reverses_restore_turn_order", func(t *testing.T) {
		reversed := game.NewTurnState(5)
		plain := game.NewTurnState(5)
		reversed.Reverse()
		reversed.Reverse()
		for i := 0; i < 7; i++ {
			require.Equal(t, plain.Advance(), reversed.Advance())
		}
	})

	t.Run("two_seats_keep_alternating", func(t *testing.T) {
		turns := game.NewTurnState(2)
		turns.Reverse()
		require.Equal(t, 1, turns.Advance())
		require.Equal(t, 0, turns.Advance())
	})
}

func TestSkipNext(t *testing.T) {
	turns := game.NewTurnState(4)
	require.Equal(t, 2, turns.SkipNext())
	require.Equal(t, 0, turns.SkipNext())
	turns.Reverse()
	require.Equal(t, 2, turns.SkipNext())

	three := game.NewTurnState(3)
	three.Advance()
	require.Equal(t, 0, three.SkipNext())
}
