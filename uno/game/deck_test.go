package game_test

import (
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

func TestNewDeck(t *testing.T) {
	t.Run("holds_108_cards", func(t *testing.T) {
		require.Equal(t, consts.DeckSize, game.NewDeck().Size())
	})

	t.Run("has_the_standard_composition", func(t *testing.T) {
		counts := make(map[card.Card]int)
		for _, c := range game.NewDeck().Cards() {
			counts[c]++
		}

		require.Equal(t, 4, counts[card.NewWildCard()])
		require.Equal(t, 4, counts[card.NewWildDrawFourCard()])
		for _, c := range color.All {
			require.Equal(t, 1, counts[card.NewNumberCard(c, 0)], c.Name())
			for number := 1; number <= 9; number++ {
				require.Equal(t, 2, counts[card.NewNumberCard(c, number)], c.Name())
			}
			require.Equal(t, 2, counts[card.NewReverseCard(c)], c.Name())
			require.Equal(t, 2, counts[card.NewSkipCard(c)], c.Name())
			require.Equal(t, 2, counts[card.NewDrawTwoCard(c)], c.Name())
		}
		require.Len(t, counts, 4*(10+3)+2)
	})
}

func TestDrawTop(t *testing.T) {
	t.Run("returns_the_last_card", func(t *testing.T) {
		deck := game.NewDeck()
		cards := deck.Cards()
		top, err := deck.DrawTop()
		require.NoError(t, err)
		require.Equal(t, cards[len(cards)-1], top)
		require.Equal(t, consts.DeckSize-1, deck.Size())
	})

	t.Run("fails_when_empty", func(t *testing.T) {
		deck := game.NewDeck()
		for i := 0; i < consts.DeckSize; i++ {
			_, err := deck.DrawTop()
			require.NoError(t, err)
		}
		_, err := deck.DrawTop()
		require.ErrorIs(t, err, consts.ErrorsEmptyDeck)
		require.True(t, consts.IsFatal(err))
	})
}

func TestAdd(t *testing.T) {
	deck := game.NewDeck()
	deck.Add(card.NewWildCard())
	require.Equal(t, consts.DeckSize+1, deck.Size())
	top, err := deck.DrawTop()
	require.NoError(t, err)
	require.Equal(t, card.NewWildCard(), top)
}

func TestShuffle(t *testing.T) {
	t.Run("keeps_the_same_cards", func(t *testing.T) {
		deck := game.NewDeck()
		deck.Shuffle(game.NewSeededShuffler(7))
		require.ElementsMatch(t, game.NewDeck().Cards(), deck.Cards())
	})

	t.Run("is_deterministic_for_a_seed", func(t *testing.T) {
		first := game.NewDeck()
		second := game.NewDeck()
		first.Shuffle(game.NewSeededShuffler(42))
		second.Shuffle(game.NewSeededShuffler(42))
		require.Equal(t, first.Cards(), second.Cards())
		require.NotEqual(t, game.NewDeck().Cards(), first.Cards())
	})
}
