package card_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	require.True(t, card.NewNumberCard(color.Red, 6).Equal(card.NewNumberCard(color.Red, 6)))
	require.False(t, card.NewNumberCard(color.Red, 6).Equal(card.NewNumberCard(color.Red, 7)))
	require.False(t, card.NewNumberCard(color.Red, 6).Equal(card.NewNumberCard(color.Blue, 6)))
	require.False(t, card.NewSkipCard(color.Red).Equal(card.NewReverseCard(color.Red)))
	require.True(t, card.NewWildCard() == card.NewWildCard())
	require.False(t, card.NewWildCard() == card.NewWildDrawFourCard())
}

func TestNumber(t *testing.T) {
	number, ok := card.NewNumberCard(color.Green, 0).Number()
	require.True(t, ok)
	require.Equal(t, 0, number)

	_, ok = card.NewSkipCard(color.Green).Number()
	require.False(t, ok)

	require.Panics(t, func() { card.NewNumberCard(color.Green, 10) })
}

func TestColorInvariant(t *testing.T) {
	require.Equal(t, color.None, card.NewWildCard().Color())
	require.Equal(t, color.None, card.NewWildDrawFourCard().Color())
	require.True(t, card.NewWildCard().IsWild())
	require.True(t, card.NewWildDrawFourCard().IsWild())
	require.False(t, card.NewDrawTwoCard(color.Yellow).IsWild())
	require.Equal(t, color.Yellow, card.NewDrawTwoCard(color.Yellow).Color())
}

func TestActions(t *testing.T) {
	scenarios := []struct {
		description string
		card        card.Card
		expected    []action.Action
	}{
		{
			description: "number_card_matches_its_color",
			card:        card.NewNumberCard(color.Blue, 3),
			expected:    []action.Action{action.NewMatchColorAction()},
		},
		{
			description: "reverse_card_reverses_turns",
			card:        card.NewReverseCard(color.Blue),
			expected:    []action.Action{action.NewMatchColorAction(), action.NewReverseTurnsAction()},
		},
		{
			description: "skip_card_skips_a_turn",
			card:        card.NewSkipCard(color.Blue),
			expected:    []action.Action{action.NewMatchColorAction(), action.NewSkipTurnAction()},
		},
		{
			description: "draw_two_card_draws_two",
			card:        card.NewDrawTwoCard(color.Blue),
			expected:    []action.Action{action.NewMatchColorAction(), action.NewDrawCardsAction(2)},
		},
		{
			description: "wild_card_picks_a_color",
			card:        card.NewWildCard(),
			expected:    []action.Action{action.NewPickColorAction()},
		},
		{
			description: "wild_draw_four_card_picks_a_color_and_draws_four",
			card:        card.NewWildDrawFourCard(),
			expected:    []action.Action{action.NewPickColorAction(), action.NewDrawCardsAction(4)},
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expected, scenario.card.Actions())
		})
	}
}

func TestString(t *testing.T) {
	require.Equal(t, "Red 5", card.NewNumberCard(color.Red, 5).String())
	require.Equal(t, "Yellow Skip", card.NewSkipCard(color.Yellow).String())
	require.Equal(t, "Green Reverse", card.NewReverseCard(color.Green).String())
	require.Equal(t, "Blue Draw Two", card.NewDrawTwoCard(color.Blue).String())
	require.Equal(t, "Wild", card.NewWildCard().String())
	require.Equal(t, "Wild Draw Four", card.NewWildDrawFourCard().String())
}

func TestPaint(t *testing.T) {
	color.DisablePainting()
	require.Equal(t, "[5](Red)", card.NewNumberCard(color.Red, 5).Paint())
	require.Equal(t, "+2!(Blue)", card.NewDrawTwoCard(color.Blue).Paint())
	require.Equal(t, "(*)", card.NewWildCard().Paint())
}
