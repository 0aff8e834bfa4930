package msg_test

import (
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/stretchr/testify/require"
)

func TestMessages(t *testing.T) {
	color.DisablePainting()

	scenarios := []struct {
		description string
		message     string
		expected    string
	}{
		{
			description: "first_card",
			message:     msg.Message.FirstCardPlayed(card.NewNumberCard(color.Red, 3)),
			expected:    "First card is [3](Red)\n",
		},
		{
			description: "one_card_drawn",
			message:     msg.Message.PlayerDrewCards("Annie", []card.Card{card.NewWildCard()}),
			expected:    "Annie drew a card!\n",
		},
		{
			description: "several_cards_drawn",
			message:     msg.Message.PlayerDrewCards("Annie", []card.Card{card.NewWildCard(), card.NewSkipCard(color.Red)}),
			expected:    "Annie drew 2 cards!\n",
		},
		{
			description: "own_cards_drawn",
			message:     msg.Message.HumanPlayerDrewCards([]card.Card{card.NewWildCard(), card.NewSkipCard(color.Red)}),
			expected:    "You drew (*) (/)(Red)!\n",
		},
		{
			description: "color_picked",
			message:     msg.Message.PlayerPickedColor("Braum", color.Green),
			expected:    "Braum picked color Green!\n",
		},
		{
			description: "rejected",
			message:     msg.Message.Rejected("Braum", consts.ErrorsIllegalPlay),
			expected:    "Braum, Card is not playable.\n",
		},
		{
			description: "turn_started",
			message: msg.Message.HumanPlayerTurnStarted(
				"Caitlyn",
				[]card.Card{card.NewNumberCard(color.Blue, 2), card.NewWildDrawFourCard()},
				card.NewReverseCard(color.Yellow),
				color.Yellow,
			),
			expected: "It's your turn, Caitlyn!\n" +
				"Last played card: <=>(Yellow), color in effect: Yellow\n" +
				"Your hand: 0:[2](Blue) 1:+4!\n",
		},
		{
			description: "winner",
			message:     msg.Message.WinnerFound("Draven"),
			expected:    "Draven wins!\n",
		},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			require.Equal(t, scenario.expected, scenario.message)
		})
	}
}
