package msg

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

var Message = MessageWriter{}

type MessageWriter struct{}

func (m MessageWriter) FirstCardPlayed(card card.Card) string {
	return Sprintfln("First card is %s", card.Paint())
}

func (m MessageWriter) HumanPlayerDrewCards(cards []card.Card) string {
	return Sprintfln("You drew %s!", paintCards(cards))
}

func (m MessageWriter) HumanPlayerTurnStarted(playerName string, hand []card.Card, top card.Card, current color.Color) string {
	return Sprintlns([]string{
		fmt.Sprintf("It's your turn, %s!", playerName),
		fmt.Sprintf("Last played card: %s, color in effect: %s", top.Paint(), current.Paint(current.String())),
		fmt.Sprintf("Your hand: %s", paintIndexedCards(hand)),
	})
}

func (m MessageWriter) CardSelectionPrompt() string {
	return Sprintln("Enter the index of a card to play, or 'draw':")
}

func (m MessageWriter) ColorSelectionPrompt() string {
	return Sprintfln(
		"Select a color: '%s', '%s', '%s' or '%s'?",
		color.Red.Paint(color.Red.Name()),
		color.Yellow.Paint(color.Yellow.Name()),
		color.Green.Paint(color.Green.Name()),
		color.Blue.Paint(color.Blue.Name()),
	)
}

func (m MessageWriter) InvalidInput(input string) string {
	return Sprintfln("Invalid input '%s'", input)
}

func (m MessageWriter) UnknownColor(colorName string) string {
	return Sprintfln("Unknown color '%s'", colorName)
}

func (m MessageWriter) Rejected(playerName string, err error) string {
	return Sprintfln("%s, %s", playerName, strings.TrimSpace(err.Error()))
}

func (m MessageWriter) PlayerDrewCards(playerName string, cards []card.Card) string {
	if len(cards) == 1 {
		return Sprintfln("%s drew a card!", playerName)
	} else {
		return Sprintfln("%s drew %d cards!", playerName, len(cards))
	}
}

func (m MessageWriter) PlayerPassed(playerName string) string {
	return Sprintfln("%s passed!", playerName)
}

func (m MessageWriter) PlayerPickedColor(playerName string, picked color.Color) string {
	return Sprintfln("%s picked color %s!", playerName, picked.Paint(picked.String()))
}

func (m MessageWriter) PlayerPlayedCard(playerName string, card card.Card) string {
	return Sprintfln("%s played %s!", playerName, card.Paint())
}

func (m MessageWriter) PlayerTurnSkipped(playerName string) string {
	return Sprintfln("%s's turn skipped!", playerName)
}

func (m MessageWriter) TurnOrderReversed() string {
	return Sprintln("Turn order has been reversed!")
}

func (m MessageWriter) DeckRecycled(cards int) string {
	return Sprintfln("The deck ran out, %d discarded card(s) were shuffled back in!", cards)
}

func (m MessageWriter) Welcome() string {
	return Sprintfln(
		"WELCOME TO %s%s%s",
		color.Red.Paint("U"),
		color.Yellow.Paint("N"),
		color.Blue.Paint("O"),
	)
}

func (m MessageWriter) WinnerFound(playerName string) string {
	return Sprintfln("%s wins!", playerName)
}

func paintCards(cards []card.Card) string {
	painted := make([]string, 0, len(cards))
	for _, c := range cards {
		painted = append(painted, c.Paint())
	}
	return strings.Join(painted, " ")
}

func paintIndexedCards(cards []card.Card) string {
	painted := make([]string, 0, len(cards))
	for i, c := range cards {
		painted = append(painted, fmt.Sprintf("%d:%s", i, c.Paint()))
	}
	return strings.Join(painted, " ")
}
