package game

import (
	"fmt"
	"strings"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// State is a read-only snapshot of a game as seen by one player.
type State struct {
	Status            consts.GameStatus
	LastPlayedCard    card.Card
	CurrentColor      color.Color
	CurrentPlayer     int
	Direction         int
	Viewer            int
	CurrentPlayerHand []card.Card
	PlayerSequence    []string
	PlayerHandCounts  map[string]int
	DeckSize          int
	Winner            int
}

func (g *Game) ExtractState(viewer int) State {
	playerHandCounts := make(map[string]int, len(g.players))
	for i, name := range g.players {
		playerHandCounts[name] = g.hands[i].Size()
	}

	top, _ := g.pile.Top()
	return State{
		Status:            g.status,
		LastPlayedCard:    top,
		CurrentColor:      g.currentColor,
		CurrentPlayer:     g.turns.Current(),
		Direction:         g.turns.Direction(),
		Viewer:            viewer,
		CurrentPlayerHand: g.Hand(viewer),
		PlayerSequence:    g.Players(),
		PlayerHandCounts:  playerHandCounts,
		DeckSize:          g.deck.Size(),
		Winner:            g.winner,
	}
}

// String renders the table as the viewer sees it. Hands are shown with their
// index so a console player can pick one.
func (s State) String() string {
	var lines []string
	lines = append(lines, fmt.Sprintf("Last played card: %s, color in effect: %s", s.LastPlayedCard.Paint(), s.CurrentColor.Paint(s.CurrentColor.String())))

	var playerStatuses []string
	for i, playerName := range s.PlayerSequence {
		playerStatus := fmt.Sprintf("%s (%d card(s))", playerName, s.PlayerHandCounts[playerName])
		if i == s.CurrentPlayer {
			playerStatus = "*" + playerStatus
		}
		playerStatuses = append(playerStatuses, playerStatus)
	}
	order := "clockwise"
	if s.Direction < 0 {
		order = "counterclockwise"
	}
	lines = append(lines, fmt.Sprintf("Turn order (%s): %s", order, strings.Join(playerStatuses, ", ")))
	lines = append(lines, fmt.Sprintf("Cards left in deck: %d", s.DeckSize))

	var handCards []string
	for i, handCard := range s.CurrentPlayerHand {
		handCards = append(handCards, fmt.Sprintf("%d:%s", i, handCard.Paint()))
	}
	lines = append(lines, fmt.Sprintf("Your hand: %s", strings.Join(handCards, " ")))

	return strings.Join(lines, "\n")
}
