package game

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// The helpers below move cards between zones so tests can arrange a table
// while the card total stays the same.

// ResetTable moves every hand and the discard pile back into the deck.
func (g *Game) ResetTable() {
	for _, hand := range g.hands {
		g.deck.Add(hand.cards...)
		hand.cards = hand.cards[:0]
	}
	g.deck.Add(g.pile.cards...)
	g.pile.cards = g.pile.cards[:0]
}

func (g *Game) GiveCards(player int, cards ...card.Card) {
	for _, c := range cards {
		g.takeFromDeck(c)
		g.hands[player].Add(c)
	}
}

// GiveRest hands the whole deck to player.
func (g *Game) GiveRest(player int) {
	g.hands[player].Add(g.deck.cards...)
	g.deck.cards = g.deck.cards[:0]
}

func (g *Game) SetTop(c card.Card, current color.Color) {
	g.takeFromDeck(c)
	g.pile.Push(c)
	g.currentColor = current
}

// BuryDeck moves all but keep deck cards under the top of the discard pile.
func (g *Game) BuryDeck(keep int) {
	buried := g.deck.cards[:len(g.deck.cards)-keep]
	rest := append([]card.Card(nil), g.deck.cards[len(g.deck.cards)-keep:]...)
	g.pile.cards = append(append([]card.Card(nil), buried...), g.pile.cards...)
	g.deck.cards = rest
}

func (g *Game) SetCurrent(player int) {
	g.turns.current = player
}

func (g *Game) takeFromDeck(c card.Card) {
	for i, candidate := range g.deck.cards {
		if candidate == c {
			g.deck.cards = append(g.deck.cards[:i], g.deck.cards[i+1:]...)
			return
		}
	}
	panic(fmt.Sprintf("%s is not in the deck", c))
}
