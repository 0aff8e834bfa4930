package game

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
)

// Pile is the discard pile. The last card is the top.
type Pile struct {
	cards []card.Card
}

func NewPile() *Pile {
	return &Pile{cards: make([]card.Card, 0, 54)}
}

func (p *Pile) Push(c card.Card) {
	p.cards = append(p.cards, c)
}

func (p *Pile) Cards() []card.Card {
	cards := make([]card.Card, len(p.cards))
	copy(cards, p.cards)
	return cards
}

func (p *Pile) Top() (card.Card, error) {
	pileSize := len(p.cards)
	if pileSize == 0 {
		return card.Card{}, consts.ErrorsEmptyPile
	}
	return p.cards[pileSize-1], nil
}

func (p *Pile) Size() int {
	return len(p.cards)
}

// Recyclable is the number of cards Recycle would hand back.
func (p *Pile) Recyclable() int {
	if len(p.cards) == 0 {
		return 0
	}
	return len(p.cards) - 1
}

// Recycle removes and returns every card under the top.
func (p *Pile) Recycle() []card.Card {
	if len(p.cards) <= 1 {
		return nil
	}
	recycled := make([]card.Card, len(p.cards)-1)
	copy(recycled, p.cards[:len(p.cards)-1])
	p.cards = []card.Card{p.cards[len(p.cards)-1]}
	return recycled
}
