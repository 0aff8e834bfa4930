package game

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Hand keeps cards in the order they were received.
type Hand struct {
	cards []card.Card
}

func NewHand() *Hand {
	return &Hand{cards: make([]card.Card, 0, consts.HandSize)}
}

func (h *Hand) Add(cards ...card.Card) {
	h.cards = append(h.cards, cards...)
}

func (h *Hand) Cards() []card.Card {
	cards := make([]card.Card, len(h.cards))
	copy(cards, h.cards)
	return cards
}

func (h *Hand) Contains(searched card.Card) bool {
	return h.indexOf(searched) >= 0
}

func (h *Hand) Empty() bool {
	return len(h.cards) == 0
}

func (h *Hand) PlayableCards(top card.Card, currentColor color.Color) []card.Card {
	var playableCards []card.Card
	for _, candidateCard := range h.cards {
		if Playable(candidateCard, top, currentColor) {
			playableCards = append(playableCards, candidateCard)
		}
	}
	return playableCards
}

// Remove takes out a single copy of c.
func (h *Hand) Remove(c card.Card) error {
	index := h.indexOf(c)
	if index < 0 {
		return consts.ErrorsCardNotInHand
	}
	h.cards = append(h.cards[:index], h.cards[index+1:]...)
	return nil
}

func (h *Hand) Size() int {
	return len(h.cards)
}

func (h *Hand) indexOf(searched card.Card) int {
	for index, cardInHand := range h.cards {
		if cardInHand.Equal(searched) {
			return index
		}
	}
	return -1
}
