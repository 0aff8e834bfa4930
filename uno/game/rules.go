package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Playable reports whether candidateCard may be played on lastPlayedCard while
// currentColor is in effect.
//
// Wild Draw Four is accepted even when the player holds a card of the current
// color. Any card of the same type as the top card is accepted too, which
// includes every number card on a number card.
func Playable(candidateCard card.Card, lastPlayedCard card.Card, currentColor color.Color) bool {
	if candidateCard.IsWild() {
		return true
	}

	if candidateCard.Color() == currentColor {
		return true
	}

	candidateNumber, candidateIsNumber := candidateCard.Number()
	lastNumber, lastIsNumber := lastPlayedCard.Number()
	if candidateIsNumber && lastIsNumber && candidateNumber == lastNumber {
		return true
	}

	return candidateCard.Type() == lastPlayedCard.Type()
}
