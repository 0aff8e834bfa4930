package event

// Hub groups the emitters of a single game.
type Hub struct {
	FirstCardPlayed   *firstCardPlayedEmitter
	CardPlayed        *cardPlayedEmitter
	ColorPicked       *colorPickedEmitter
	CardsDrawn        *cardsDrawnEmitter
	PlayerPassed      *playerPassedEmitter
	TurnSkipped       *turnSkippedEmitter
	TurnOrderReversed *turnOrderReversedEmitter
	DeckRecycled      *deckRecycledEmitter
	GameWon           *gameWonEmitter
}

func NewHub() *Hub {
	return &Hub{
		FirstCardPlayed:   &firstCardPlayedEmitter{},
		CardPlayed:        &cardPlayedEmitter{},
		ColorPicked:       &colorPickedEmitter{},
		CardsDrawn:        &cardsDrawnEmitter{},
		PlayerPassed:      &playerPassedEmitter{},
		TurnSkipped:       &turnSkippedEmitter{},
		TurnOrderReversed: &turnOrderReversedEmitter{},
		DeckRecycled:      &deckRecycledEmitter{},
		GameWon:           &gameWonEmitter{},
	}
}

// Subscribe registers listener with every emitter whose listener interface it
// implements.
func (h *Hub) Subscribe(listener interface{}) {
	if l, ok := listener.(FirstCardPlayedListener); ok {
		h.FirstCardPlayed.AddListener(l)
	}
	if l, ok := listener.(CardPlayedListener); ok {
		h.CardPlayed.AddListener(l)
	}
	if l, ok := listener.(ColorPickedListener); ok {
		h.ColorPicked.AddListener(l)
	}
	if l, ok := listener.(CardsDrawnListener); ok {
		h.CardsDrawn.AddListener(l)
	}
	if l, ok := listener.(PlayerPassedListener); ok {
		h.PlayerPassed.AddListener(l)
	}
	if l, ok := listener.(TurnSkippedListener); ok {
		h.TurnSkipped.AddListener(l)
	}
	if l, ok := listener.(TurnOrderReversedListener); ok {
		h.TurnOrderReversed.AddListener(l)
	}
	if l, ok := listener.(DeckRecycledListener); ok {
		h.DeckRecycled.AddListener(l)
	}
	if l, ok := listener.(GameWonListener); ok {
		h.GameWon.AddListener(l)
	}
}
