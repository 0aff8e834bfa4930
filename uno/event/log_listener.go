package event

import (
	"github.com/ratel-online/core/log"
)

// LogListener writes every event of a game to the server log.
type LogListener struct {
	game string
}

func NewLogListener(game string) *LogListener {
	return &LogListener{game: game}
}

func (l *LogListener) OnFirstCardPlayed(payload FirstCardPlayedPayload) {
	log.Infof("game %s: first card is %s\n", l.game, payload.Card)
}

func (l *LogListener) OnCardPlayed(payload CardPlayedPayload) {
	log.Infof("game %s: %s played %s\n", l.game, payload.PlayerName, payload.Card)
}

func (l *LogListener) OnColorPicked(payload ColorPickedPayload) {
	log.Infof("game %s: %s picked color %s\n", l.game, payload.PlayerName, payload.Color)
}

func (l *LogListener) OnCardsDrawn(payload CardsDrawnPayload) {
	log.Infof("game %s: %s drew %d card(s)\n", l.game, payload.PlayerName, len(payload.Cards))
}

func (l *LogListener) OnPlayerPassed(payload PlayerPassedPayload) {
	log.Infof("game %s: %s passed\n", l.game, payload.PlayerName)
}

func (l *LogListener) OnTurnSkipped(payload TurnSkippedPayload) {
	log.Infof("game %s: %s's turn skipped\n", l.game, payload.PlayerName)
}

func (l *LogListener) OnTurnOrderReversed(payload TurnOrderReversedPayload) {
	log.Infof("game %s: turn order reversed, direction %d\n", l.game, payload.Direction)
}

func (l *LogListener) OnDeckRecycled(payload DeckRecycledPayload) {
	log.Infof("game %s: %d discarded card(s) shuffled back into the deck\n", l.game, payload.Cards)
}

func (l *LogListener) OnGameWon(payload GameWonPayload) {
	log.Infof("game %s: %s wins\n", l.game, payload.PlayerName)
}
