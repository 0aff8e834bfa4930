package game

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

type EffectKind int

const (
	EffectColorChosen EffectKind = iota + 1
	EffectTurnOrderReversed
	EffectTurnSkipped
	EffectCardsDrawn
	EffectDeckRecycled
	EffectGameWon
)

func (k EffectKind) String() string {
	switch k {
	case EffectColorChosen:
		return "ColorChosen"
	case EffectTurnOrderReversed:
		return "TurnOrderReversed"
	case EffectTurnSkipped:
		return "TurnSkipped"
	case EffectCardsDrawn:
		return "CardsDrawn"
	case EffectDeckRecycled:
		return "DeckRecycled"
	case EffectGameWon:
		return "GameWon"
	}
	return "Unknown"
}

// Effect is one state change caused by a play or a draw. Player is
// consts.NoPlayer for effects that concern the whole table.
type Effect struct {
	Kind   EffectKind
	Player int
	Color  color.Color
	Cards  []card.Card
	Count  int
}

// Outcome reports what a Play or Draw did, for the driver to render.
type Outcome struct {
	Player  int
	Card    card.Card
	Color   color.Color
	Effects []Effect
	Next    int
	Winner  int
}

func newOutcome(player int, played card.Card) *Outcome {
	return &Outcome{
		Player: player,
		Card:   played,
		Next:   consts.NoPlayer,
		Winner: consts.NoPlayer,
	}
}

func (o *Outcome) add(effect Effect) {
	o.Effects = append(o.Effects, effect)
}

func (o *Outcome) GameOver() bool {
	return o.Winner != consts.NoPlayer
}

// Find returns the first effect of the given kind.
func (o *Outcome) Find(kind EffectKind) (Effect, bool) {
	for _, effect := range o.Effects {
		if effect.Kind == kind {
			return effect, true
		}
	}
	return Effect{}, false
}
