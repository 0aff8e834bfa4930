package game

import (
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Action is what a player chose to do on their turn: play the card at an
// index of their hand, or draw.
type Action struct {
	draw  bool
	index int
}

func PlayIndex(index int) Action {
	return Action{index: index}
}

func DrawAction() Action {
	return Action{draw: true, index: -1}
}

func (a Action) IsDraw() bool {
	return a.draw
}

func (a Action) Index() int {
	return a.index
}

// Driver is the front end that asks players for their choices. Returning a
// non-fatal consts.Error makes Run ask again; any other error stops the game.
type Driver interface {
	RequestCardIndexOrDraw(player int, hand []card.Card, top card.Card, current color.Color) (Action, error)
	RequestColorChoice(player int) (color.Color, error)
	NotifyRejected(player int, err error)
}
