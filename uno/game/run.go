package game

import (
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card/color"
)

// Run starts the game if needed and plays turns until somebody wins.
func Run(g *Game, driver Driver) (int, error) {
	if g.Status() == consts.StatusAwaitingFirstDiscard {
		if err := g.Start(); err != nil {
			return consts.NoPlayer, err
		}
	}
	for g.Status() == consts.StatusInPlay {
		if _, err := PlayTurn(g, driver); err != nil {
			return consts.NoPlayer, err
		}
	}
	return g.Winner(), nil
}

// PlayTurn asks the current player for an action until the game accepts one.
// Only fatal errors are returned.
func PlayTurn(g *Game, driver Driver) (*Outcome, error) {
	player := g.Current()
	for {
		outcome, err := tryTurn(g, driver, player)
		if err == nil {
			return outcome, nil
		}
		if consts.IsFatal(err) {
			return outcome, err
		}
		driver.NotifyRejected(player, err)
	}
}

func tryTurn(g *Game, driver Driver, player int) (*Outcome, error) {
	hand := g.Hand(player)
	top, err := g.Top()
	if err != nil {
		return nil, err
	}

	selected, err := driver.RequestCardIndexOrDraw(player, hand, top, g.CurrentColor())
	if err != nil {
		return nil, err
	}
	if selected.IsDraw() {
		return g.Draw(player)
	}
	if selected.Index() < 0 || selected.Index() >= len(hand) {
		return nil, consts.ErrorsInputInvalid
	}

	selectedCard := hand[selected.Index()]
	if !Playable(selectedCard, top, g.CurrentColor()) {
		return nil, consts.ErrorsIllegalPlay
	}
	chosen := color.None
	if selectedCard.IsWild() {
		chosen, err = requestColor(driver, player)
		if err != nil {
			return nil, err
		}
	}
	return g.Play(player, selectedCard, chosen)
}

func requestColor(driver Driver, player int) (color.Color, error) {
	for {
		chosen, err := driver.RequestColorChoice(player)
		if err != nil {
			if consts.IsFatal(err) {
				return color.None, err
			}
			driver.NotifyRejected(player, err)
			continue
		}
		if chosen.Valid() {
			return chosen, nil
		}
		driver.NotifyRejected(player, consts.ErrorsInvalidColorChoice)
	}
}
