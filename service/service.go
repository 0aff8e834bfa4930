package service

import (
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
)

func (t *Table) Start() error {
	t.Lock()
	defer t.Unlock()
	err := t.game.Start()
	t.touch(now(), err)
	return err
}

func (t *Table) Play(player int, played card.Card, chosen color.Color) (*game.Outcome, error) {
	t.Lock()
	defer t.Unlock()
	outcome, err := t.game.Play(player, played, chosen)
	t.touch(now(), err)
	return outcome, err
}

func (t *Table) Draw(player int) (*game.Outcome, error) {
	t.Lock()
	defer t.Unlock()
	outcome, err := t.game.Draw(player)
	t.touch(now(), err)
	return outcome, err
}

func (t *Table) State(viewer int) game.State {
	t.Lock()
	defer t.Unlock()
	return t.game.ExtractState(viewer)
}

// Subscribe adds listener to the game events, see event.Hub.Subscribe.
func (t *Table) Subscribe(listener interface{}) {
	t.Lock()
	defer t.Unlock()
	t.game.Hub().Subscribe(listener)
}

// Finished reports whether the game ended, and the fatal error that ended it
// if any.
func (t *Table) Finished() (bool, error) {
	t.Lock()
	defer t.Unlock()
	return !t.finished.IsZero(), t.err
}

// Run plays the game through driver until it is over. The table stays locked
// for one turn at a time, including the wait for the driver.
func (t *Table) Run(driver game.Driver) (int, error) {
	if err := t.startIfNeeded(); err != nil {
		return consts.NoPlayer, err
	}
	for {
		over, err := t.playTurn(driver)
		if err != nil {
			log.Errorf("table %s stopped: %v\n", t.ID, err)
			return consts.NoPlayer, err
		}
		if over {
			break
		}
	}

	t.Lock()
	defer t.Unlock()
	return t.game.Winner(), nil
}

func (t *Table) startIfNeeded() error {
	t.Lock()
	defer t.Unlock()
	if t.game.Status() != consts.StatusAwaitingFirstDiscard {
		return nil
	}
	err := t.game.Start()
	t.touch(now(), err)
	return err
}

func (t *Table) playTurn(driver game.Driver) (bool, error) {
	t.Lock()
	defer t.Unlock()
	if t.game.Status() != consts.StatusInPlay {
		return true, nil
	}
	outcome, err := game.PlayTurn(t.game, driver)
	t.touch(now(), err)
	if err != nil {
		return true, err
	}
	return outcome.GameOver(), nil
}
