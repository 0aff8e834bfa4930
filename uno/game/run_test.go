package game_test

import (
	"io"
	"testing"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/game"
	"github.com/stretchr/testify/require"
)

// scriptedDriver replays canned answers and records every rejection.
type scriptedDriver struct {
	actions  []game.Action
	colors   []color.Color
	rejected []error
}

func (d *scriptedDriver) RequestCardIndexOrDraw(int, []card.Card, card.Card, color.Color) (game.Action, error) {
	if len(d.actions) == 0 {
		return game.Action{}, io.EOF
	}
	next := d.actions[0]
	d.actions = d.actions[1:]
	return next, nil
}

func (d *scriptedDriver) RequestColorChoice(int) (color.Color, error) {
	if len(d.colors) == 0 {
		return color.None, io.EOF
	}
	next := d.colors[0]
	d.colors = d.colors[1:]
	return next, nil
}

func (d *scriptedDriver) NotifyRejected(_ int, err error) {
	d.rejected = append(d.rejected, err)
}

// firstPlayableDriver plays the first legal card and draws otherwise.
type firstPlayableDriver struct {
	chosen color.Color
}

func (d *firstPlayableDriver) RequestCardIndexOrDraw(_ int, hand []card.Card, top card.Card, current color.Color) (game.Action, error) {
	for i, candidate := range hand {
		if game.Playable(candidate, top, current) {
			return game.PlayIndex(i), nil
		}
	}
	return game.DrawAction(), nil
}

func (d *firstPlayableDriver) RequestColorChoice(int) (color.Color, error) {
	d.chosen = color.All[(int(d.chosen)+1)%len(color.All)]
	return d.chosen, nil
}

func (d *firstPlayableDriver) NotifyRejected(int, error) {}

func TestPlayTurnRetriesRejectedInput(t *testing.T) {
	g := newRiggedGame(t, 3)
	g.SetTop(card.NewNumberCard(color.Blue, 5), color.Blue)
	g.GiveCards(0, card.NewSkipCard(color.Red), card.NewWildCard(), card.NewNumberCard(color.Green, 1))

	driver := &scriptedDriver{
		actions: []game.Action{game.PlayIndex(3), game.PlayIndex(-1), game.PlayIndex(0), game.PlayIndex(1)},
		colors:  []color.Color{color.None, color.Color(42), color.Green},
	}
	outcome, err := game.PlayTurn(g, driver)
	require.NoError(t, err)
	require.Equal(t, card.NewWildCard(), outcome.Card)
	require.Equal(t, color.Green, g.CurrentColor())
	require.Equal(t, 1, g.Current())
	require.Equal(t, []error{
		consts.ErrorsInputInvalid,
		consts.ErrorsInputInvalid,
		consts.ErrorsIllegalPlay,
		consts.ErrorsInvalidColorChoice,
		consts.ErrorsInvalidColorChoice,
	}, driver.rejected)
	require.Empty(t, driver.actions)
	require.Empty(t, driver.colors)
}

func TestPlayTurnDraws(t *testing.T) {
	g := newRiggedGame(t, 2)
	g.SetTop(card.NewNumberCard(color.Blue, 5), color.Blue)
	g.GiveCards(0, card.NewSkipCard(color.Red))

	outcome, err := game.PlayTurn(g, &scriptedDriver{actions: []game.Action{game.DrawAction()}})
	require.NoError(t, err)
	require.Equal(t, 1, outcome.Next)
	require.Len(t, g.Hand(0), 2)
}

func TestPlayTurnStopsOnDriverFailure(t *testing.T) {
	g := newRiggedGame(t, 2)
	g.SetTop(card.NewNumberCard(color.Blue, 5), color.Blue)
	g.GiveCards(0, card.NewWildCard(), card.NewSkipCard(color.Red))
	before := snapshot(t, g)

	_, err := game.PlayTurn(g, &scriptedDriver{})
	require.ErrorIs(t, err, io.EOF)
	require.True(t, consts.IsFatal(err))

	_, err = game.PlayTurn(g, &scriptedDriver{actions: []game.Action{game.PlayIndex(0)}})
	require.ErrorIs(t, err, io.EOF)
	require.Equal(t, before, snapshot(t, g))
}

func TestRunUntilWinner(t *testing.T) {
	g, err := game.New(playerNames[:2], game.WithShuffler(game.NewSeededShuffler(3)))
	require.NoError(t, err)
	require.NoError(t, g.Start())
	g.ResetTable()
	g.SetTop(card.NewNumberCard(color.Blue, 5), color.Blue)
	g.GiveCards(0, card.NewNumberCard(color.Blue, 1), card.NewNumberCard(color.Blue, 2))
	g.GiveCards(1, card.NewNumberCard(color.Red, 3), card.NewNumberCard(color.Red, 4))

	driver := &scriptedDriver{
		actions: []game.Action{game.PlayIndex(0), game.DrawAction(), game.PlayIndex(0)},
	}
	winner, err := game.Run(g, driver)
	require.NoError(t, err)
	require.Equal(t, 0, winner)
	require.Equal(t, consts.StatusGameOver, g.Status())
	require.Len(t, g.Hand(1), 3)
}

func TestRunKeepsEveryCard(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g, err := game.New(playerNames[:4], game.WithShuffler(game.NewSeededShuffler(seed)))
		require.NoError(t, err)
		driver := &firstPlayableDriver{}

		require.NoError(t, g.Start())
		for g.Status() == consts.StatusInPlay {
			_, err := game.PlayTurn(g, driver)
			if err != nil {
				require.ErrorIs(t, err, consts.ErrorsEmptyDeck)
				break
			}
			require.Equal(t, consts.DeckSize, g.CardCount())
			require.NotEqual(t, color.None, g.CurrentColor())
		}

		if g.Status() == consts.StatusGameOver {
			require.Empty(t, g.Hand(g.Winner()))
		}
	}
}
