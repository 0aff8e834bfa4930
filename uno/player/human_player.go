package player

import (
	"io"

	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
	"github.com/ratel-online/uno/uno/msg"
	"github.com/ratel-online/uno/uno/ui"
)

// HumanPlayer seats every player at the same console. It drives the game
// through game.Driver and narrates it as an event listener.
type HumanPlayer struct {
	console *ui.Console
	names   []string
}

func NewHumanPlayer(in io.Reader, out io.Writer, names []string) *HumanPlayer {
	return NewConsolePlayer(ui.NewConsole(in, out), names)
}

func NewConsolePlayer(console *ui.Console, names []string) *HumanPlayer {
	return &HumanPlayer{console: console, names: append([]string(nil), names...)}
}

// Attach subscribes the player to the events of a game.
func (p *HumanPlayer) Attach(hub *event.Hub) *HumanPlayer {
	hub.Subscribe(p)
	return p
}

func (p *HumanPlayer) Welcome() {
	p.console.Print(msg.Message.Welcome())
}

func (p *HumanPlayer) RequestCardIndexOrDraw(player int, hand []card.Card, top card.Card, current color.Color) (game.Action, error) {
	p.console.Print(msg.Message.HumanPlayerTurnStarted(p.name(player), hand, top, current))
	index, draw, err := p.console.PromptCardIndexOrDraw()
	if err != nil {
		return game.Action{}, err
	}
	if draw {
		return game.DrawAction(), nil
	}
	return game.PlayIndex(index), nil
}

func (p *HumanPlayer) RequestColorChoice(int) (color.Color, error) {
	return p.console.PromptColor()
}

func (p *HumanPlayer) NotifyRejected(player int, err error) {
	p.console.Print(msg.Message.Rejected(p.name(player), err))
}

func (p *HumanPlayer) OnFirstCardPlayed(payload event.FirstCardPlayedPayload) {
	p.console.Print(msg.Message.FirstCardPlayed(payload.Card))
}

func (p *HumanPlayer) OnCardPlayed(payload event.CardPlayedPayload) {
	p.console.Print(msg.Message.PlayerPlayedCard(payload.PlayerName, payload.Card))
}

func (p *HumanPlayer) OnColorPicked(payload event.ColorPickedPayload) {
	p.console.Print(msg.Message.PlayerPickedColor(payload.PlayerName, payload.Color))
}

// OnCardsDrawn shows the drawn cards only for voluntary draws; everyone at the
// table can see the console.
func (p *HumanPlayer) OnCardsDrawn(payload event.CardsDrawnPayload) {
	if payload.Forced {
		p.console.Print(msg.Message.PlayerDrewCards(payload.PlayerName, payload.Cards))
		return
	}
	p.console.Print(msg.Message.HumanPlayerDrewCards(payload.Cards))
}

func (p *HumanPlayer) OnPlayerPassed(payload event.PlayerPassedPayload) {
	p.console.Print(msg.Message.PlayerPassed(payload.PlayerName))
}

func (p *HumanPlayer) OnTurnSkipped(payload event.TurnSkippedPayload) {
	p.console.Print(msg.Message.PlayerTurnSkipped(payload.PlayerName))
}

func (p *HumanPlayer) OnTurnOrderReversed(event.TurnOrderReversedPayload) {
	p.console.Print(msg.Message.TurnOrderReversed())
}

func (p *HumanPlayer) OnDeckRecycled(payload event.DeckRecycledPayload) {
	p.console.Print(msg.Message.DeckRecycled(payload.Cards))
}

func (p *HumanPlayer) OnGameWon(payload event.GameWonPayload) {
	p.console.Print(msg.Message.WinnerFound(payload.PlayerName))
}

func (p *HumanPlayer) name(player int) string {
	if player < 0 || player >= len(p.names) {
		return "Player"
	}
	return p.names[player]
}
