package game

import (
	"fmt"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
	"github.com/ratel-online/uno/uno/event"
)

// Game holds the authoritative state of one deal. It is not safe for
// concurrent use; callers serialize access (see service.Table).
type Game struct {
	players      []string
	hands        []*Hand
	deck         *Deck
	pile         *Pile
	turns        *TurnState
	currentColor color.Color
	status       consts.GameStatus
	winner       int
	handSize     int
	shuffler     Shuffler
	hub          *event.Hub
}

type Option func(*Game)

func WithShuffler(shuffler Shuffler) Option {
	return func(g *Game) {
		g.shuffler = shuffler
	}
}

func WithHub(hub *event.Hub) Option {
	return func(g *Game) {
		g.hub = hub
	}
}

func WithHandSize(handSize int) Option {
	return func(g *Game) {
		g.handSize = handSize
	}
}

func New(players []string, opts ...Option) (*Game, error) {
	if len(players) < consts.MinPlayers || len(players) > consts.MaxPlayers {
		return nil, consts.ErrorsGamePlayersInvalid
	}
	seen := make(map[string]bool, len(players))
	for _, name := range players {
		if name == "" || seen[name] {
			return nil, consts.ErrorsGamePlayersInvalid
		}
		seen[name] = true
	}

	g := &Game{
		players:  append([]string(nil), players...),
		hands:    make([]*Hand, len(players)),
		deck:     NewDeck(),
		pile:     NewPile(),
		turns:    NewTurnState(len(players)),
		status:   consts.StatusAwaitingFirstDiscard,
		winner:   consts.NoPlayer,
		handSize: consts.HandSize,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.shuffler == nil {
		g.shuffler = NewRandomShuffler()
	}
	if g.hub == nil {
		g.hub = event.NewHub()
	}

	// at least one non-wild card has to stay in the deck for the first discard
	if g.handSize < consts.MinHandSize || g.handSize > consts.MaxHandSize ||
		g.handSize*len(players) > consts.DeckSize-9 {
		return nil, consts.ErrorsHandSizeInvalid
	}

	for i := range g.hands {
		g.hands[i] = NewHand()
	}
	g.deck.Shuffle(g.shuffler)
	return g, nil
}

// Start deals the starting hands and turns up the first discard.
func (g *Game) Start() error {
	if g.status != consts.StatusAwaitingFirstDiscard {
		return consts.ErrorsGameStarted
	}

	for _, hand := range g.hands {
		for i := 0; i < g.handSize; i++ {
			dealt, err := g.deck.DrawTop()
			if err != nil {
				return err
			}
			hand.Add(dealt)
		}
	}

	firstCard, err := g.drawFirstDiscard()
	if err != nil {
		return err
	}
	g.pile.Push(firstCard)
	g.currentColor = firstCard.Color()
	g.status = consts.StatusInPlay
	g.hub.FirstCardPlayed.Emit(event.FirstCardPlayedPayload{
		Card: firstCard,
	})
	return nil
}

// drawFirstDiscard draws until a non-wild card shows up. Wild cards met on the
// way go back into the deck, which is then reshuffled.
func (g *Game) drawFirstDiscard() (card.Card, error) {
	var wilds []card.Card
	for {
		candidate, err := g.deck.DrawTop()
		if err != nil {
			g.deck.Add(wilds...)
			return card.Card{}, err
		}
		if !candidate.IsWild() {
			if len(wilds) > 0 {
				g.deck.Add(wilds...)
				g.deck.Shuffle(g.shuffler)
			}
			return candidate, nil
		}
		wilds = append(wilds, candidate)
	}
}

// Play resolves playedCard for player. chosen is only read for wild cards and
// must then be a concrete color. Nothing changes when an error is returned.
func (g *Game) Play(player int, playedCard card.Card, chosen color.Color) (*Outcome, error) {
	if err := g.checkTurn(player); err != nil {
		return nil, err
	}
	hand := g.hands[player]
	if !hand.Contains(playedCard) {
		return nil, consts.ErrorsCardNotInHand
	}
	top, err := g.pile.Top()
	if err != nil {
		return nil, err
	}
	if !Playable(playedCard, top, g.currentColor) {
		return nil, consts.ErrorsIllegalPlay
	}

	actions := playedCard.Actions()
	draws := 0
	for _, cardAction := range actions {
		switch cardAction := cardAction.(type) {
		case action.PickColorAction:
			if !chosen.Valid() {
				return nil, consts.ErrorsInvalidColorChoice
			}
		case action.DrawCardsAction:
			draws += cardAction.Amount()
		}
	}
	if draws > g.deck.Size()+g.pile.Recyclable() {
		return nil, consts.ErrorsEmptyDeck
	}

	if err := hand.Remove(playedCard); err != nil {
		return nil, err
	}
	outcome := newOutcome(player, playedCard)
	g.hub.CardPlayed.Emit(event.CardPlayedPayload{
		PlayerName: g.players[player],
		Card:       playedCard,
	})

	skip := false
	for _, cardAction := range actions {
		switch cardAction := cardAction.(type) {
		case action.MatchColorAction:
			g.currentColor = playedCard.Color()
		case action.PickColorAction:
			g.currentColor = chosen
			outcome.add(Effect{Kind: EffectColorChosen, Player: player, Color: chosen})
			g.hub.ColorPicked.Emit(event.ColorPickedPayload{
				PlayerName: g.players[player],
				Color:      chosen,
			})
		case action.ReverseTurnsAction:
			g.turns.Reverse()
			outcome.add(Effect{Kind: EffectTurnOrderReversed, Player: consts.NoPlayer})
			g.hub.TurnOrderReversed.Emit(event.TurnOrderReversedPayload{
				Direction: g.turns.Direction(),
			})
		case action.SkipTurnAction:
			skip = true
		case action.DrawCardsAction:
			target := g.turns.Peek()
			if err := g.drawCards(target, cardAction.Amount(), true, outcome); err != nil {
				return outcome, err
			}
		default:
			panic(fmt.Sprintf("unknown card action %T", cardAction))
		}
	}

	g.pile.Push(playedCard)

	if hand.Empty() {
		g.status = consts.StatusGameOver
		g.winner = player
		outcome.Winner = player
		outcome.Next = consts.NoPlayer
		outcome.Color = g.currentColor
		outcome.add(Effect{Kind: EffectGameWon, Player: player})
		g.hub.GameWon.Emit(event.GameWonPayload{
			PlayerName: g.players[player],
		})
		return outcome, nil
	}

	if skip {
		skipped := g.turns.Peek()
		g.turns.SkipNext()
		outcome.add(Effect{Kind: EffectTurnSkipped, Player: skipped})
		g.hub.TurnSkipped.Emit(event.TurnSkippedPayload{
			PlayerName: g.players[skipped],
		})
	} else {
		g.turns.Advance()
	}
	outcome.Next = g.turns.Current()
	outcome.Color = g.currentColor
	return outcome, nil
}

// Draw gives player one card from the deck and passes the turn.
func (g *Game) Draw(player int) (*Outcome, error) {
	if err := g.checkTurn(player); err != nil {
		return nil, err
	}
	if g.deck.Size()+g.pile.Recyclable() == 0 {
		return nil, consts.ErrorsEmptyDeck
	}

	outcome := newOutcome(player, card.Card{})
	if err := g.drawCards(player, 1, false, outcome); err != nil {
		return outcome, err
	}
	g.hub.PlayerPassed.Emit(event.PlayerPassedPayload{
		PlayerName: g.players[player],
	})
	outcome.Next = g.turns.Advance()
	outcome.Color = g.currentColor
	return outcome, nil
}

func (g *Game) checkTurn(player int) error {
	if g.status != consts.StatusInPlay {
		return consts.ErrorsGameNotInPlay
	}
	if player != g.turns.Current() {
		return consts.ErrorsNotYourTurn
	}
	return nil
}

func (g *Game) drawCards(player int, amount int, forced bool, outcome *Outcome) error {
	drawn := make([]card.Card, 0, amount)
	for i := 0; i < amount; i++ {
		next, err := g.drawOne(outcome)
		if err != nil {
			g.hands[player].Add(drawn...)
			return err
		}
		drawn = append(drawn, next)
	}
	g.hands[player].Add(drawn...)
	outcome.add(Effect{Kind: EffectCardsDrawn, Player: player, Cards: drawn})
	g.hub.CardsDrawn.Emit(event.CardsDrawnPayload{
		PlayerName: g.players[player],
		Cards:      drawn,
		Forced:     forced,
	})
	return nil
}

// drawOne takes the top card, refilling the deck from the discard pile first
// when it is empty.
func (g *Game) drawOne(outcome *Outcome) (card.Card, error) {
	if g.deck.Size() == 0 {
		recycled := g.pile.Recycle()
		if len(recycled) == 0 {
			return card.Card{}, consts.ErrorsEmptyDeck
		}
		g.deck.Add(recycled...)
		g.deck.Shuffle(g.shuffler)
		outcome.add(Effect{Kind: EffectDeckRecycled, Player: consts.NoPlayer, Count: len(recycled)})
		g.hub.DeckRecycled.Emit(event.DeckRecycledPayload{
			Cards: len(recycled),
		})
	}
	return g.deck.DrawTop()
}

func (g *Game) Players() []string {
	return append([]string(nil), g.players...)
}

func (g *Game) PlayerName(player int) string {
	if player < 0 || player >= len(g.players) {
		return ""
	}
	return g.players[player]
}

// Hand returns a copy of the player's cards in the order they were received.
func (g *Game) Hand(player int) []card.Card {
	if player < 0 || player >= len(g.hands) {
		return nil
	}
	return g.hands[player].Cards()
}

func (g *Game) Top() (card.Card, error) {
	return g.pile.Top()
}

func (g *Game) CurrentColor() color.Color {
	return g.currentColor
}

func (g *Game) Current() int {
	return g.turns.Current()
}

func (g *Game) Direction() int {
	return g.turns.Direction()
}

func (g *Game) Status() consts.GameStatus {
	return g.status
}

// Winner is consts.NoPlayer until the game is over.
func (g *Game) Winner() int {
	return g.winner
}

func (g *Game) DeckSize() int {
	return g.deck.Size()
}

func (g *Game) PileSize() int {
	return g.pile.Size()
}

// CardCount is the number of cards across deck, hands and discard pile.
func (g *Game) CardCount() int {
	count := g.deck.Size() + g.pile.Size()
	for _, hand := range g.hands {
		count += hand.Size()
	}
	return count
}

func (g *Game) Hub() *event.Hub {
	return g.hub
}
