package consts

import (
	"errors"
	"time"
)

type GameStatus int

const (
	StatusAwaitingFirstDiscard GameStatus = iota
	StatusInPlay
	StatusGameOver
)

func (s GameStatus) String() string {
	switch s {
	case StatusAwaitingFirstDiscard:
		return "AwaitingFirstDiscard"
	case StatusInPlay:
		return "InPlay"
	case StatusGameOver:
		return "GameOver"
	}
	return "Unknown"
}

const (
	MinPlayers = 2
	MaxPlayers = 10

	HandSize    = 7
	MinHandSize = 1
	MaxHandSize = 10

	DeckSize = 108

	NoPlayer = -1

	TableTTL           = 10 * time.Minute
	TableIdleTTL       = 30 * time.Minute
	TableSweepInterval = 1 * time.Minute

	MessagePause = 500 * time.Millisecond
)

var DefaultPlayers = []string{"Player 1", "Player 2", "Player 3"}

type Error struct {
	Code int
	Msg  string
	Exit bool
}

func (e Error) Error() string {
	return e.Msg
}

func NewErr(code int, exit bool, msg string) Error {
	return Error{Code: code, Exit: exit, Msg: msg}
}

// IsFatal reports whether err ends the current deal.
func IsFatal(err error) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Exit
	}
	return err != nil
}

var (
	ErrorsEmptyDeck          = NewErr(1, true, "Deck and discard pile are exhausted. ")
	ErrorsEmptyPile          = NewErr(2, true, "Discard pile is empty. ")
	ErrorsCardNotInHand      = NewErr(3, false, "Card is not in hand. ")
	ErrorsInvalidColorChoice = NewErr(4, false, "Invalid color choice. ")
	ErrorsIllegalPlay        = NewErr(5, false, "Card is not playable. ")
	ErrorsNotYourTurn        = NewErr(6, false, "Not your turn. ")
	ErrorsGameNotInPlay      = NewErr(7, false, "Game is not in play. ")
	ErrorsGameStarted        = NewErr(12, false, "Game already started. ")
	ErrorsGamePlayersInvalid = NewErr(8, false, "Game players invalid. ")
	ErrorsHandSizeInvalid    = NewErr(9, false, "Hand size invalid. ")
	ErrorsInputInvalid       = NewErr(10, false, "Input invalid. ")
	ErrorsTableInvalid       = NewErr(11, false, "Table invalid. ")
	ErrorsConfigInvalid      = NewErr(13, true, "Config invalid. ")
)
