package card

import (
	"fmt"

	"github.com/ratel-online/uno/uno/card/action"
	"github.com/ratel-online/uno/uno/card/color"
)

type Type int

const (
	Number Type = iota + 1
	Reverse
	Skip
	DrawTwo
	Wild
	WildDrawFour
)

var Types = []Type{Number, Reverse, Skip, DrawTwo, Wild, WildDrawFour}

func (t Type) String() string {
	switch t {
	case Number:
		return "Number"
	case Reverse:
		return "Reverse"
	case Skip:
		return "Skip"
	case DrawTwo:
		return "Draw Two"
	case Wild:
		return "Wild"
	case WildDrawFour:
		return "Wild Draw Four"
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Card is an immutable card value. Two cards are equal when color, type and
// number are all equal, so == can be used directly.
type Card struct {
	color  color.Color
	kind   Type
	number int
}

func NewNumberCard(c color.Color, number int) Card {
	if number < 0 || number > 9 {
		panic(fmt.Sprintf("card number %d out of range", number))
	}
	return Card{color: c, kind: Number, number: number}
}

func NewReverseCard(c color.Color) Card {
	return Card{color: c, kind: Reverse}
}

func NewSkipCard(c color.Color) Card {
	return Card{color: c, kind: Skip}
}

func NewDrawTwoCard(c color.Color) Card {
	return Card{color: c, kind: DrawTwo}
}

func NewWildCard() Card {
	return Card{color: color.None, kind: Wild}
}

func NewWildDrawFourCard() Card {
	return Card{color: color.None, kind: WildDrawFour}
}

func (c Card) Color() color.Color {
	return c.color
}

func (c Card) Type() Type {
	return c.kind
}

// Number returns the face number; ok is false for anything but number cards.
func (c Card) Number() (number int, ok bool) {
	if c.kind != Number {
		return 0, false
	}
	return c.number, true
}

func (c Card) IsWild() bool {
	return c.kind == Wild || c.kind == WildDrawFour
}

func (c Card) Equal(other Card) bool {
	return c == other
}

// Actions lists the effects the card resolves to, in resolution order.
func (c Card) Actions() []action.Action {
	switch c.kind {
	case Number:
		return []action.Action{
			action.NewMatchColorAction(),
		}
	case Reverse:
		return []action.Action{
			action.NewMatchColorAction(),
			action.NewReverseTurnsAction(),
		}
	case Skip:
		return []action.Action{
			action.NewMatchColorAction(),
			action.NewSkipTurnAction(),
		}
	case DrawTwo:
		return []action.Action{
			action.NewMatchColorAction(),
			action.NewDrawCardsAction(2),
		}
	case Wild:
		return []action.Action{
			action.NewPickColorAction(),
		}
	case WildDrawFour:
		return []action.Action{
			action.NewPickColorAction(),
			action.NewDrawCardsAction(4),
		}
	default:
		panic(fmt.Sprintf("unknown card type %d", int(c.kind)))
	}
}

// String is the canonical plain description used in logs.
func (c Card) String() string {
	switch c.kind {
	case Number:
		return fmt.Sprintf("%s %d", c.color, c.number)
	case Wild, WildDrawFour:
		return c.kind.String()
	default:
		return fmt.Sprintf("%s %s", c.color, c.kind)
	}
}

// Paint renders the card for a terminal.
func (c Card) Paint() string {
	switch c.kind {
	case Number:
		return c.color.Paintf("[%d]", c.number) + fmt.Sprintf("(%s)", c.color)
	case Reverse:
		return c.color.Paint("<=>") + fmt.Sprintf("(%s)", c.color)
	case Skip:
		return c.color.Paint("(/)") + fmt.Sprintf("(%s)", c.color)
	case DrawTwo:
		return c.color.Paint("+2!") + fmt.Sprintf("(%s)", c.color)
	case Wild:
		return color.None.Paint("(*)")
	case WildDrawFour:
		return color.None.Paint("+4!")
	}
	return c.String()
}
