package game

import (
	"math/rand"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/card"
	"github.com/ratel-online/uno/uno/card/color"
)

// Shuffler is the source of randomness for the deck. *rand.Rand satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

func NewRandomShuffler() Shuffler {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

func NewSeededShuffler(seed int64) Shuffler {
	return rand.New(rand.NewSource(seed))
}

// Deck is an ordered stack of cards; the last card is the top.
type Deck struct {
	cards []card.Card
}

// NewDeck builds the standard 108 cards in a fixed order. Shuffle before use.
func NewDeck() *Deck {
	deck := &Deck{}
	fillDeck(deck)
	return deck
}

func (d *Deck) Shuffle(rng Shuffler) {
	rng.Shuffle(len(d.cards), func(i, j int) { d.cards[i], d.cards[j] = d.cards[j], d.cards[i] })
}

func (d *Deck) DrawTop() (card.Card, error) {
	size := len(d.cards)
	if size == 0 {
		return card.Card{}, consts.ErrorsEmptyDeck
	}
	top := d.cards[size-1]
	d.cards = d.cards[:size-1]
	return top, nil
}

// Add puts cards on top of the deck.
func (d *Deck) Add(cards ...card.Card) {
	d.cards = append(d.cards, cards...)
}

func (d *Deck) Cards() []card.Card {
	cards := make([]card.Card, len(d.cards))
	copy(cards, d.cards)
	return cards
}

func (d *Deck) Size() int {
	return len(d.cards)
}

func fillDeck(deck *Deck) {
	cards := make([]card.Card, 0, consts.DeckSize)

	cards = append(cards, createBlackCards()...)
	for _, cardColor := range color.All {
		cards = append(cards, createColorCards(cardColor)...)
	}

	deck.cards = append(deck.cards, cards...)
}

func createColorCards(cardColor color.Color) []card.Card {
	zeroCard := card.NewNumberCard(cardColor, 0)
	skipCard := card.NewSkipCard(cardColor)
	reverseCard := card.NewReverseCard(cardColor)
	drawTwoCard := card.NewDrawTwoCard(cardColor)

	cards := []card.Card{
		zeroCard,
		skipCard, skipCard,
		reverseCard, reverseCard,
		drawTwoCard, drawTwoCard,
	}

	for number := 1; number <= 9; number++ {
		numberCard := card.NewNumberCard(cardColor, number)
		cards = append(cards, numberCard, numberCard)
	}

	return cards
}

func createBlackCards() []card.Card {
	wildCard := card.NewWildCard()
	wildDrawFourCard := card.NewWildDrawFourCard()

	return []card.Card{
		wildCard, wildCard, wildCard, wildCard,
		wildDrawFourCard, wildDrawFourCard, wildDrawFourCard, wildDrawFourCard,
	}
}
