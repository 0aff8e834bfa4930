package game

const (
	left  = -1
	right = 1
)

// TurnState is the directional turn pointer over the seats of a game.
type TurnState struct {
	count     int
	current   int
	direction int
}

func NewTurnState(count int) *TurnState {
	return &TurnState{
		count:     count,
		current:   0,
		direction: right,
	}
}

func (t *TurnState) Current() int {
	return t.current
}

func (t *TurnState) Direction() int {
	return t.direction
}

// Peek returns the seat that Advance would move to.
func (t *TurnState) Peek() int {
	return (t.current + t.direction + t.count) % t.count
}

func (t *TurnState) Advance() int {
	t.current = t.Peek()
	return t.current
}

// Reverse flips the direction. With two seats this leaves the next seat
// unchanged.
func (t *TurnState) Reverse() {
	switch t.direction {
	case right:
		t.direction = left
	case left:
		t.direction = right
	}
}

// SkipNext moves past the next seat without giving it a turn.
func (t *TurnState) SkipNext() int {
	t.Advance()
	return t.Advance()
}
