package service

import (
	"sync"
	"time"

	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/game"
)

// Table hosts one game. Every access to the game goes through the table lock.
type Table struct {
	sync.Mutex

	ID      string
	Players []string

	game       *game.Game
	created    time.Time
	lastActive time.Time
	finished   time.Time
	err        error
}

func (t *Table) Created() time.Time {
	return t.created
}

// touch records activity; a game that is over or hit a fatal error is
// marked finished. Callers hold the lock.
func (t *Table) touch(now time.Time, err error) {
	t.lastActive = now
	if err != nil && consts.IsFatal(err) && t.err == nil {
		t.err = err
	}
	if t.finished.IsZero() && (t.game.Status() == consts.StatusGameOver || t.err != nil) {
		t.finished = now
	}
}

// expired reports whether the janitor may drop the table. Callers hold the
// lock.
func (t *Table) expired(now time.Time, ttl time.Duration, idleTTL time.Duration) bool {
	if !t.finished.IsZero() {
		return now.Sub(t.finished) >= ttl
	}
	return now.Sub(t.lastActive) >= idleTTL
}
