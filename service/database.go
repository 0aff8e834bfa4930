package service

import (
	"sort"
	"strings"
	"time"

	"github.com/awesome-cap/hashmap"
	"github.com/google/uuid"
	"github.com/ratel-online/core/log"
	"github.com/ratel-online/core/util/async"
	"github.com/ratel-online/uno/consts"
	"github.com/ratel-online/uno/uno/event"
	"github.com/ratel-online/uno/uno/game"
)

var tables = hashmap.New()

var now = time.Now

// CreateTable sets up a new game for players. Every table logs its events;
// options are applied after the table's own, so a game.WithHub option
// replaces the logging hub.
func CreateTable(players []string, opts ...game.Option) (*Table, error) {
	id := uuid.NewString()
	hub := event.NewHub()
	hub.Subscribe(event.NewLogListener(id))

	g, err := game.New(players, append([]game.Option{game.WithHub(hub)}, opts...)...)
	if err != nil {
		return nil, err
	}
	created := now()
	table := &Table{
		ID:         id,
		Players:    g.Players(),
		game:       g,
		created:    created,
		lastActive: created,
	}
	tables.Set(id, table)
	log.Infof("table %s created for %s\n", id, strings.Join(players, ", "))
	return table, nil
}

func GetTable(id string) (*Table, error) {
	if v, ok := tables.Get(id); ok {
		return v.(*Table), nil
	}
	return nil, consts.ErrorsTableInvalid
}

// GetTables lists the live tables, oldest first.
func GetTables() []*Table {
	list := make([]*Table, 0)
	tables.Foreach(func(e *hashmap.Entry) {
		list = append(list, e.Value().(*Table))
	})
	sort.Slice(list, func(i, j int) bool {
		if list[i].created.Equal(list[j].created) {
			return list[i].ID < list[j].ID
		}
		return list[i].created.Before(list[j].created)
	})
	return list
}

func DeleteTable(id string) {
	if _, ok := tables.Get(id); ok {
		tables.Del(id)
		log.Infof("table %s removed\n", id)
	}
}

// Sweep drops finished tables older than ttl and tables idle for idleTTL.
// Tables busy with a turn are left for the next sweep.
func Sweep(at time.Time, ttl time.Duration, idleTTL time.Duration) int {
	removed := 0
	for _, table := range GetTables() {
		if !table.TryLock() {
			continue
		}
		expired := table.expired(at, ttl, idleTTL)
		table.Unlock()
		if expired {
			DeleteTable(table.ID)
			removed++
		}
	}
	return removed
}

// Watch sweeps every interval until stop is closed.
func Watch(interval time.Duration, ttl time.Duration, idleTTL time.Duration, stop <-chan struct{}) {
	async.Async(func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				if removed := Sweep(now(), ttl, idleTTL); removed > 0 {
					log.Infof("janitor removed %d table(s)\n", removed)
				}
			}
		}
	})
}
