package player

import (
	"fmt"
)

var seatNames = []string{
	"Annie", "Braum", "Caitlyn", "Draven",
	"Ezreal", "Fiora", "Graves", "Heimerdinger",
	"Ivern", "Jinx",
}

// Names returns seats player names: the given ones first, the rest filled
// from a fixed pool, skipping names already taken.
func Names(seats int, given []string) []string {
	names := make([]string, 0, seats)
	taken := make(map[string]bool, seats)
	for _, name := range given {
		if len(names) == seats {
			return names
		}
		names = append(names, name)
		taken[name] = true
	}
	for i := 0; len(names) < seats; i++ {
		name := fmt.Sprintf("Player %d", i+1)
		if i < len(seatNames) {
			name = seatNames[i]
		}
		if taken[name] {
			continue
		}
		names = append(names, name)
		taken[name] = true
	}
	return names
}
