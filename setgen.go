// setgen.go
// Copyright (C) 2024 The GoRummi Authors
// This file contains code to find all valid sets (groups and
// runs) that can be formed from a tray of tiles.
// It is a part of the Go 'rummi' package.

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

/*

The code herein finds every valid tile combination in a tray.

The main function in this module is Tray.ValidSets(). Given a
tray of tiles, it returns all valid Groups (3-4 tiles of one
number, distinct colors) and all valid Runs (3 or more
consecutive numbers of one color), including every way the
tray's wildcards may be substituted for missing tiles.

Groups are found by partitioning the numbered tiles by number.
Within a partition, tiles are deduplicated by color (a group
cannot contain two tiles of the same color, so excess same-color
duplicates cannot extend it). The remaining distinct-color tiles
plus all wildcards form a candidate pool, and every subset of
size 3 or 4 of that pool is enumerated with a bitmask over the
pool; the pool is small, so the enumeration is cheap and easy to
test exhaustively.

Runs are found by laying each color's tiles (deduplicated by
number) into a 1..13 slot array and scanning every window of
every length from 3 upwards, at every offset that fits within
the numbering range. A window is realizable if the count of its
empty slots does not exceed the number of wildcards in the tray;
the wildcards are then assigned to the empty positions, consumed
from the end of the pool. Which physical wildcard fills which
gap is immaterial, since wildcards carry no distinguishing
value. Each color scan has the full wildcard pool at its
disposal: a wildcard substitutes within one run at a time and is
never split across runs in a single result.

Both finders can reach the same multiset of tile values through
different enumeration paths (different subset masks picking
interchangeable wildcards, or wildcard-heavy windows at
different offsets), so each finder passes its candidates through
a canonical-key dedup before returning them.

The per-number and per-color partitions have no cross
dependencies, so each partition is searched by its own
goroutine, with the results collected over a channel.

*/

package rummi

import (
	"math/bits"
)

// ValidSets is the public entry point of the search: it returns
// every valid Group and every valid Run that can be formed from
// the tray, with wildcard substitutions included. The tray is
// only read, never modified, and the returned Sets borrow the
// tray's tiles. An empty tray, or one without any valid
// combination, yields an empty result; that is a normal
// outcome, not a failure. No dedup is applied across the two
// finders: a group fixes the number and varies the color while
// a run fixes the color and varies the number.
func (tray Tray) ValidSets() []Set {
	sets := tray.FindGroups()
	return append(sets, tray.FindRuns()...)
}

// FindGroups returns every valid Group in the tray. Each number
// partition is searched by its own goroutine.
func (tray Tray) FindGroups() []Set {
	wildcards := tray.Wildcards()
	// Partition the numbered tiles by number
	var byNumber [MaxNumber + 1][]*Tile
	for _, t := range tray {
		if !t.IsWildcard() {
			byNumber[t.Number] = append(byNumber[t.Number], t)
		}
	}
	// Result channel containing one candidate list per number
	results := make(chan []Set, MaxNumber)
	for number := 1; number <= MaxNumber; number++ {
		go func(tiles []*Tile) {
			results <- groupsOfNumber(tiles, wildcards)
		}(byNumber[number])
	}
	// Collect the candidates from all goroutines
	sets := make([]Set, 0)
	for number := 1; number <= MaxNumber; number++ {
		sets = append(sets, (<-results)...)
	}
	return dedupSets(sets)
}

// groupsOfNumber enumerates the group candidates of a single
// number partition
func groupsOfNumber(tiles []*Tile, wildcards []*Tile) []Set {
	if len(tiles) == 0 {
		return nil
	}
	// Keep one representative tile per color
	var byColor [NumColors]*Tile
	distinct := make([]*Tile, 0, NumColors)
	for _, t := range tiles {
		if byColor[t.Color] == nil {
			byColor[t.Color] = t
			distinct = append(distinct, t)
		}
	}
	if len(distinct)+len(wildcards) < 3 {
		// This number cannot contribute a group
		return nil
	}
	// The candidate pool: the distinct-color tiles plus every
	// wildcard in the tray
	pool := make([]*Tile, 0, len(distinct)+len(wildcards))
	pool = append(pool, distinct...)
	pool = append(pool, wildcards...)
	lenPool := len(pool)
	// Enumerate every subset of size 3 or 4 of the pool by
	// bitmask. The pool holds at most 4 distinct colors plus
	// the wildcards, so the mask space is tiny.
	sets := make([]Set, 0)
	for mask := uint(1); mask < uint(1)<<lenPool; mask++ {
		size := bits.OnesCount(mask)
		if size < 3 || size > NumColors {
			continue
		}
		subset := make([]*Tile, 0, size)
		for i := 0; i < lenPool; i++ {
			if mask&(uint(1)<<i) != 0 {
				subset = append(subset, pool[i])
			}
		}
		sets = append(sets, NewGroup(subset))
	}
	return sets
}

// FindRuns returns every valid Run in the tray. Each color is
// scanned by its own goroutine.
func (tray Tray) FindRuns() []Set {
	wildcards := tray.Wildcards()
	// Partition the numbered tiles by color
	var byColor [NumColors][]*Tile
	for _, t := range tray {
		if !t.IsWildcard() {
			byColor[t.Color] = append(byColor[t.Color], t)
		}
	}
	// Result channel containing one candidate list per color
	results := make(chan []Set, NumColors)
	for color := 0; color < NumColors; color++ {
		go func(tiles []*Tile) {
			results <- runsOfColor(tiles, wildcards)
		}(byColor[color])
	}
	sets := make([]Set, 0)
	for color := 0; color < NumColors; color++ {
		sets = append(sets, (<-results)...)
	}
	return dedupSets(sets)
}

// runsOfColor scans every (length, offset) window of a single
// color for realizable runs
func runsOfColor(tiles []*Tile, wildcards []*Tile) []Set {
	// Keep one representative tile per number
	var slots [MaxNumber + 1]*Tile
	present := 0
	for _, t := range tiles {
		if slots[t.Number] == nil {
			slots[t.Number] = t
			present++
		}
	}
	numWild := len(wildcards)
	if present+numWild < 3 {
		// This color cannot contribute a run
		return nil
	}
	// A run can use every present number plus every wildcard,
	// but never exceeds the numbering range
	maxLength := present + numWild
	if maxLength > MaxNumber {
		maxLength = MaxNumber
	}
	sets := make([]Set, 0)
	for length := maxLength; length >= 3; length-- {
		for start := 1; start+length-1 <= MaxNumber; start++ {
			missing := 0
			for n := start; n < start+length; n++ {
				if slots[n] == nil {
					missing++
				}
			}
			if missing > numWild {
				// Not enough wildcards to fill the gaps
				continue
			}
			// Realizable window: populate it in increasing-number
			// order, assigning wildcards to the empty positions
			// from the end of the pool
			run := make([]*Tile, length)
			next := numWild - 1
			for i := 0; i < length; i++ {
				if t := slots[start+i]; t != nil {
					run[i] = t
				} else {
					run[i] = wildcards[next]
					next--
				}
			}
			sets = append(sets, NewRun(run, start))
		}
	}
	return sets
}

// dedupSets collapses result duplicates: candidates that hold
// the same multiset of tile values, reached through different
// enumeration paths, share a canonical key and only the first
// one is retained
func dedupSets(sets []Set) []Set {
	seen := make(map[string]bool, len(sets))
	unique := make([]Set, 0, len(sets))
	for _, s := range sets {
		key := s.CanonicalKey()
		if seen[key] {
			continue
		}
		seen[key] = true
		unique = append(unique, s)
	}
	return unique
}
