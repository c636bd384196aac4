// set.go
// Copyright (C) 2024 The GoRummi Authors

// This file implements the Set interface and its two concrete
// types, Group and Run

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

package rummi

import (
	"sort"
	"strings"
)

// Set is an interface to the types of valid tile combinations
// that can be found in a tray. A Set never owns its tiles; it
// only borrows references from the tray it was found in, so its
// lifetime is bounded by the tray's lifetime.
type Set interface {
	// Tiles returns the tiles of the set, borrowed from the tray
	Tiles() []*Tile
	// IsValid re-checks the defining predicate of the set
	IsValid() bool
	// CanonicalKey returns the sorted tile-value key of the set,
	// used to detect duplicate results
	CanonicalKey() string
	// String returns a printable description of the set
	String() string
}

// Group is a set of 3 or 4 tiles sharing one number, with
// pairwise distinct colors; wildcards may stand in for the
// missing colors
type Group struct {
	tiles []*Tile
}

// Run is a set of 3 or more tiles of a single color with
// strictly consecutive numbers, held in increasing-number order;
// wildcards may occupy the positions of missing numbers. The
// start field is the number assigned to the first position.
type Run struct {
	tiles []*Tile
	start int
}

// NewGroup returns a fresh Group over the given tiles
func NewGroup(tiles []*Tile) *Group {
	return &Group{tiles: tiles}
}

// NewRun returns a fresh Run over the given tiles, whose first
// position carries the number start
func NewRun(tiles []*Tile, start int) *Run {
	return &Run{tiles: tiles, start: start}
}

// Tiles returns the tiles of the Group
func (g *Group) Tiles() []*Tile {
	return g.tiles
}

// IsValid returns true if the Group satisfies the group
// predicate: size 3 or 4, all numbered tiles sharing one number,
// colors pairwise distinct
func (g *Group) IsValid() bool {
	if len(g.tiles) < 3 || len(g.tiles) > NumColors {
		return false
	}
	number := 0
	var colorSeen [NumColors]bool
	for _, t := range g.tiles {
		if t.IsWildcard() {
			continue
		}
		if number == 0 {
			number = t.Number
		} else if t.Number != number {
			return false
		}
		if colorSeen[t.Color] {
			return false
		}
		colorSeen[t.Color] = true
	}
	return true
}

// CanonicalKey returns the canonical key of the Group
func (g *Group) CanonicalKey() string {
	return canonicalKey(g.tiles)
}

// String returns a printable description of the Group
func (g *Group) String() string {
	return "Group " + tileCodes(g.tiles)
}

// Tiles returns the tiles of the Run
func (r *Run) Tiles() []*Tile {
	return r.tiles
}

// Start returns the number assigned to the Run's first position
func (r *Run) Start() int {
	return r.start
}

// IsValid returns true if the Run satisfies the run predicate:
// length 3 or more, fitting within 1..MaxNumber, every numbered
// tile carrying the number of its position, and all numbered
// tiles sharing one color
func (r *Run) IsValid() bool {
	length := len(r.tiles)
	if length < 3 || r.start < 1 || r.start+length-1 > MaxNumber {
		return false
	}
	colorSet := false
	var color Color
	for i, t := range r.tiles {
		if t.IsWildcard() {
			continue
		}
		if t.Number != r.start+i {
			return false
		}
		if !colorSet {
			color = t.Color
			colorSet = true
		} else if t.Color != color {
			return false
		}
	}
	return true
}

// CanonicalKey returns the canonical key of the Run
func (r *Run) CanonicalKey() string {
	return canonicalKey(r.tiles)
}

// String returns a printable description of the Run
func (r *Run) String() string {
	return "Run " + tileCodes(r.tiles)
}

// canonicalKey builds the canonical key of a list of tiles:
// the tile codes sorted by the tile total order. Two sets with
// equal canonical keys hold the same multiset of tile values
// and count as the same result.
func canonicalKey(tiles []*Tile) string {
	sorted := make([]*Tile, len(tiles))
	copy(sorted, tiles)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Less(sorted[j])
	})
	return tileCodes(sorted)
}

// tileCodes joins the compact codes of a list of tiles
func tileCodes(tiles []*Tile) string {
	var sb strings.Builder
	for i, t := range tiles {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(t.String())
	}
	return sb.String()
}
