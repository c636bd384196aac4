// tray.go
// Copyright (C) 2024 The GoRummi Authors

// This file implements the Tray type and its operations

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

// Tray is the caller-owned hand of tiles to be searched for
// valid sets. The search only borrows the tray for the duration
// of a call and never mutates it; found Sets reference the
// tray's tiles rather than copying them. A tray may contain
// duplicate (number, color) pairs and any number of wildcards.
type Tray []*Tile

// NewTray builds a Tray from a list of compact tile codes
func NewTray(codes []string) (Tray, error) {
	tray := make(Tray, 0, len(codes))
	for _, code := range codes {
		tile, err := ParseTile(code)
		if err != nil {
			return nil, err
		}
		tray = append(tray, tile)
	}
	return tray, nil
}

// Wildcards returns references to the wildcard tiles contained
// in the tray - the pool that the set finders may draw from when
// filling gaps
func (tray Tray) Wildcards() []*Tile {
	wildcards := make([]*Tile, 0, 2)
	for _, t := range tray {
		if t.IsWildcard() {
			wildcards = append(wildcards, t)
		}
	}
	return wildcards
}

// NumWildcards returns the number of wildcard tiles in the tray
func (tray Tray) NumWildcards() int {
	return len(tray.Wildcards())
}

// Sorted returns a fresh copy of the tray, sorted by the tile
// total order. The original tray is left untouched.
func (tray Tray) Sorted() Tray {
	sorted := make(Tray, len(tray))
	copy(sorted, tray)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Less(sorted[j])
	})
	return sorted
}

// Codes returns the compact codes of the tray's tiles, in tray order
func (tray Tray) Codes() []string {
	codes := make([]string, len(tray))
	for i, t := range tray {
		codes[i] = t.String()
	}
	return codes
}

// String returns a printable string representation of a Tray
func (tray Tray) String() string {
	return strings.Join(tray.Codes(), " ")
}
