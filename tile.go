// tile.go
// Copyright (C) 2024 The GoRummi Authors
// This file implements the Tile and Color types

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
	"fmt"
	"strconv"
)

// Color is the color of a numbered tile. The four colors are
// totally ordered; the order itself is arbitrary but fixed, and
// is only used to produce deterministic grouping output and
// canonical set keys.
type Color int8

// The four tile colors
const (
	Red Color = iota
	Blue
	Black
	Yellow
)

// NumColors is the number of distinct tile colors
const NumColors = 4

// MaxNumber is the highest number that occurs on a tile
const MaxNumber = 13

// colorNames contains the display names of the colors,
// indexed by Color
var colorNames = [NumColors]string{"Red", "Blue", "Black", "Yellow"}

// colorCodes contains the one-letter color codes used in
// compact tile codes, indexed by Color
var colorCodes = [NumColors]string{"R", "B", "K", "Y"}

// String returns the display name of a Color
func (c Color) String() string {
	return colorNames[c]
}

// Tile is a single playing piece: either a numbered tile, having
// a Number in the range 1..MaxNumber and a Color, or a wildcard.
// A wildcard is represented by Number == 0; its Color field then
// carries no meaning. Wildcards have no identity-distinguishing
// value, although several wildcard tiles may coexist as distinct
// instances in a tray.
type Tile struct {
	Number int
	Color  Color
}

// NewTile returns a reference to a fresh numbered tile.
// A number outside 1..MaxNumber is a construction defect on the
// caller's side, not a case the set finders handle, so we fail
// fast here.
func NewTile(number int, color Color) *Tile {
	if number < 1 || number > MaxNumber {
		panic(fmt.Sprintf("Tile number out of range: %v", number))
	}
	if color < Red || color > Yellow {
		panic(fmt.Sprintf("Invalid tile color: %v", int(color)))
	}
	return &Tile{Number: number, Color: color}
}

// NewWildcard returns a reference to a fresh wildcard tile
func NewWildcard() *Tile {
	return &Tile{}
}

// IsWildcard returns true if the tile is a wildcard
func (t *Tile) IsWildcard() bool {
	return t.Number == 0
}

// Less defines the total order of tiles: numbered tiles compare
// by (number, color), and a wildcard sorts after every numbered
// tile. Two wildcards are equal under this order. Grouping and
// canonical-key dedup both depend on this contract.
func (t *Tile) Less(other *Tile) bool {
	if t.IsWildcard() {
		// A wildcard is never less than anything
		return false
	}
	if other.IsWildcard() {
		return true
	}
	if t.Number != other.Number {
		return t.Number < other.Number
	}
	return t.Color < other.Color
}

// String returns the compact code of a Tile, e.g. "R5", "K13"
// or "?" for a wildcard
func (t *Tile) String() string {
	if t.IsWildcard() {
		return "?"
	}
	return colorCodes[t.Color] + strconv.Itoa(t.Number)
}

// ParseTile converts a compact tile code back into a Tile
// reference. It accepts the codes produced by Tile.String().
func ParseTile(code string) (*Tile, error) {
	if code == "?" {
		return NewWildcard(), nil
	}
	if len(code) < 2 {
		return nil, fmt.Errorf("invalid tile code '%v'", code)
	}
	var color Color
	switch code[:1] {
	case "R":
		color = Red
	case "B":
		color = Blue
	case "K":
		color = Black
	case "Y":
		color = Yellow
	default:
		return nil, fmt.Errorf("invalid color in tile code '%v'", code)
	}
	number, err := strconv.Atoi(code[1:])
	if err != nil || number < 1 || number > MaxNumber {
		return nil, fmt.Errorf("invalid number in tile code '%v'", code)
	}
	return NewTile(number, color), nil
}
