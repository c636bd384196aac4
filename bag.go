// bag.go
// Copyright (C) 2024 The GoRummi Authors
// This file contains the Bag logic

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
	"math/rand"
	"strings"
)

// Bag is a randomized list of tiles, initialized from a tile
// set, that is yet to be drawn into a tray
type Bag []*Tile

// TileSet is a static list of tiles, used as a prototype
// to copy new Bags from
type TileSet struct {
	Tiles []Tile
}

// TileSetCopies is the number of copies of each numbered tile
// in the standard tile set; the set also holds one wildcard
// per copy
const TileSetCopies = 2

// initStandardTileSet makes the complete standard tile set:
// two copies of every number and color, plus two wildcards,
// 106 tiles in all
func initStandardTileSet() *TileSet {
	numTiles := TileSetCopies * (NumColors*MaxNumber + 1)
	tiles := make([]Tile, 0, numTiles)
	for i := 0; i < TileSetCopies; i++ {
		for color := Red; color <= Yellow; color++ {
			for number := 1; number <= MaxNumber; number++ {
				tiles = append(tiles, Tile{Number: number, Color: color})
			}
		}
		// One wildcard per copy
		tiles = append(tiles, Tile{})
	}
	if len(tiles) != numTiles {
		panic("Did not assign all tiles in tile set")
	}
	return &TileSet{Tiles: tiles}
}

// StandardTileSet is the standard 106-tile set
var StandardTileSet = initStandardTileSet()

// Size returns the number of tiles in a full TileSet
func (tileSet *TileSet) Size() int {
	return len(tileSet.Tiles)
}

// NewBag initializes a bag from a tile set and returns a
// reference to it. The bag shares the prototype's tiles; since
// tiles are immutable this is safe across any number of bags.
func NewBag(tileSet *TileSet) *Bag {
	bag := make(Bag, len(tileSet.Tiles))
	for i := range bag {
		bag[i] = &tileSet.Tiles[i]
	}
	return &bag
}

// DrawTile pops one random tile from the bag and returns it
func (bag *Bag) DrawTile() *Tile {
	if bag == nil || len(*bag) == 0 {
		// No tiles left in the bag
		return nil
	}
	lenBag := len(*bag)
	i := rand.Intn(lenBag)
	tile := (*bag)[i]
	*bag = append((*bag)[:i], (*bag)[i+1:]...)
	return tile
}

// DrawTray draws up to numTiles tiles from the bag into a fresh
// Tray. If the bag runs out, the tray is returned short.
func (bag *Bag) DrawTray(numTiles int) Tray {
	tray := make(Tray, 0, numTiles)
	for i := 0; i < numTiles; i++ {
		tile := bag.DrawTile()
		if tile == nil {
			break
		}
		tray = append(tray, tile)
	}
	return tray
}

// ReturnTile returns a previously drawn Tile to the Bag
func (bag *Bag) ReturnTile(tile *Tile) {
	if bag == nil {
		return
	}
	*bag = append(*bag, tile)
}

// TileCount returns the number of tiles in a Bag
func (bag *Bag) TileCount() int {
	if bag == nil {
		return 0
	}
	return len(*bag)
}

// String returns a string representation of a Bag
func (bag *Bag) String() string {
	if bag == nil {
		return ""
	}
	var sb strings.Builder
	if len(*bag) == 0 {
		sb.WriteString("Empty")
	} else {
		sb.WriteString(fmt.Sprintf("(%v tiles): ", bag.TileCount()))
		for _, tile := range *bag {
			sb.WriteString(fmt.Sprintf("%v ", tile))
		}
	}
	return sb.String()
}
