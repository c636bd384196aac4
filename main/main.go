// main.go
// Copyright (C) 2024 The GoRummi Authors

// Example main program for exercising the rummi module:
// draws a tray from a fresh bag and prints every valid set
// that can be formed from it

package main

import (
	"flag"
	"fmt"
	"os"

	rummi "github.com/gorummi/GoRummi"
)

func main() {
	num := flag.Int("n", 14, "Number of tiles to draw into the tray")
	quiet := flag.Bool("q", false, "Suppress output of the unsorted tray")
	flag.Parse()
	if *num < 1 || *num > rummi.StandardTileSet.Size() {
		fmt.Printf("Tray size must be between 1 and %v tiles.\n",
			rummi.StandardTileSet.Size())
		os.Exit(1)
	}
	bag := rummi.NewBag(rummi.StandardTileSet)
	tray := bag.DrawTray(*num)
	if !*quiet {
		fmt.Println("Your tray:")
		for _, tile := range tray {
			fmt.Printf(" - %v\n", tile)
		}
	}
	fmt.Println("Your tray (sorted):")
	for _, tile := range tray.Sorted() {
		fmt.Printf(" - %v\n", tile)
	}
	fmt.Println("Valid sets:")
	for _, set := range tray.ValidSets() {
		fmt.Printf(" -> %v\n", set)
	}
}
