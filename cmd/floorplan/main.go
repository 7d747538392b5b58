// Package main provides the floorplan CLI: a host around the floor-plan
// editor core for creating, inspecting and editing saved seating layouts.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
}
