// Command regoth-save inspects and maintains REGoth savegame slots
// without running the game.
package main

import (
	"fmt"
	"os"
)

const Title = "regoth-save"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
