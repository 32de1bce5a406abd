// Local two-seat terminal game. Both players share the keyboard; moves are
// entered as two algebraic squares ("c1 c4").
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/Acos2ver/AnimalGame/internal/game"
)

func main() {
	g := game.New()
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("AnimalGame — capture the opposing cuttlefish (U/u) to win.")
	fmt.Println("Enter moves as two squares, e.g. \"c1 c4\". \"quit\" exits.")
	fmt.Println()

	for g.GameState() == game.StateUnfinished {
		fmt.Println(g.Render())
		fmt.Printf("%s> ", g.Turn())

		if !scanner.Scan() {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "quit" || line == "exit" {
			return
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			fmt.Println("expected two squares, e.g. \"c1 c4\"")
			continue
		}

		result, err := g.Apply(fields[0], fields[1])
		if err != nil {
			fmt.Printf("move rejected: %v\n", err)
			continue
		}
		if result.Capture {
			fmt.Printf("%s captures the %s on %s\n", result.Player, result.Captured.Type, result.To)
		}
	}

	fmt.Println(g.Render())
	switch g.GameState() {
	case game.StateTangerineWon:
		fmt.Println("TANGERINE wins!")
	case game.StateAmethystWon:
		fmt.Println("AMETHYST wins!")
	}
}
