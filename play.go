package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/matt-harvey/king-albert/game/deck"
	"github.com/matt-harvey/king-albert/game/engine"
	"github.com/matt-harvey/king-albert/validate"
)

const clearScreen = "\x1b[2J\x1b[1;1H"

// runPlay drives the interactive terminal game: deal, then repeatedly read an
// origin and a destination, apply the movement if the board permits it, and
// redraw. The loop ends on victory or when input closes.
func runPlay(seed int64, ascii bool) error {
	d := deck.New(seed)
	board, err := engine.NewBoard(d.Cards())
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s\n%s", clearScreen, engine.Render(board, ascii))

	for {
		movement, err := readMovement(reader)
		if err == io.EOF {
			fmt.Println()
			return nil
		}
		if err != nil {
			return err
		}

		if !board.Permits(movement) {
			fmt.Println("That move is not permitted, try again!")
			continue
		}

		board.Execute(movement)
		fmt.Printf("%s\n%s", clearScreen, engine.Render(board, ascii))

		if board.VictoryState() == engine.Won {
			fmt.Printf("\nYou won! (deal seed %d)\n", d.Seed())
			return nil
		}
	}
}

// readMovement prompts for the two labels of a movement, re-prompting until
// each is in its legal range.
func readMovement(reader *bufio.Reader) (engine.Movement, error) {
	origin, err := promptLabel(reader,
		"\nEnter position to move FROM (labelled e-t): ",
		"You must enter a letter from e to t",
		validate.Origin)
	if err != nil {
		return engine.Movement{}, err
	}

	destination, err := promptLabel(reader,
		"\nEnter position to move TO (labelled a-m): ",
		"You must enter a letter from a to m",
		validate.Destination)
	if err != nil {
		return engine.Movement{}, err
	}

	return engine.Movement{Origin: origin, Destination: destination}, nil
}

func promptLabel(reader *bufio.Reader, prompt, hint string, check func(string) (byte, error)) (byte, error) {
	for {
		fmt.Print(prompt)
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return 0, err
		}

		label, verr := check(strings.TrimSpace(line))
		if verr == nil {
			return label, nil
		}
		fmt.Println(hint)

		if err != nil {
			return 0, err
		}
	}
}
