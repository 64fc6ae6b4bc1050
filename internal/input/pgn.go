package input

import (
	"fmt"
	"io"

	"github.com/notnil/chess"

	"github.com/lgbarn/chess-features/internal/errors"
)

// ScanPGN calls fn for every position of every game in r, the starting
// position included. Games are numbered from 1 and positions by ply from 0.
// An unreadable game ends the scan with a *errors.ParseError.
func ScanPGN(r io.Reader, name string, fn HandlerFunc) error {
	scanner := chess.NewScanner(r)
	gameNum := 0
	for scanner.Scan() {
		gameNum++
		game := scanner.Next()
		for ply, pos := range game.Positions() {
			rec := Record{
				Source: name,
				Number: gameNum,
				Ply:    ply,
				FEN:    pos.String(),
			}
			if err := fn(rec); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return &errors.ParseError{
			Err:  fmt.Errorf("%w: %v", errors.ErrParseFailure, err),
			File: name,
			Game: gameNum + 1,
		}
	}
	return nil
}
