package engine

import (
	"fmt"
	"io"

	"adversary/game"
)

// Renderer shows a game as it is played.
type Renderer interface {
	Start(state game.State)
	Ply(state game.State, ply Ply, mover string)
}

// TextRenderer prints the board after every move.
type TextRenderer struct {
	W io.Writer
}

func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{W: w}
}

func (r *TextRenderer) Start(state game.State) {
	fmt.Fprintf(r.W, "%s\n", state)
}

func (r *TextRenderer) Ply(state game.State, ply Ply, mover string) {
	switch {
	case ply.Move == nil:
		return
	case ply.Reason == Forfeit:
		fmt.Fprintf(r.W, "%s forfeits\n\n", mover)
		return
	case ply.Reason == IllegalMove:
		fmt.Fprintf(r.W, "%s tried an illegal move: %s\n\n", mover, ply.Move)
		return
	}
	fmt.Fprintf(r.W, "%s: %s\n%s\n", mover, ply.Move, state)
}
