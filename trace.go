package main

import (
	"fmt"
	"io"

	aesgo "github.com/mario-areias/aes-ofb/aes-go"
)

// traceWriter prints every traced state as a labeled 4x4 hex grid.
type traceWriter struct {
	w io.Writer
}

func (t *traceWriter) Trace(e aesgo.Event) {
	fmt.Fprintln(t.w, label(e))
	for _, row := range e.State {
		fmt.Fprintf(t.w, "% x\n", row)
	}
	fmt.Fprintln(t.w)
}

func label(e aesgo.Event) string {
	switch e.Stage {
	case aesgo.StageRoundKey:
		return fmt.Sprintf("round key %d:", e.Round)
	case aesgo.StageInitial:
		return "initial state (after AddRoundKey):"
	case aesgo.StageFinal:
		return "final state (after last AddRoundKey):"
	default:
		return fmt.Sprintf("round %d (after %s):", e.Round, e.Stage)
	}
}
