package cli

import (
	"fmt"
	"io"

	"jot/internal/notes/data"
)

// ConsoleView renders notebook output as plain lines on a writer.
type ConsoleView struct {
	out io.Writer
}

// NewConsoleView creates a console view writing to out.
func NewConsoleView(out io.Writer) *ConsoleView {
	return &ConsoleView{out: out}
}

func (v *ConsoleView) DisplayNotes(notes []data.Note) {
	if len(notes) == 0 {
		fmt.Fprintln(v.out, "No notes.")
		return
	}
	for _, n := range notes {
		fmt.Fprintln(v.out, n)
	}
}

func (v *ConsoleView) DisplayMessage(message string) {
	fmt.Fprintln(v.out, message)
}
