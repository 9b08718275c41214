package cli

import (
	"bufio"
	"fmt"
	"io"

	"jot/internal/notes/data"
	"jot/internal/notes/service"
)

// Run drives the interactive prompt loop until the user exits or input ends.
// Load/save I/O failures are reported by the notebook and the loop continues.
// A date parse failure on add/day/week is returned to the caller and aborts
// the loop; the asymmetry is deliberate.
func Run(in io.Reader, view *ConsoleView, notebook service.Notebook) error {
	scanner := bufio.NewScanner(in)

	for {
		view.DisplayMessage("Enter a command (add, load, save, day, week, exit):")
		if !scanner.Scan() {
			return scanner.Err()
		}

		switch scanner.Text() {
		case "add":
			view.DisplayMessage("Enter a date (for example, 2024-09-24 19:00):")
			if !scanner.Scan() {
				return scanner.Err()
			}
			dateText := scanner.Text()
			view.DisplayMessage("Enter the note content:")
			if !scanner.Scan() {
				return scanner.Err()
			}
			if err := notebook.AddNote(dateText, scanner.Text()); err != nil {
				return err
			}

		case "load":
			if err := notebook.LoadNotes(); err != nil {
				return err
			}

		case "save":
			notebook.SaveNotes()

		case "day":
			view.DisplayMessage("Enter a date to search (for example, 2024-09-24):")
			if !scanner.Scan() {
				return scanner.Err()
			}
			day, err := data.ParseTime(scanner.Text() + " 00:00")
			if err != nil {
				return fmt.Errorf("invalid date %q: %v", scanner.Text(), err)
			}
			view.DisplayNotes(notebook.NotesForDay(day))

		case "week":
			view.DisplayMessage("Enter the start date of the week (for example, 2024-09-23):")
			if !scanner.Scan() {
				return scanner.Err()
			}
			start, err := data.ParseTime(scanner.Text() + " 00:00")
			if err != nil {
				return fmt.Errorf("invalid date %q: %v", scanner.Text(), err)
			}
			view.DisplayNotes(notebook.NotesForWeek(start))

		case "exit":
			view.DisplayMessage("Goodbye.")
			return nil

		default:
			view.DisplayMessage("Unknown command.")
		}
	}
}
