package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"jot/internal/cli"
	"jot/internal/config"
	"jot/internal/logs"
	"jot/internal/notes/data"
	"jot/internal/notes/service"
	"jot/internal/tui"
)

func main() {
	// Parse CLI flags
	notesFlag := flag.String("file", "", "Notes file path")
	flag.StringVar(notesFlag, "f", "", "Notes file path (shorthand)")
	tuiFlag := flag.Bool("tui", false, "Launch the full-screen UI instead of the prompt loop")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(config.CLIFlags{NotesFile: *notesFlag})
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Ensure config file exists
	if err := config.EnsureConfigFile(); err != nil {
		log.Printf("Warning: could not create config file: %v", err)
	}

	// Reinitialize logger
	if dir, err := config.Dir(); err == nil {
		if err := logs.Initialize(dir); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not initialize logger: %v\n", err)
		}
	}

	book := data.NewBook()

	// TUI mode
	if *tuiFlag || cfg.DefaultView == "tui" {
		logs.Logger.Println("Starting jot in TUI mode")
		p := tea.NewProgram(tui.NewModel(book, cfg.NotesFile), tea.WithAltScreen())
		if _, err := p.Run(); err != nil {
			fmt.Println("Error running program:", err)
			os.Exit(1)
		}
		return
	}

	// Prompt loop mode. A date parse failure on add/day/week propagates here
	// and terminates the process; load/save I/O errors are handled inside.
	view := cli.NewConsoleView(os.Stdout)
	notebook := service.NewNotebook(view, book, cfg.NotesFile)
	if err := cli.Run(os.Stdin, view, notebook); err != nil {
		log.Fatalf("%v", err)
	}
}
