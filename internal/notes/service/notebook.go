package service

import (
	"fmt"
	"time"

	"jot/internal/logs"
	"jot/internal/notes/data"
)

// View is the rendering capability a front end hands to the notebook.
type View interface {
	DisplayNotes(notes []data.Note)
	DisplayMessage(message string)
}

// Notebook defines the interface for note operations.
type Notebook interface {
	AddNote(dateText, content string) error
	LoadNotes() error
	SaveNotes()
	Notes() []data.Note
	NotesForDay(day time.Time) []data.Note
	NotesForWeek(start time.Time) []data.Note
}

type notebookImpl struct {
	view View
	book *data.Book
	path string
}

// NewNotebook creates a Notebook backed by the given store and notes file.
func NewNotebook(view View, book *data.Book, path string) Notebook {
	return &notebookImpl{view: view, book: book, path: path}
}

// AddNote parses the date text, appends a new note, and confirms through the
// view. A malformed date is returned to the caller, not reported through the
// view.
func (s *notebookImpl) AddNote(dateText, content string) error {
	when, err := data.ParseTime(dateText)
	if err != nil {
		return fmt.Errorf("invalid date %q: %v", dateText, err)
	}
	s.book.Add(data.NewNote(when, content))
	logs.Logger.Printf("Added note at %s", dateText)
	s.view.DisplayMessage("Note added.")
	return nil
}

// LoadNotes replaces the collection from the notes file and displays it in
// insertion order. I/O failures are reported through the view and swallowed;
// a malformed stored timestamp is returned to the caller.
func (s *notebookImpl) LoadNotes() error {
	if err := s.book.LoadFrom(s.path); err != nil {
		if _, ok := err.(*data.BadTimestampError); ok {
			return fmt.Errorf("error loading notes from %s: %v", s.path, err)
		}
		logs.Logger.Printf("Error loading notes: %v", err)
		s.view.DisplayMessage(fmt.Sprintf("Error loading notes: %v", err))
		return nil
	}
	logs.Logger.Printf("Loaded %d notes from %s", len(s.book.Notes()), s.path)
	s.view.DisplayNotes(s.book.Notes())
	return nil
}

// SaveNotes writes the collection to the notes file. I/O failures are
// reported through the view.
func (s *notebookImpl) SaveNotes() {
	if err := s.book.SaveTo(s.path); err != nil {
		logs.Logger.Printf("Error saving notes: %v", err)
		s.view.DisplayMessage(fmt.Sprintf("Error saving notes: %v", err))
		return
	}
	logs.Logger.Printf("Saved %d notes to %s", len(s.book.Notes()), s.path)
	s.view.DisplayMessage("Notes saved.")
}

func (s *notebookImpl) Notes() []data.Note {
	return s.book.Notes()
}

func (s *notebookImpl) NotesForDay(day time.Time) []data.Note {
	return s.book.ForDay(day)
}

func (s *notebookImpl) NotesForWeek(start time.Time) []data.Note {
	return s.book.ForWeek(start)
}
