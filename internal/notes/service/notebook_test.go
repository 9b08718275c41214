package service

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"jot/internal/notes/data"
)

// recordingView captures everything the notebook renders
type recordingView struct {
	noteLists [][]data.Note
	messages  []string
}

func (v *recordingView) DisplayNotes(notes []data.Note) {
	v.noteLists = append(v.noteLists, notes)
}

func (v *recordingView) DisplayMessage(message string) {
	v.messages = append(v.messages, message)
}

func (v *recordingView) lastMessage() string {
	if len(v.messages) == 0 {
		return ""
	}
	return v.messages[len(v.messages)-1]
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func setup(t *testing.T) (*recordingView, Notebook, string) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	view := &recordingView{}
	return view, NewNotebook(view, data.NewBook(), path), path
}

func TestAddNoteThenQueryDay(t *testing.T) {
	view, nb, _ := setup(t)

	if err := nb.AddNote("2024-09-24 19:00", "Meeting"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.lastMessage() != "Note added." {
		t.Errorf("expected confirmation, got %q", view.lastMessage())
	}

	notes := nb.NotesForDay(day(2024, 9, 24))
	if len(notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(notes))
	}
	if notes[0].String() != "2024-09-24 19:00: Meeting" {
		t.Errorf("unexpected display string: %q", notes[0].String())
	}
}

func TestAddNote_ParseErrorReturned(t *testing.T) {
	view, nb, _ := setup(t)

	err := nb.AddNote("24th of September", "Meeting")
	if err == nil {
		t.Fatal("expected parse error")
	}
	if len(view.messages) != 0 {
		t.Errorf("parse error must not be rendered, got %v", view.messages)
	}
	if len(nb.Notes()) != 0 {
		t.Errorf("expected empty collection, got %d notes", len(nb.Notes()))
	}
}

func TestSaveThenLoadNotes(t *testing.T) {
	view, nb, _ := setup(t)

	nb.AddNote("2024-09-25 09:30", "Standup")
	nb.AddNote("2024-09-24 19:00", "Meeting")

	nb.SaveNotes()
	if view.lastMessage() != "Notes saved." {
		t.Errorf("expected save confirmation, got %q", view.lastMessage())
	}

	if err := nb.LoadNotes(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view.noteLists) != 1 {
		t.Fatalf("expected one DisplayNotes call, got %d", len(view.noteLists))
	}

	// Insertion order, not chronological
	loaded := view.noteLists[0]
	if len(loaded) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(loaded))
	}
	if loaded[0].Content() != "Standup" || loaded[1].Content() != "Meeting" {
		t.Errorf("load did not preserve insertion order: %v", loaded)
	}
}

func TestLoadNotes_IOErrorReported(t *testing.T) {
	view, nb, _ := setup(t)

	if err := nb.LoadNotes(); err != nil {
		t.Fatalf("I/O failure must be swallowed, got %v", err)
	}
	if !strings.Contains(view.lastMessage(), "Error loading notes") {
		t.Errorf("expected error message, got %q", view.lastMessage())
	}
	if len(view.noteLists) != 0 {
		t.Error("no notes should be displayed on a failed load")
	}
}

func TestLoadNotes_BadTimestampPropagates(t *testing.T) {
	view, nb, path := setup(t)

	os.WriteFile(path, []byte("bogus;Broken note\n"), 0644)

	err := nb.LoadNotes()
	if err == nil {
		t.Fatal("expected error for malformed stored timestamp")
	}
	if len(view.noteLists) != 0 {
		t.Error("no notes should be displayed on a failed load")
	}
}

func TestSaveNotes_IOErrorReported(t *testing.T) {
	view := &recordingView{}
	path := filepath.Join(t.TempDir(), "no-such-dir", "notes.txt")
	nb := NewNotebook(view, data.NewBook(), path)

	nb.AddNote("2024-09-24 19:00", "Meeting")
	nb.SaveNotes()

	if !strings.Contains(view.lastMessage(), "Error saving notes") {
		t.Errorf("expected error message, got %q", view.lastMessage())
	}
}

func TestNotesForWeek_PassThrough(t *testing.T) {
	_, nb, _ := setup(t)

	nb.AddNote("2024-09-23 08:00", "Monday morning")
	nb.AddNote("2024-09-30 00:00", "Boundary")

	notes := nb.NotesForWeek(day(2024, 9, 23))
	if len(notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(notes))
	}
	if notes[0].Content() != "Monday morning" {
		t.Errorf("expected 'Monday morning', got %q", notes[0].Content())
	}
}
