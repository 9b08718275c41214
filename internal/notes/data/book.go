package data

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"
)

// Book holds the in-memory note collection. Notes keep their append order;
// duplicates are permitted. Queries return new sorted slices and never
// reorder the stored collection.
type Book struct {
	notes []Note
}

// NewBook creates an empty note collection.
func NewBook() *Book {
	return &Book{}
}

// Add appends a note to the collection.
func (b *Book) Add(n Note) {
	b.notes = append(b.notes, n)
}

// Notes returns the collection in insertion order.
func (b *Book) Notes() []Note {
	return b.notes
}

// ForDay returns the notes falling strictly inside the day starting at the
// given date's midnight, sorted ascending by timestamp. A note at exactly
// midnight on either boundary is excluded.
func (b *Book) ForDay(day time.Time) []Note {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.Local)
	return b.between(start, start.AddDate(0, 0, 1))
}

// ForWeek returns the notes falling strictly inside the seven days following
// the given start date's midnight, sorted ascending by timestamp. Boundary
// notes are excluded on both ends.
func (b *Book) ForWeek(start time.Time) []Note {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.Local)
	return b.between(s, s.AddDate(0, 0, 7))
}

func (b *Book) between(start, end time.Time) []Note {
	var filtered []Note
	for _, n := range b.notes {
		if n.when.After(start) && n.when.Before(end) {
			filtered = append(filtered, n)
		}
	}
	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].when.Before(filtered[j].when)
	})
	return filtered
}

// SaveTo writes every note, one line per note in collection order,
// overwriting the file.
func (b *Book) SaveTo(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error writing %s: %v", path, err)
	}
	defer file.Close()

	for _, n := range b.notes {
		if _, err := fmt.Fprintln(file, n.Line()); err != nil {
			return fmt.Errorf("error writing to %s: %v", path, err)
		}
	}
	return nil
}

// LoadFrom clears the collection and reads the file line by line. Lines that
// do not split into exactly two fields are skipped. A well-split line with a
// timestamp that does not parse fails the whole load with BadTimestampError.
func (b *Book) LoadFrom(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	b.notes = nil

	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNum++
		parts := strings.Split(line, Separator)
		if len(parts) != 2 {
			continue
		}
		when, err := ParseTime(parts[0])
		if err != nil {
			return &BadTimestampError{LineNum: lineNum, Value: parts[0]}
		}
		b.notes = append(b.notes, Note{when: when, content: parts[1]})
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading %s: %v", path, err)
	}
	return nil
}
