package store

import (
	"errors"
	"reflect"
	"testing"

	"github.com/Galeria-Pequenas-Estrelas/GaleriaPeqEstrelas/database"
)

func validFields() NoteFields {
	return NoteFields{
		Name:    "Ana",
		Class:   "3A",
		Shift:   "morning",
		Content: "hi",
		Color:   "pink",
		Room:    "Sala1",
	}
}

func TestCreateAndListNotes(t *testing.T) {
	s := NewNoteStore(database.OpenTest())

	note, err := s.CreateNote(validFields())
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if note.ID == 0 {
		t.Fatal("expected a generated id")
	}

	notes, err := s.ListNotes("Sala1")
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("expected 1 note, got %d", len(notes))
	}
	if !reflect.DeepEqual(notes[0], note) {
		t.Fatalf("listed note %+v differs from created %+v", notes[0], note)
	}
}

func TestCreateNoteFreshIDs(t *testing.T) {
	s := NewNoteStore(database.OpenTest())

	seen := map[uint]bool{}
	for i := 0; i < 5; i++ {
		note, err := s.CreateNote(validFields())
		if err != nil {
			t.Fatalf("CreateNote: %v", err)
		}
		if seen[note.ID] {
			t.Fatalf("id %d assigned twice", note.ID)
		}
		seen[note.ID] = true
	}
}

func TestCreateNoteValidation(t *testing.T) {
	s := NewNoteStore(database.OpenTest())

	for _, field := range []string{"name", "class", "shift", "content", "color", "room"} {
		f := validFields()
		switch field {
		case "name":
			f.Name = ""
		case "class":
			f.Class = "  "
		case "shift":
			f.Shift = ""
		case "content":
			f.Content = ""
		case "color":
			f.Color = ""
		case "room":
			f.Room = ""
		}
		_, err := s.CreateNote(f)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("empty %s: expected ValidationError, got %v", field, err)
		}
		if _, ok := verr.Fields[field]; !ok {
			t.Fatalf("empty %s: field missing from %v", field, verr.Fields)
		}
	}

	// No partial writes: the room must still be empty.
	notes, err := s.ListNotes("Sala1")
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if len(notes) != 0 {
		t.Fatalf("validation failures persisted %d rows", len(notes))
	}
}

func TestListNotesDefaultsRoom(t *testing.T) {
	s := NewNoteStore(database.OpenTest())

	if _, err := s.CreateNote(validFields()); err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	notes, err := s.ListNotes("")
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if len(notes) != 1 || notes[0].Room != DefaultRoom {
		t.Fatalf("expected the %s note, got %+v", DefaultRoom, notes)
	}
}

func TestListNotesUnknownRoom(t *testing.T) {
	s := NewNoteStore(database.OpenTest())

	notes, err := s.ListNotes("never-created")
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	if notes == nil || len(notes) != 0 {
		t.Fatalf("expected empty slice, got %v", notes)
	}
}

func TestUpdateNoteIdempotent(t *testing.T) {
	s := NewNoteStore(database.OpenTest())

	note, err := s.CreateNote(validFields())
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}

	upd := NoteFields{Name: "Bia", Class: "3B", Shift: "afternoon", Content: "bye", Color: "blue"}
	first, err := s.UpdateNote(note.ID, upd)
	if err != nil {
		t.Fatalf("UpdateNote: %v", err)
	}
	second, err := s.UpdateNote(note.ID, upd)
	if err != nil {
		t.Fatalf("UpdateNote (again): %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("second identical update changed the note: %+v vs %+v", first, second)
	}
	if second.Room != "Sala1" {
		t.Fatalf("update must not move the note, room became %q", second.Room)
	}
}

func TestUpdateNoteRoomImmutable(t *testing.T) {
	s := NewNoteStore(database.OpenTest())

	note, err := s.CreateNote(validFields())
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	upd := validFields()
	upd.Room = "Sala2"
	got, err := s.UpdateNote(note.ID, upd)
	if err != nil {
		t.Fatalf("UpdateNote: %v", err)
	}
	if got.Room != "Sala1" {
		t.Fatalf("room changed to %q", got.Room)
	}
}

func TestUpdateNoteNotFound(t *testing.T) {
	s := NewNoteStore(database.OpenTest())

	_, err := s.UpdateNote(9999, validFields())
	if !errors.Is(err, ErrNoteNotFound) {
		t.Fatalf("expected ErrNoteNotFound, got %v", err)
	}
}

func TestDeleteNoteIdempotent(t *testing.T) {
	s := NewNoteStore(database.OpenTest())

	note, err := s.CreateNote(validFields())
	if err != nil {
		t.Fatalf("CreateNote: %v", err)
	}
	if err := s.DeleteNote(note.ID); err != nil {
		t.Fatalf("DeleteNote: %v", err)
	}
	if err := s.DeleteNote(note.ID); err != nil {
		t.Fatalf("second DeleteNote must succeed, got %v", err)
	}
	notes, err := s.ListNotes("Sala1")
	if err != nil {
		t.Fatalf("ListNotes: %v", err)
	}
	for _, n := range notes {
		if n.ID == note.ID {
			t.Fatalf("deleted note %d still listed", note.ID)
		}
	}
}
