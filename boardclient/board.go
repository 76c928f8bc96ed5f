package boardclient

import (
	"errors"
	"sort"
	"strings"

	"github.com/Galeria-Pequenas-Estrelas/GaleriaPeqEstrelas/models"
)

// DefaultColor is the pre-selected note color in the UI.
const DefaultColor = "yellow"

// DefaultRoom is the fallback when neither the saved state nor the server
// offer a room.
const DefaultRoom = "Sala1"

var ErrNoEditSession = errors.New("no edit session open")

// DraftError reports empty required fields caught before the request is
// sent. It mirrors server validation as a UX short-circuit only; the
// server remains authoritative.
type DraftError struct {
	Fields map[string]string
}

func (e *DraftError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return "empty fields: " + strings.Join(keys, ", ")
}

func (d *NoteDraft) validate() error {
	errs := map[string]string{}
	for field, v := range map[string]string{
		"name":    d.Name,
		"class":   d.Class,
		"shift":   d.Shift,
		"content": d.Content,
		"color":   d.Color,
	} {
		if strings.TrimSpace(v) == "" {
			errs[field] = "cannot be empty"
		}
	}
	if len(errs) > 0 {
		return &DraftError{Fields: errs}
	}
	return nil
}

// EditSession is the single open edit. Its Draft holds the unsaved input;
// the session ends only on a successful save or an explicit cancel, never
// because a save failed.
type EditSession struct {
	NoteID uint
	Draft  NoteDraft
}

// Board is the client's view of one room plus the room list. After every
// mutation the server's response is the ground truth: on success the
// returned record is merged (or the element dropped), on failure nothing
// local changes. Not safe for concurrent use; the UI it models is
// single-threaded.
type Board struct {
	api   *Client
	state StateStore

	currentRoom string
	rooms       []string
	notes       []models.Note
	editing     *EditSession
}

func NewBoard(api *Client, state StateStore) *Board {
	return &Board{api: api, state: state}
}

func (b *Board) CurrentRoom() string { return b.currentRoom }

func (b *Board) Rooms() []string { return append([]string(nil), b.rooms...) }

func (b *Board) Notes() []models.Note { return append([]models.Note(nil), b.notes...) }

func (b *Board) Editing() *EditSession { return b.editing }

// Open loads the room list, restores the previously selected room (or the
// first available, or the default) and fetches its notes.
func (b *Board) Open() error {
	rooms, err := b.api.ListRooms()
	if err != nil {
		return err
	}
	b.rooms = rooms

	room, err := b.state.LoadRoom()
	if err != nil {
		return err
	}
	if room == "" {
		if len(rooms) > 0 {
			room = rooms[0]
		} else {
			room = DefaultRoom
		}
	}
	return b.SelectRoom(room)
}

// SelectRoom switches the board to a room: the room's notes are fetched in
// full, never filtered out of a stale list. On fetch failure the board
// keeps showing the previous room.
func (b *Board) SelectRoom(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return &DraftError{Fields: map[string]string{"room": "cannot be empty"}}
	}
	notes, err := b.api.ListNotes(name)
	if err != nil {
		return err
	}
	b.currentRoom = name
	b.notes = notes
	return b.state.SaveRoom(name)
}

// Refresh re-fetches the current room's notes.
func (b *Board) Refresh() error {
	notes, err := b.api.ListNotes(b.currentRoom)
	if err != nil {
		return err
	}
	b.notes = notes
	return nil
}

// AddNote creates a note in the current room and merges the persisted
// record (with its server-assigned id) into the board.
func (b *Board) AddNote(draft NoteDraft) (models.Note, error) {
	if draft.Color == "" {
		draft.Color = DefaultColor
	}
	if err := draft.validate(); err != nil {
		return models.Note{}, err
	}
	draft.Room = b.currentRoom
	note, err := b.api.CreateNote(draft)
	if err != nil {
		return models.Note{}, err
	}
	b.notes = append(b.notes, note)
	return note, nil
}

// BeginEdit opens an edit session on a note of the current room,
// discarding any previous unsaved session.
func (b *Board) BeginEdit(id uint) error {
	for _, n := range b.notes {
		if n.ID == id {
			b.editing = &EditSession{
				NoteID: id,
				Draft: NoteDraft{
					Name:    n.Name,
					Class:   n.Class,
					Shift:   n.Shift,
					Content: n.Content,
					Color:   n.Color,
				},
			}
			return nil
		}
	}
	return errors.New("note is not on the board")
}

// SaveEdit sends the open session's draft. On success the authoritative
// record replaces the local one and the session closes. On failure the
// session stays open with the draft intact so the user's input is not
// thrown away.
func (b *Board) SaveEdit() (models.Note, error) {
	if b.editing == nil {
		return models.Note{}, ErrNoEditSession
	}
	if err := b.editing.Draft.validate(); err != nil {
		return models.Note{}, err
	}
	note, err := b.api.UpdateNote(b.editing.NoteID, b.editing.Draft)
	if err != nil {
		return models.Note{}, err
	}
	for i := range b.notes {
		if b.notes[i].ID == note.ID {
			b.notes[i] = note
			break
		}
	}
	b.editing = nil
	return note, nil
}

// CancelEdit discards the open session, if any.
func (b *Board) CancelEdit() {
	b.editing = nil
}

// RemoveNote deletes a note and drops it from the board only after the
// server confirms.
func (b *Board) RemoveNote(id uint) error {
	if err := b.api.DeleteNote(id); err != nil {
		return err
	}
	for i := range b.notes {
		if b.notes[i].ID == id {
			b.notes = append(b.notes[:i], b.notes[i+1:]...)
			break
		}
	}
	return nil
}

// AddRoom creates a room and re-fetches the room list rather than guessing
// at the server's view of it.
func (b *Board) AddRoom(name string) error {
	if strings.TrimSpace(name) == "" {
		return &DraftError{Fields: map[string]string{"room": "cannot be empty"}}
	}
	if _, err := b.api.CreateRoom(name); err != nil {
		return err
	}
	rooms, err := b.api.ListRooms()
	if err != nil {
		return err
	}
	b.rooms = rooms
	return nil
}

// RemoveRoom deletes a room (and, server-side, all its notes). If the
// current room was deleted the board moves to the first remaining room.
func (b *Board) RemoveRoom(name string) error {
	if err := b.api.DeleteRoom(name); err != nil {
		return err
	}
	rooms, err := b.api.ListRooms()
	if err != nil {
		return err
	}
	b.rooms = rooms
	if b.currentRoom == name {
		next := DefaultRoom
		if len(rooms) > 0 {
			next = rooms[0]
		}
		return b.SelectRoom(next)
	}
	return nil
}
