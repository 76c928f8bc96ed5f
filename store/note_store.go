package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Galeria-Pequenas-Estrelas/GaleriaPeqEstrelas/models"
)

// DefaultRoom is used when a caller lists notes without naming a room.
const DefaultRoom = "Sala1"

// NoteFields is the caller-supplied part of a note: everything except the
// server-assigned id.
type NoteFields struct {
	Name    string `json:"name"`
	Class   string `json:"class"`
	Shift   string `json:"shift"`
	Content string `json:"content"`
	Color   string `json:"color"`
	Room    string `json:"room"`
}

func (f *NoteFields) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Class = strings.TrimSpace(f.Class)
	f.Shift = strings.TrimSpace(f.Shift)
	f.Content = strings.TrimSpace(f.Content)
	f.Color = strings.TrimSpace(f.Color)
	f.Room = strings.TrimSpace(f.Room)
}

// validate checks the required fields. Room is only required on create;
// updates never move a note between rooms.
func (f *NoteFields) validate(withRoom bool) *ValidationError {
	errs := map[string]string{}
	if f.Name == "" {
		errs["name"] = "name is required"
	}
	if f.Class == "" {
		errs["class"] = "class is required"
	}
	if f.Shift == "" {
		errs["shift"] = "shift is required"
	}
	if f.Content == "" {
		errs["content"] = "content is required"
	}
	if f.Color == "" {
		errs["color"] = "color is required"
	}
	if withRoom && f.Room == "" {
		errs["room"] = "room is required"
	}
	if len(errs) == 0 {
		return nil
	}
	return &ValidationError{Fields: errs}
}

// NoteStore is the persistence layer for notes. All access goes through
// parameterized GORM statements; there is no derived state.
type NoteStore struct {
	db *gorm.DB
}

func NewNoteStore(db *gorm.DB) *NoteStore { return &NoteStore{db: db} }

// ListNotes returns every note in the given room in insertion order.
// An unknown room is not an error; it simply has no notes yet.
func (s *NoteStore) ListNotes(room string) ([]models.Note, error) {
	if strings.TrimSpace(room) == "" {
		room = DefaultRoom
	}
	notes := []models.Note{}
	err := s.db.Where("room = ?", room).Order("id").Find(&notes).Error
	if err != nil {
		return nil, storageErr("list notes", err)
	}
	return notes, nil
}

// CreateNote validates and persists a new note, returning it with the
// generated id so callers never have to re-fetch.
func (s *NoteStore) CreateNote(fields NoteFields) (models.Note, error) {
	fields.normalize()
	if verr := fields.validate(true); verr != nil {
		return models.Note{}, verr
	}
	note := models.Note{
		Name:    fields.Name,
		Class:   fields.Class,
		Shift:   fields.Shift,
		Content: fields.Content,
		Color:   fields.Color,
		Room:    fields.Room,
	}
	if err := s.db.Create(&note).Error; err != nil {
		return models.Note{}, storageErr("create note", err)
	}
	return note, nil
}

// UpdateNote replaces every field except id and room. Applying the same
// payload twice leaves the row unchanged.
func (s *NoteStore) UpdateNote(id uint, fields NoteFields) (models.Note, error) {
	var existing models.Note
	if err := s.db.First(&existing, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Note{}, ErrNoteNotFound
		}
		return models.Note{}, storageErr("find note", err)
	}
	fields.normalize()
	if verr := fields.validate(false); verr != nil {
		return models.Note{}, verr
	}
	existing.Name = fields.Name
	existing.Class = fields.Class
	existing.Shift = fields.Shift
	existing.Content = fields.Content
	existing.Color = fields.Color
	if err := s.db.Save(&existing).Error; err != nil {
		return models.Note{}, storageErr("update note", err)
	}
	return existing, nil
}

// DeleteNote removes a note. Deleting an id that no longer exists is a
// no-op, so retries are safe.
func (s *NoteStore) DeleteNote(id uint) error {
	if err := s.db.Delete(&models.Note{}, "id = ?", id).Error; err != nil {
		return storageErr("delete note", err)
	}
	return nil
}
