package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Galeria-Pequenas-Estrelas/GaleriaPeqEstrelas/models"
)

// Mode selects the room-modeling strategy. It is fixed at startup; the two
// modes expose the same API but diverge on delete/create semantics, so they
// must never coexist in one deployment.
type Mode string

const (
	// ModeRegistry keeps an explicit rooms table owning its notes.
	ModeRegistry Mode = "registry"
	// ModeDerived treats the distinct room values on notes as the room
	// list; rooms exist exactly as long as a note references them.
	ModeDerived Mode = "derived"
)

type RoomStore struct {
	db   *gorm.DB
	mode Mode
}

func NewRoomStore(db *gorm.DB, mode Mode) *RoomStore {
	if mode != ModeDerived {
		mode = ModeRegistry
	}
	return &RoomStore{db: db, mode: mode}
}

func (s *RoomStore) Mode() Mode { return s.mode }

// ListRooms returns the deduplicated room names, whichever mode derives them.
func (s *RoomStore) ListRooms() ([]string, error) {
	names := []string{}
	var err error
	if s.mode == ModeRegistry {
		err = s.db.Model(&models.Room{}).Order("id").Pluck("name", &names).Error
	} else {
		err = s.db.Model(&models.Note{}).Distinct().Order("room").Pluck("room", &names).Error
	}
	if err != nil {
		return nil, storageErr("list rooms", err)
	}
	return names, nil
}

// CreateRoom registers a room. In derived mode there is nothing to persist:
// the room becomes visible when its first note is written. A placeholder
// note would fail note validation and pollute every listing, so none is
// inserted.
func (s *RoomStore) CreateRoom(name string) (models.Room, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Room{}, &ValidationError{Fields: map[string]string{"room": "room name is required"}}
	}
	if s.mode == ModeDerived {
		return models.Room{Name: name}, nil
	}
	room := models.Room{Name: name}
	if err := s.db.Create(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Room{}, ErrRoomExists
		}
		return models.Room{}, storageErr("create room", err)
	}
	return room, nil
}

// DeleteRoom removes a room and every note in it. In registry mode both
// deletions run in one transaction so a concurrent reader never observes a
// half-deleted room; unknown names fail with ErrRoomNotFound. In derived
// mode deleting the notes *is* deleting the room, and unknown names are a
// no-op.
func (s *RoomStore) DeleteRoom(name string) error {
	if s.mode == ModeDerived {
		if err := s.db.Where("room = ?", name).Delete(&models.Note{}).Error; err != nil {
			return storageErr("delete room notes", err)
		}
		return nil
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, "name = ?", name).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return storageErr("find room", err)
		}
		if err := tx.Where("room = ?", name).Delete(&models.Note{}).Error; err != nil {
			return storageErr("delete room notes", err)
		}
		if err := tx.Delete(&room).Error; err != nil {
			return storageErr("delete room", err)
		}
		return nil
	})
	return err
}
