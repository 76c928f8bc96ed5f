package models

// Room is a row of the explicit room registry. In derived mode the table
// is never touched; the room list comes from the notes themselves.
type Room struct {
	ID   uint   `gorm:"primaryKey"                    json:"id,omitempty"`
	Name string `gorm:"size:100;uniqueIndex;not null" json:"name"`
}
