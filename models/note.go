package models

// Note is one sticky note on the board. Every note lives in exactly one
// room, referenced by name.
type Note struct {
	ID      uint   `gorm:"primaryKey"                    json:"id"`
	Name    string `gorm:"size:100;not null"             json:"name"`
	Class   string `gorm:"column:class;size:50;not null" json:"class"`
	Shift   string `gorm:"size:50;not null"              json:"shift"`
	Content string `gorm:"type:text;not null"            json:"content"`
	Color   string `gorm:"size:30;not null"              json:"color"`
	Room    string `gorm:"size:100;not null;index"       json:"room"`
}
