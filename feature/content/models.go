package content

import "time"

const (
	TypePlayer   = "player"
	TypeRetainer = "retainer"
)

// Record maps a hashed content ID to its public display name.
type Record struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	ContentID     string    `gorm:"column:content_id;size:64;not null;index" json:"contentID"`
	ContentType   string    `gorm:"column:content_type;size:16;not null" json:"contentType"`
	CharacterName string    `gorm:"column:character_name;size:64" json:"characterName"`
	CreatedAt     time.Time `json:"-"`
}

func (Record) TableName() string { return "content" }

// Payload is the redacted display data stored with a content ID.
type Payload struct {
	CharacterName string
}
