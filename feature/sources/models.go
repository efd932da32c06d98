package sources

import "time"

// TrustedSource is a provisioned upload client. Only the sha512 hash of its
// API key is stored.
type TrustedSource struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	APIKey      string    `gorm:"column:api_key;size:128;uniqueIndex;not null" json:"-"`
	SourceName  string    `gorm:"column:source_name;size:64;not null" json:"sourceName"`
	UploadCount int64     `gorm:"column:upload_count;not null" json:"uploadCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (TrustedSource) TableName() string { return "trusted_sources" }

// BlacklistEntry bans an uploader by the sha256 hash of its uploader ID.
type BlacklistEntry struct {
	ID         uint      `gorm:"primaryKey"`
	UploaderID string    `gorm:"column:uploader_id;size:64;uniqueIndex;not null"`
	CreatedAt  time.Time
}

func (BlacklistEntry) TableName() string { return "blacklist" }

// Models lists the tables owned by this package.
func Models() []any {
	return []any{&TrustedSource{}, &BlacklistEntry{}}
}
