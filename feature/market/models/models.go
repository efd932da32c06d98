package models

import "gorm.io/datatypes"

// Materia is a melded materia on a listed item.
type Materia struct {
	SlotID    int `json:"slotID"`
	MateriaID int `json:"materiaID"`
}

// Listing is one stored market board offer. Identity fields hold sha256
// hashes, the raw IDs are never persisted.
type Listing struct {
	ListingIDHash  string    `json:"listingIdHash,omitempty"`
	CreatorIDHash  string    `json:"creatorIdHash,omitempty"`
	CreatorName    string    `json:"creatorName,omitempty"`
	HQ             bool      `json:"hq"`
	Materia        []Materia `json:"materia"`
	OnMannequin    bool      `json:"onMannequin"`
	PricePerUnit   int64     `json:"pricePerUnit"`
	Quantity       int64     `json:"quantity"`
	Total          int64     `json:"total"`
	RetainerCityID int       `json:"retainerCity"`
	RetainerIDHash string    `json:"retainerIdHash,omitempty"`
	RetainerName   string    `json:"retainerName,omitempty"`
	SellerIDHash   string    `json:"sellerIdHash,omitempty"`
	StainID        int       `json:"stainID"`
	LastReviewTime int64     `json:"lastReviewTime"`
	WorldID        int       `json:"worldID"`
	WorldName      string    `json:"worldName"`
	SourceName     string    `json:"sourceName,omitempty"`
	UploaderIDHash string    `json:"uploaderIdHash,omitempty"`
}

// HistoryEntry is one completed sale.
type HistoryEntry struct {
	BuyerName      string `json:"buyerName,omitempty"`
	HQ             bool   `json:"hq"`
	OnMannequin    bool   `json:"onMannequin"`
	PricePerUnit   int64  `json:"pricePerUnit"`
	Quantity       int64  `json:"quantity"`
	Total          int64  `json:"total"`
	SellerIDHash   string `json:"sellerIdHash,omitempty"`
	Timestamp      int64  `json:"timestamp"`
	WorldID        int    `json:"worldID"`
	WorldName      string `json:"worldName"`
	SourceName     string `json:"sourceName,omitempty"`
	UploaderIDHash string `json:"uploaderIdHash,omitempty"`
}

// WorldUpload is the last upload time of one world contributing to a record.
type WorldUpload struct {
	WorldID        int   `json:"worldID"`
	LastUploadTime int64 `json:"lastUploadTime"`
}

// MarketRecord holds the current listings of an item in one datacenter, or in
// one world when that world belongs to no datacenter (DCName empty).
type MarketRecord struct {
	ID             uint                         `gorm:"primaryKey"`
	ItemID         int                          `gorm:"column:item_id;not null;uniqueIndex:idx_market_key,priority:1"`
	DCName         string                       `gorm:"column:dc_name;size:32;not null;uniqueIndex:idx_market_key,priority:2"`
	WorldID        int                          `gorm:"column:world_id;not null;uniqueIndex:idx_market_key,priority:3"`
	Listings       datatypes.JSONSlice[Listing]     `gorm:"column:listings"`
	WorldUploads   datatypes.JSONSlice[WorldUpload] `gorm:"column:world_uploads"`
	LastUploadTime int64                            `gorm:"column:last_upload_time;not null"`
}

func (MarketRecord) TableName() string { return "market_records" }

// HistoryRecord holds the accumulated sales of an item, keyed like MarketRecord.
type HistoryRecord struct {
	ID             uint                              `gorm:"primaryKey"`
	ItemID         int                               `gorm:"column:item_id;not null;uniqueIndex:idx_history_key,priority:1"`
	DCName         string                            `gorm:"column:dc_name;size:32;not null;uniqueIndex:idx_history_key,priority:2"`
	WorldID        int                               `gorm:"column:world_id;not null;uniqueIndex:idx_history_key,priority:3"`
	Entries        datatypes.JSONSlice[HistoryEntry] `gorm:"column:entries"`
	WorldUploads   datatypes.JSONSlice[WorldUpload]  `gorm:"column:world_uploads"`
	LastUploadTime int64                             `gorm:"column:last_upload_time;not null"`
}

// UploadTimeOf returns when worldID last uploaded into uploads, 0 when never.
func UploadTimeOf(uploads []WorldUpload, worldID int) int64 {
	for _, u := range uploads {
		if u.WorldID == worldID {
			return u.LastUploadTime
		}
	}
	return 0
}

// StampWorld records an upload of worldID at ms, keeping the later time when
// the world already uploaded.
func StampWorld(uploads []WorldUpload, worldID int, ms int64) []WorldUpload {
	out := make([]WorldUpload, 0, len(uploads)+1)
	found := false
	for _, u := range uploads {
		if u.WorldID == worldID {
			u.LastUploadTime = max(u.LastUploadTime, ms)
			found = true
		}
		out = append(out, u)
	}
	if !found {
		out = append(out, WorldUpload{WorldID: worldID, LastUploadTime: ms})
	}
	return out
}

func (HistoryRecord) TableName() string { return "history_records" }
