package stats

// RecentUpdate records when an item last received data on a world.
type RecentUpdate struct {
	ID             uint   `gorm:"primaryKey"`
	ItemID         int    `gorm:"column:item_id;not null;uniqueIndex:idx_recent_item_world,priority:1"`
	WorldID        int    `gorm:"column:world_id;not null;uniqueIndex:idx_recent_item_world,priority:2"`
	WorldName      string `gorm:"column:world_name;size:32;not null"`
	DCName         string `gorm:"column:dc_name;size:32;not null;index"`
	LastUploadTime int64  `gorm:"column:last_upload_time;not null;index"`
}

func (RecentUpdate) TableName() string { return "recent_updates" }

// DailyUploadCount is the number of accepted uploads on one UTC day.
type DailyUploadCount struct {
	Date        string `gorm:"column:date;size:10;primaryKey"`
	UploadCount int64  `gorm:"column:upload_count;not null"`
}

func (DailyUploadCount) TableName() string { return "daily_upload_counts" }

// WorldItemPair is one entry of a recency ranking.
type WorldItemPair struct {
	ItemID         int    `json:"itemID"`
	WorldID        int    `json:"worldID"`
	WorldName      string `json:"worldName"`
	DCName         string `json:"dcName,omitempty"`
	LastUploadTime int64  `json:"lastUploadTime"`
}
