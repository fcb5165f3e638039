package domain

import "time"

// DeviceToken is a registered push destination. The token string itself is
// the primary key, exactly as the upstream app stores it.
type DeviceToken struct {
	ID     string `gorm:"primaryKey;column:id"`
	UserID int64  `gorm:"column:userId;index"`
}

func (DeviceToken) TableName() string { return "FcmToken" }

// ComposedMessage is one transport-agnostic push message bound to a device
// token. It exists only within a single delivery pass.
type ComposedMessage struct {
	Token       string
	Title       string
	Body        string
	Link        string
	ImageURL    string
	CollapseKey string
	// Data is the EncodePayload output for the pass's event.
	Data string
}

// NotificationRecord is the persisted trace of a delivered notification,
// at most one per recipient user per pass.
type NotificationRecord struct {
	ID        string    `gorm:"primaryKey;size:36;column:id"`
	UserID    int64     `gorm:"column:userId;index"`
	Data      string    `gorm:"column:data;type:text"`
	CreatedAt time.Time `gorm:"column:createdAt"`
}

func (NotificationRecord) TableName() string { return "NotificationRecord" }
