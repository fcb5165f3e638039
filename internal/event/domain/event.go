package domain

import "time"

// Table and column names follow the upstream app's schema. This service
// reads the tables, it does not own them.

type User struct {
	ID   int64  `json:"id" gorm:"primaryKey;column:id"`
	Name string `json:"name" gorm:"column:name"`
}

func (User) TableName() string { return "User" }

type Event struct {
	ID        int64     `json:"id" gorm:"primaryKey;column:id"`
	What      string    `json:"what" gorm:"column:what"`
	CreatorID int64     `json:"creatorId" gorm:"column:creatorId"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:createdAt"`

	Creator *User `json:"creator,omitempty" gorm:"foreignKey:CreatorID;references:ID"`
}

func (Event) TableName() string { return "Event" }

type EventChatMessage struct {
	ID        int64     `json:"id" gorm:"primaryKey;column:id"`
	EventID   int64     `json:"eventId" gorm:"column:eventId;index"`
	UserID    int64     `json:"userId" gorm:"column:userId"`
	Text      string    `json:"text" gorm:"column:text"`
	CreatedAt time.Time `json:"createdAt" gorm:"column:createdAt"`
}

func (EventChatMessage) TableName() string { return "Eventchatmessage" }

// UserEventPivot links chat participants to an event.
type UserEventPivot struct {
	UserID  int64 `gorm:"column:userId;primaryKey"`
	EventID int64 `gorm:"column:eventId;primaryKey"`
}

func (UserEventPivot) TableName() string { return "UserEventPivot" }

// UserUserPivot links a user to their followers.
type UserUserPivot struct {
	UserID     int64 `gorm:"column:userId;primaryKey"`
	FollowerID int64 `gorm:"column:followerId;primaryKey"`
}

func (UserUserPivot) TableName() string { return "UserUserPivot" }
