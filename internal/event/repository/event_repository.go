package repository

import (
	"context"
	"fmt"

	eventdomain "howler-relay/internal/event/domain"

	"gorm.io/gorm"
)

// EventRepository exposes the event-side reads the push pass needs, plus
// chat-message persistence.
type EventRepository interface {
	EventByID(ctx context.Context, id int64) (*eventdomain.Event, error)
	CreatorFollowerIDs(ctx context.Context, eventID int64) ([]int64, error)
	ParticipantIDs(ctx context.Context, eventID int64) ([]int64, error)
	SaveChatMessage(ctx context.Context, msg *eventdomain.EventChatMessage) (*eventdomain.EventChatMessage, error)
}

type eventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) EventByID(ctx context.Context, id int64) (*eventdomain.Event, error) {
	var event eventdomain.Event
	err := r.db.WithContext(ctx).Preload("Creator").First(&event, "id = ?", id).Error
	if err != nil {
		return nil, fmt.Errorf("event %d: %w", id, err)
	}
	return &event, nil
}

// CreatorFollowerIDs returns the followers of the event's creator.
func (r *eventRepository) CreatorFollowerIDs(ctx context.Context, eventID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&eventdomain.UserUserPivot{}).
		Select("UserUserPivot.followerId").
		Joins("JOIN Event ON Event.creatorId = UserUserPivot.userId").
		Where("Event.id = ?", eventID).
		Scan(&ids).Error
	if err != nil {
		return nil, fmt.Errorf("followers of event %d creator: %w", eventID, err)
	}
	return ids, nil
}

// ParticipantIDs returns every user on the event's chat participant list.
func (r *eventRepository) ParticipantIDs(ctx context.Context, eventID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).
		Model(&eventdomain.UserEventPivot{}).
		Select("userId").
		Where("eventId = ?", eventID).
		Scan(&ids).Error
	if err != nil {
		return nil, fmt.Errorf("participants of event %d: %w", eventID, err)
	}
	return ids, nil
}

// SaveChatMessage inserts the message and reloads it, so the caller sees the
// database-assigned id and createdAt.
func (r *eventRepository) SaveChatMessage(ctx context.Context, msg *eventdomain.EventChatMessage) (*eventdomain.EventChatMessage, error) {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return nil, fmt.Errorf("insert chat message: %w", err)
	}

	var saved eventdomain.EventChatMessage
	if err := r.db.WithContext(ctx).First(&saved, "id = ?", msg.ID).Error; err != nil {
		return nil, fmt.Errorf("reload chat message %d: %w", msg.ID, err)
	}
	return &saved, nil
}
