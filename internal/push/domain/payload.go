package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	TypeNotification = "notification"
	TypeChat         = "chat"
)

// Payload is the domain event behind a delivery pass. Exactly two variants
// exist; the type tag in the serialized form lets the receiving client pick
// the right decoder.
type Payload interface {
	Kind() string
	DisplayTitle() string
	DisplayBody() string
}

type NotificationPayload struct {
	ID              int64  `json:"id"`
	Title           string `json:"title"`
	Body            string `json:"body"`
	ImageURL        string `json:"imageUrl,omitempty"`
	LinkURL         string `json:"linkUrl"`
	RelativeLinkURL string `json:"relativeLinkUrl"`
}

func (NotificationPayload) Kind() string           { return TypeNotification }
func (p NotificationPayload) DisplayTitle() string { return p.Title }
func (p NotificationPayload) DisplayBody() string  { return p.Body }

func (p NotificationPayload) MarshalJSON() ([]byte, error) {
	type plain NotificationPayload
	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{TypeNotification, plain(p)})
}

type ChatMessagePayload struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Text      string    `json:"text"`
	EventID   int64     `json:"eventId"`
	UserID    int64     `json:"userId"`
	Title     string    `json:"title,omitempty"`
}

func (ChatMessagePayload) Kind() string           { return TypeChat }
func (p ChatMessagePayload) DisplayTitle() string { return p.Title }
func (p ChatMessagePayload) DisplayBody() string  { return p.Text }

func (p ChatMessagePayload) MarshalJSON() ([]byte, error) {
	type plain ChatMessagePayload
	return json.Marshal(struct {
		Type string `json:"type"`
		plain
	}{TypeChat, plain(p)})
}

// EncodePayload produces the self-describing string embedded in every push
// message. The display title/body are a lossy projection; this string is
// what the client reconstructs the event from.
func EncodePayload(p Payload) (string, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("encode %s payload: %w", p.Kind(), err)
	}
	return string(b), nil
}

// DecodePayload is the inverse of EncodePayload.
func DecodePayload(s string) (Payload, error) {
	var probe struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal([]byte(s), &probe); err != nil {
		return nil, fmt.Errorf("decode payload: %w", err)
	}

	switch probe.Type {
	case TypeNotification:
		var p NotificationPayload
		if err := json.Unmarshal([]byte(s), &p); err != nil {
			return nil, fmt.Errorf("decode notification payload: %w", err)
		}
		return p, nil
	case TypeChat:
		var p ChatMessagePayload
		if err := json.Unmarshal([]byte(s), &p); err != nil {
			return nil, fmt.Errorf("decode chat payload: %w", err)
		}
		return p, nil
	default:
		return nil, fmt.Errorf("decode payload: unknown type %q", probe.Type)
	}
}
