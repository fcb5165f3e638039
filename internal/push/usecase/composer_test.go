package usecase

import (
	"testing"
	"time"

	pushdomain "howler-relay/internal/push/domain"

	"github.com/stretchr/testify/require"
)

func TestComposer(t *testing.T) {
	composer := newTestComposer(t)
	token := pushdomain.DeviceToken{ID: "t1", UserID: 1}

	t.Run("notification keeps its own links and image", func(t *testing.T) {
		payload := pushdomain.NotificationPayload{
			ID:              9,
			Title:           "howl by sam",
			Body:            "what: bouldering",
			ImageURL:        "https://storage.googleapis.com/howler-event-images/9.jpg",
			LinkURL:         "https://howler.andyfx.net/event/abc123",
			RelativeLinkURL: "/event/abc123",
		}

		msg, err := composer.Compose(payload, token)
		require.NoError(t, err)
		require.Equal(t, "t1", msg.Token)
		require.Equal(t, payload.Title, msg.Title)
		require.Equal(t, payload.Body, msg.Body)
		require.Equal(t, payload.LinkURL, msg.Link)
		require.Equal(t, payload.ImageURL, msg.ImageURL)
		require.Empty(t, msg.CollapseKey)
	})

	t.Run("chat derives link and collapse key from the event id", func(t *testing.T) {
		payload := pushdomain.ChatMessagePayload{
			ID:        42,
			CreatedAt: time.Date(2024, 3, 9, 18, 0, 0, 0, time.UTC),
			Text:      "hello",
			EventID:   7,
			UserID:    3,
			Title:     "friday howl",
		}

		msg, err := composer.Compose(payload, token)
		require.NoError(t, err)
		require.Equal(t, "friday howl", msg.Title)
		require.Equal(t, "hello", msg.Body)

		// same event, same grouping key; the device collapses pending
		// chat notifications for one room
		other, err := composer.Compose(pushdomain.ChatMessagePayload{ID: 43, EventID: 7}, token)
		require.NoError(t, err)
		require.Equal(t, msg.CollapseKey, other.CollapseKey)
		require.Contains(t, msg.Link, "https://howler.andyfx.net/event/")

		elsewhere, err := composer.Compose(pushdomain.ChatMessagePayload{ID: 44, EventID: 8}, token)
		require.NoError(t, err)
		require.NotEqual(t, msg.CollapseKey, elsewhere.CollapseKey)
	})

	t.Run("embedded payload survives the trip", func(t *testing.T) {
		payload := pushdomain.ChatMessagePayload{
			ID:        42,
			CreatedAt: time.Date(2024, 3, 9, 18, 4, 5, 0, time.UTC),
			Text:      "hello",
			EventID:   7,
			UserID:    3,
		}

		msg, err := composer.Compose(payload, token)
		require.NoError(t, err)

		decoded, err := pushdomain.DecodePayload(msg.Data)
		require.NoError(t, err)
		require.Equal(t, payload, decoded)
	})
}
