package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPayloadRoundTrip(t *testing.T) {
	t.Run("chat message survives with its timestamp", func(t *testing.T) {
		original := ChatMessagePayload{
			ID:        42,
			CreatedAt: time.Date(2024, 3, 9, 18, 4, 5, 123456789, time.UTC),
			Text:      "anyone still coming?",
			EventID:   7,
			UserID:    3,
			Title:     "friday howl",
		}

		encoded, err := EncodePayload(original)
		require.NoError(t, err)

		decoded, err := DecodePayload(encoded)
		require.NoError(t, err)
		require.Equal(t, original, decoded)
	})

	t.Run("notification survives", func(t *testing.T) {
		original := NotificationPayload{
			ID:              9,
			Title:           "howl by sam",
			Body:            "what: bouldering",
			LinkURL:         "https://howler.andyfx.net/event/x7aQzR",
			RelativeLinkURL: "/event/x7aQzR",
		}

		encoded, err := EncodePayload(original)
		require.NoError(t, err)

		decoded, err := DecodePayload(encoded)
		require.NoError(t, err)
		require.Equal(t, original, decoded)
	})

	t.Run("encoded form carries the type tag", func(t *testing.T) {
		encoded, err := EncodePayload(ChatMessagePayload{ID: 1, EventID: 2})
		require.NoError(t, err)

		var tagged map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(encoded), &tagged))
		require.Equal(t, TypeChat, tagged["type"])
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		_, err := DecodePayload(`{"type":"telemetry"}`)
		require.Error(t, err)
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		_, err := DecodePayload("not json")
		require.Error(t, err)
	})
}
