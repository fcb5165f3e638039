package gateway

import (
	"context"
	"strings"

	pushdomain "howler-relay/internal/push/domain"
	"howler-relay/pkg/fcm"

	"firebase.google.com/go/v4/errorutils"
	"firebase.google.com/go/v4/messaging"
)

// dataKey is the FCM data field carrying the serialized payload; the client
// looks it up under this name.
const dataKey = "s"

// Gateway adapts the FCM client to the delivery pass: composed messages in,
// positionally aligned outcomes out.
type Gateway struct {
	client *fcm.Client
}

func NewGateway(client *fcm.Client) *Gateway {
	return &Gateway{client: client}
}

func (g *Gateway) SendAll(ctx context.Context, messages []pushdomain.ComposedMessage) ([]pushdomain.DeliveryOutcome, error) {
	batch := make([]fcm.Message, 0, len(messages))
	for _, m := range messages {
		batch = append(batch, fcm.Message{
			Token:       m.Token,
			Title:       m.Title,
			Body:        m.Body,
			Link:        m.Link,
			ImageURL:    m.ImageURL,
			CollapseKey: m.CollapseKey,
			Data:        map[string]string{dataKey: m.Data},
		})
	}

	results, err := g.client.SendEach(ctx, batch)
	if err != nil {
		return nil, err
	}

	outcomes := make([]pushdomain.DeliveryOutcome, 0, len(results))
	for _, r := range results {
		outcomes = append(outcomes, pushdomain.DeliveryOutcome{
			Success:   r.Success,
			MessageID: r.MessageID,
			ErrorCode: errorCode(r.Err),
			Err:       r.Err,
		})
	}
	return outcomes, nil
}

// errorCode normalizes a per-message firebase error to the code strings the
// classifier knows. Invalid-argument is checked before the stale-token
// predicates on purpose; see pushdomain.Classify.
func errorCode(err error) string {
	if err == nil {
		return ""
	}
	if errorutils.IsInvalidArgument(err) {
		return pushdomain.CodeInvalidArgument
	}
	if messaging.IsRegistrationTokenNotRegistered(err) {
		return pushdomain.CodeTokenNotRegistered
	}
	// older transport revisions surface these only as text
	text := err.Error()
	for _, code := range []string{
		pushdomain.CodeInvalidPayload,
		pushdomain.CodeInvalidRecipient,
		pushdomain.CodeInvalidArgument,
		pushdomain.CodeTokenNotRegistered,
	} {
		if strings.Contains(text, code) {
			return code
		}
	}
	return ""
}
