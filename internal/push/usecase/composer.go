package usecase

import (
	"fmt"

	pushdomain "howler-relay/internal/push/domain"
	"howler-relay/pkg/hashid"
)

// Composer turns a payload into per-token push messages and builds the deep
// links that point back into the web app.
type Composer struct {
	baseURL string
	codec   *hashid.Codec
}

func NewComposer(baseURL string, codec *hashid.Codec) *Composer {
	return &Composer{baseURL: baseURL, codec: codec}
}

// EventPath returns the in-app route for an event, without the domain.
func (c *Composer) EventPath(eventID int64) (string, error) {
	code, err := c.codec.Encode(eventID)
	if err != nil {
		return "", err
	}
	return "/event/" + code, nil
}

// EventLink returns the absolute shareable link for an event.
func (c *Composer) EventLink(eventID int64) (string, error) {
	path, err := c.EventPath(eventID)
	if err != nil {
		return "", err
	}
	return c.baseURL + path, nil
}

// Compose builds the message for one destination token. Called once per
// token in a pass; every message of a pass embeds the same serialized
// payload.
func (c *Composer) Compose(p pushdomain.Payload, token pushdomain.DeviceToken) (pushdomain.ComposedMessage, error) {
	data, err := pushdomain.EncodePayload(p)
	if err != nil {
		return pushdomain.ComposedMessage{}, err
	}

	msg := pushdomain.ComposedMessage{
		Token: token.ID,
		Title: p.DisplayTitle(),
		Body:  p.DisplayBody(),
		Data:  data,
	}

	switch v := p.(type) {
	case pushdomain.NotificationPayload:
		msg.Link = v.LinkURL
		msg.ImageURL = v.ImageURL
	case pushdomain.ChatMessagePayload:
		code, err := c.codec.Encode(v.EventID)
		if err != nil {
			return pushdomain.ComposedMessage{}, err
		}
		msg.Link = c.baseURL + "/event/" + code
		// pending chat notifications for the same event replace each other
		// on the device instead of stacking
		msg.CollapseKey = "chat-" + code
	default:
		return pushdomain.ComposedMessage{}, fmt.Errorf("compose: unhandled payload kind %q", p.Kind())
	}

	return msg, nil
}
