package fcm

import (
	"context"
	"fmt"
	"log"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

const webpushIcon = "/icons/favicon-48x48.png"

// Client wraps Firebase Cloud Messaging batch sends.
type Client struct {
	messagingClient *messaging.Client
}

// NewClient creates a new FCM client using the provided credentials file
func NewClient(credentialsFile string) (*Client, error) {
	ctx := context.Background()

	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}

	app, err := firebase.NewApp(ctx, nil, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	messagingClient, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get messaging client: %w", err)
	}

	log.Println("[FCM] Client initialized successfully")
	return &Client{
		messagingClient: messagingClient,
	}, nil
}

// Message is one token-addressed push message.
type Message struct {
	Token       string
	Title       string
	Body        string
	Link        string
	ImageURL    string
	CollapseKey string
	Data        map[string]string
}

// SendResult is the per-message outcome of a batch send, in input order.
type SendResult struct {
	Success   bool
	MessageID string
	Err       error
}

// SendEach sends the batch in one call and returns one result per message,
// positionally aligned with the input. A returned error means the batch
// call itself failed and nothing useful can be said per message.
func (c *Client) SendEach(ctx context.Context, messages []Message) ([]SendResult, error) {
	fcmMessages := make([]*messaging.Message, 0, len(messages))
	for _, m := range messages {
		fcmMessages = append(fcmMessages, buildMessage(m))
	}

	response, err := c.messagingClient.SendEach(ctx, fcmMessages)
	if err != nil {
		return nil, fmt.Errorf("failed to send FCM batch: %w", err)
	}

	log.Printf("[FCM] Batch sent: %d success, %d failures", response.SuccessCount, response.FailureCount)

	results := make([]SendResult, 0, len(response.Responses))
	for _, resp := range response.Responses {
		results = append(results, SendResult{
			Success:   resp.Success,
			MessageID: resp.MessageID,
			Err:       resp.Error,
		})
	}
	return results, nil
}

func buildMessage(m Message) *messaging.Message {
	message := &messaging.Message{
		Token: m.Token,
		Data:  m.Data,
	}

	if m.Title != "" || m.Body != "" {
		message.Notification = &messaging.Notification{
			Title:    m.Title,
			Body:     m.Body,
			ImageURL: m.ImageURL,
		}
		message.Webpush = &messaging.WebpushConfig{
			Notification: &messaging.WebpushNotification{
				Icon: webpushIcon,
			},
		}
		if m.Link != "" {
			message.Webpush.FCMOptions = &messaging.WebpushFCMOptions{
				Link: m.Link,
			}
		}
	}

	if m.CollapseKey != "" {
		message.Android = &messaging.AndroidConfig{
			CollapseKey: m.CollapseKey,
		}
		if message.Webpush == nil {
			message.Webpush = &messaging.WebpushConfig{}
		}
		if message.Webpush.Notification == nil {
			message.Webpush.Notification = &messaging.WebpushNotification{}
		}
		message.Webpush.Notification.Tag = m.CollapseKey
	}

	return message
}
