package usecase

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	eventdomain "howler-relay/internal/event/domain"
	pushdomain "howler-relay/internal/push/domain"
	"howler-relay/internal/push/repository"

	"github.com/google/uuid"
)

// BatchSender is the push-delivery transport: one call per pass, one
// outcome per message, in message order.
type BatchSender interface {
	SendAll(ctx context.Context, messages []pushdomain.ComposedMessage) ([]pushdomain.DeliveryOutcome, error)
}

// EventSource is the event-side datastore view the pass needs.
type EventSource interface {
	EventByID(ctx context.Context, id int64) (*eventdomain.Event, error)
	CreatorFollowerIDs(ctx context.Context, eventID int64) ([]int64, error)
	ParticipantIDs(ctx context.Context, eventID int64) ([]int64, error)
	SaveChatMessage(ctx context.Context, msg *eventdomain.EventChatMessage) (*eventdomain.EventChatMessage, error)
}

// Service runs delivery passes: resolve recipients, compose one message per
// device token, send the batch, classify the outcomes, then reconcile the
// token registry and record delivered notifications.
type Service struct {
	events   EventSource
	tokens   repository.TokenRepository
	records  repository.RecordRepository
	sender   BatchSender
	composer *Composer
}

func NewService(events EventSource, tokens repository.TokenRepository, records repository.RecordRepository, sender BatchSender, composer *Composer) *Service {
	return &Service{
		events:   events,
		tokens:   tokens,
		records:  records,
		sender:   sender,
		composer: composer,
	}
}

// NotifyEventCreated pushes a "new event" notification to the followers of
// the event's creator.
func (s *Service) NotifyEventCreated(ctx context.Context, eventID int64) error {
	event, err := s.events.EventByID(ctx, eventID)
	if err != nil {
		return err
	}

	creatorName := ""
	if event.Creator != nil {
		creatorName = event.Creator.Name
	}

	linkURL, err := s.composer.EventLink(event.ID)
	if err != nil {
		return err
	}
	relativeLinkURL, err := s.composer.EventPath(event.ID)
	if err != nil {
		return err
	}

	payload := pushdomain.NotificationPayload{
		ID:              event.ID,
		Title:           fmt.Sprintf("howl by %s", creatorName),
		Body:            fmt.Sprintf("what: %s", event.What),
		LinkURL:         linkURL,
		RelativeLinkURL: relativeLinkURL,
	}

	recipients, err := s.events.CreatorFollowerIDs(ctx, eventID)
	if err != nil {
		return err
	}

	return s.deliver(ctx, payload, recipients)
}

// NotifyChatMessage persists the chat message and pushes it to the event's
// chat participants. The author is excluded: they wrote it.
func (s *Service) NotifyChatMessage(ctx context.Context, eventID, authorID int64, text string) error {
	event, err := s.events.EventByID(ctx, eventID)
	if err != nil {
		return err
	}

	saved, err := s.events.SaveChatMessage(ctx, &eventdomain.EventChatMessage{
		EventID: eventID,
		UserID:  authorID,
		Text:    text,
	})
	if err != nil {
		return err
	}

	participants, err := s.events.ParticipantIDs(ctx, eventID)
	if err != nil {
		return err
	}
	recipients := excludeUser(participants, authorID)

	payload := pushdomain.ChatMessagePayload{
		ID:        saved.ID,
		CreatedAt: saved.CreatedAt,
		Text:      saved.Text,
		EventID:   eventID,
		UserID:    authorID,
		Title:     event.What,
	}

	return s.deliver(ctx, payload, recipients)
}

// deliver is one delivery pass. Empty recipient or token sets degrade to
// no-ops. A transport-level send failure aborts the pass before any side
// effect; after a successful send, token reconciliation and delivery
// recording run independently off the same outcome slice.
func (s *Service) deliver(ctx context.Context, payload pushdomain.Payload, userIDs []int64) error {
	if len(userIDs) == 0 {
		log.Printf("[PUSH] %s pass: no recipients, nothing to do", payload.Kind())
		return nil
	}

	tokens, err := s.tokens.TokensForUsers(ctx, userIDs)
	if err != nil {
		return err
	}
	if len(tokens) == 0 {
		log.Printf("[PUSH] %s pass: %d recipients but no registered tokens", payload.Kind(), len(userIDs))
		return nil
	}

	messages := make([]pushdomain.ComposedMessage, 0, len(tokens))
	for _, token := range tokens {
		msg, err := s.composer.Compose(payload, token)
		if err != nil {
			return err
		}
		messages = append(messages, msg)
	}

	outcomes, err := s.sender.SendAll(ctx, messages)
	if err != nil {
		return fmt.Errorf("batch send: %w", err)
	}
	if len(outcomes) != len(messages) {
		return fmt.Errorf("batch send returned %d outcomes for %d messages", len(outcomes), len(messages))
	}

	s.logFailures(outcomes, tokens)
	s.reconcileTokens(ctx, tokens, outcomes)
	return s.recordDeliveries(ctx, tokens, messages, outcomes)
}

func (s *Service) logFailures(outcomes []pushdomain.DeliveryOutcome, tokens []pushdomain.DeviceToken) {
	for i, o := range outcomes {
		switch pushdomain.Classify(o) {
		case pushdomain.ClassPayloadDefect:
			log.Printf("[FCM] send rejected, payload defect on our side (code=%s token=%s): %v", o.ErrorCode, tokens[i].ID, o.Err)
		case pushdomain.ClassIgnorable:
			if o.ErrorCode != "" {
				log.Printf("[FCM] unhandled response code %q (token=%s): %v", o.ErrorCode, tokens[i].ID, o.Err)
			} else if o.Err != nil {
				log.Printf("[FCM] send failed without a code (token=%s): %v", tokens[i].ID, o.Err)
			}
		}
	}
}

// reconcileTokens deletes every token whose outcome marks it stale.
// Deletions are independent; one failing is logged and does not stop the
// rest.
func (s *Service) reconcileTokens(ctx context.Context, tokens []pushdomain.DeviceToken, outcomes []pushdomain.DeliveryOutcome) {
	var wg sync.WaitGroup
	for i, o := range outcomes {
		if pushdomain.Classify(o) != pushdomain.ClassStaleToken {
			continue
		}
		wg.Add(1)
		go func(id, code string) {
			defer wg.Done()
			if err := s.tokens.DeleteToken(ctx, id); err != nil {
				log.Printf("[FCM] failed to delete stale token %s: %v", id, err)
				return
			}
			log.Printf("[FCM] deleted stale token %s (code=%s)", id, code)
		}(tokens[i].ID, o.ErrorCode)
	}
	wg.Wait()
}

// recordDeliveries persists one record per recipient user among the
// successful outcomes, first success wins. An empty surviving set issues no
// insert at all.
func (s *Service) recordDeliveries(ctx context.Context, tokens []pushdomain.DeviceToken, messages []pushdomain.ComposedMessage, outcomes []pushdomain.DeliveryOutcome) error {
	seen := make(map[int64]bool)
	var records []pushdomain.NotificationRecord
	for i, o := range outcomes {
		if !o.Success {
			continue
		}
		userID := tokens[i].UserID
		if seen[userID] {
			continue
		}
		seen[userID] = true
		records = append(records, pushdomain.NotificationRecord{
			ID:        uuid.New().String(),
			UserID:    userID,
			Data:      messages[i].Data,
			CreatedAt: time.Now(),
		})
	}

	if len(records) == 0 {
		return nil
	}

	inserted, err := s.records.InsertRecords(ctx, records)
	if err != nil {
		return err
	}
	log.Printf("[PUSH] recorded %d delivered notifications", inserted)
	return nil
}

func excludeUser(userIDs []int64, userID int64) []int64 {
	filtered := make([]int64, 0, len(userIDs))
	for _, id := range userIDs {
		if id != userID {
			filtered = append(filtered, id)
		}
	}
	return filtered
}
