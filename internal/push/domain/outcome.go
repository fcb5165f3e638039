package domain

// Error codes the delivery transport reports per message, normalized to the
// FCM code strings.
const (
	CodeInvalidArgument    = "messaging/invalid-argument"
	CodeInvalidPayload     = "messaging/invalid-payload"
	CodeTokenNotRegistered = "messaging/registration-token-not-registered"
	CodeInvalidRecipient   = "messaging/invalid-recipient"
)

// DeliveryOutcome is the per-message result of a batch send, positionally
// aligned with the messages that were sent.
type DeliveryOutcome struct {
	Success   bool
	MessageID string
	ErrorCode string
	Err       error
}

type OutcomeClass int

const (
	// ClassDelivered means the message was accepted; no reconciliation.
	ClassDelivered OutcomeClass = iota
	// ClassIgnorable covers transient failures and codes we do not
	// recognize; log only.
	ClassIgnorable
	// ClassPayloadDefect means the request we built was rejected. The token
	// is fine, the bug is ours.
	ClassPayloadDefect
	// ClassStaleToken means the token is permanently undeliverable and must
	// be deleted.
	ClassStaleToken
)

// Classify partitions a delivery outcome. The check order matters: some
// transport versions overlap the payload-defect and stale-token codes, and
// checking for our own malformed request first keeps a live token from
// being deleted over it.
func Classify(o DeliveryOutcome) OutcomeClass {
	if o.Success {
		return ClassDelivered
	}
	if o.ErrorCode == "" {
		return ClassIgnorable
	}
	switch o.ErrorCode {
	case CodeInvalidArgument, CodeInvalidPayload:
		return ClassPayloadDefect
	}
	switch o.ErrorCode {
	case CodeTokenNotRegistered, CodeInvalidRecipient:
		return ClassStaleToken
	}
	return ClassIgnorable
}
