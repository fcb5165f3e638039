package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name    string
		outcome DeliveryOutcome
		want    OutcomeClass
	}{
		{
			// success wins over everything else attached to the outcome
			name:    "success ignores error fields",
			outcome: DeliveryOutcome{Success: true, ErrorCode: CodeTokenNotRegistered},
			want:    ClassDelivered,
		},
		{
			name:    "failure without code is ignorable",
			outcome: DeliveryOutcome{Err: errors.New("timeout")},
			want:    ClassIgnorable,
		},
		{
			name:    "invalid argument is our bug",
			outcome: DeliveryOutcome{ErrorCode: CodeInvalidArgument},
			want:    ClassPayloadDefect,
		},
		{
			name:    "invalid payload is our bug",
			outcome: DeliveryOutcome{ErrorCode: CodeInvalidPayload},
			want:    ClassPayloadDefect,
		},
		{
			name:    "unregistered token is stale",
			outcome: DeliveryOutcome{ErrorCode: CodeTokenNotRegistered},
			want:    ClassStaleToken,
		},
		{
			name:    "invalid recipient is stale",
			outcome: DeliveryOutcome{ErrorCode: CodeInvalidRecipient},
			want:    ClassStaleToken,
		},
		{
			name:    "unknown code is ignorable",
			outcome: DeliveryOutcome{ErrorCode: "messaging/server-unavailable"},
			want:    ClassIgnorable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Classify(tc.outcome))
		})
	}
}

// Payload defects and stale tokens must never swap, whatever else the batch
// contains: a malformed request must not cost a live token.
func TestClassify_PrecedenceIsStable(t *testing.T) {
	batch := []DeliveryOutcome{
		{ErrorCode: CodeInvalidPayload},
		{ErrorCode: CodeTokenNotRegistered},
		{ErrorCode: CodeInvalidPayload},
	}

	require.Equal(t, ClassPayloadDefect, Classify(batch[0]))
	require.Equal(t, ClassStaleToken, Classify(batch[1]))
	require.Equal(t, ClassPayloadDefect, Classify(batch[2]))
}
