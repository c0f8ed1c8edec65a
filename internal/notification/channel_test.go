package notification

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.uber.org/zap"
)

func TestSelectorKnowsAllThreeChannels(t *testing.T) {
	selector := NewSelector(zap.NewNop())

	for _, typ := range []Type{TypeEmail, TypeSMS, TypePush} {
		strategy, err := selector.Select(typ)
		require.NoError(t, err)
		require.NotNil(t, strategy)

		result := strategy.Send("sender", []Recipient{{}}, "hello", Extra{})
		assert.Equal(t, typ, result.Type)
		assert.Equal(t, StatusSent, result.Status)
	}
}

func TestSelectorRejectsUnknownType(t *testing.T) {
	selector := NewSelector(zap.NewNop())

	_, err := selector.Select(Type("carrier-pigeon"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedType))
}

func TestChannelsEchoOnlyTheirExtraField(t *testing.T) {
	selector := NewSelector(zap.NewNop())
	extra := Extra{Subject: "Greetings", Title: "Ping"}
	recipients := []Recipient{{Email: "a@b.com"}}

	email, _ := selector.Select(TypeEmail)
	result := email.Send("sender@example.com", recipients, "body", extra)
	assert.Equal(t, "Greetings", result.Subject)
	assert.Empty(t, result.Title)
	assert.Equal(t, "sender@example.com", result.Sender)
	assert.Equal(t, recipients, result.Recipients)
	assert.Equal(t, "body", result.Content)

	sms, _ := selector.Select(TypeSMS)
	result = sms.Send("+15550001", recipients, "body", extra)
	assert.Empty(t, result.Subject)
	assert.Empty(t, result.Title)

	push, _ := selector.Select(TypePush)
	result = push.Send("device-abc", recipients, "body", extra)
	assert.Equal(t, "Ping", result.Title)
	assert.Empty(t, result.Subject)
}
