package notification

import (
	"fmt"

	"go.uber.org/zap"
)

// Extra carries the type-specific content fields. Each strategy echoes only
// the field belonging to its channel.
type Extra struct {
	Subject string
	Title   string
}

// ChannelStrategy is the common send contract of the three channels. The
// sender identity and recipients arrive already normalized for the channel.
type ChannelStrategy interface {
	Send(sender string, recipients []Recipient, content string, extra Extra) DispatchResult
}

type emailChannel struct {
	log *zap.Logger
}

func (ch *emailChannel) Send(sender string, recipients []Recipient, content string, extra Extra) DispatchResult {
	ch.log.Info("Sending Email Notification...", zap.String("sender", sender), zap.Int("recipients", len(recipients)))
	return DispatchResult{
		Type:       TypeEmail,
		Sender:     sender,
		Recipients: recipients,
		Content:    content,
		Subject:    extra.Subject,
		Status:     StatusSent,
	}
}

type smsChannel struct {
	log *zap.Logger
}

func (ch *smsChannel) Send(sender string, recipients []Recipient, content string, extra Extra) DispatchResult {
	ch.log.Info("Sending SMS Notification...", zap.String("sender", sender), zap.Int("recipients", len(recipients)))
	return DispatchResult{
		Type:       TypeSMS,
		Sender:     sender,
		Recipients: recipients,
		Content:    content,
		Status:     StatusSent,
	}
}

type pushChannel struct {
	log *zap.Logger
}

func (ch *pushChannel) Send(sender string, recipients []Recipient, content string, extra Extra) DispatchResult {
	ch.log.Info("Sending Push Notification...", zap.String("sender", sender), zap.Int("recipients", len(recipients)))
	return DispatchResult{
		Type:       TypePush,
		Sender:     sender,
		Recipients: recipients,
		Content:    content,
		Title:      extra.Title,
		Status:     StatusSent,
	}
}

// Selector maps a type tag to its channel strategy.
type Selector struct {
	channels map[Type]ChannelStrategy
}

func NewSelector(log *zap.Logger) *Selector {
	return &Selector{channels: map[Type]ChannelStrategy{
		TypeEmail: &emailChannel{log: log},
		TypeSMS:   &smsChannel{log: log},
		TypePush:  &pushChannel{log: log},
	}}
}

func (s *Selector) Select(typ Type) (ChannelStrategy, error) {
	ch, ok := s.channels[typ]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedType, typ)
	}
	return ch, nil
}
