package delivery

import (
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/Carthago1/chat-backend/internal/infrastructure/realtime"
	chat "github.com/Carthago1/chat-backend/internal/pkg/chat/application/domain"
)

// NewMessageEvent names the event pushed to a recipient's live connection.
const NewMessageEvent = "newMessage"

// Presence is the registry surface the dispatcher needs.
type Presence interface {
	Lookup(userID int64) (realtime.Session, bool)
}

// envelope is the wire frame for a pushed message. Its message body is the
// same record read endpoints return, so clients treat live-pushed and
// history-fetched messages identically.
type envelope struct {
	Type    string       `json:"type"`
	Message chat.Message `json:"message"`
}

// Dispatcher pushes freshly persisted messages to connected recipients.
//
// Delivery is best-effort: recipients without a live session are skipped,
// push failures are logged and swallowed, and nothing here can affect the
// already committed message. Deliver must only be invoked after the store
// confirms the message is durable.
type Dispatcher struct {
	presence Presence
	log      zerolog.Logger
}

func NewDispatcher(presence Presence, log zerolog.Logger) *Dispatcher {
	return &Dispatcher{presence: presence, log: log}
}

// Deliver pushes msg to every recipient with a live session. Sessions write
// through a bounded buffer, so one stalled connection cannot block delivery
// to the others or the calling request.
func (d *Dispatcher) Deliver(msg chat.Message, recipientIDs []int64) {
	if len(recipientIDs) == 0 {
		return
	}

	payload, err := json.Marshal(envelope{Type: NewMessageEvent, Message: msg})
	if err != nil {
		d.log.Error().Err(err).Int64("message_id", msg.ID).Msg("encode push payload")
		return
	}

	for _, userID := range recipientIDs {
		session, ok := d.presence.Lookup(userID)
		if !ok {
			continue
		}
		if err := session.Send(payload); err != nil {
			d.log.Warn().Err(err).
				Int64("message_id", msg.ID).
				Int64("recipient_id", userID).
				Msg("live delivery failed")
		}
	}
}
