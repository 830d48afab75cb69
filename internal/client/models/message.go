package models

import (
	"github.com/avdenisov/groupplan/internal/optional"
	"github.com/avdenisov/groupplan/internal/timex"
)

// MaxMessageLength is the server-imposed cap on chat message content.
const MaxMessageLength = 200

// Message is one chat line in an event's conversation.
type Message struct {
	ID             int             `json:"id"`
	Content        string          `json:"content"`
	SentAt         timex.Timestamp `json:"sent_at"`
	EventID        int             `json:"event_id"`
	UserAndGroupID int             `json:"user_and_group_id"`

	Event        optional.Optional[*Event]        `json:"event"`
	UserAndGroup optional.Optional[*UserAndGroup] `json:"user_and_group"`
}
