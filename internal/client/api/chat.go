package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/avdenisov/groupplan/internal/client/models"
	"github.com/avdenisov/groupplan/internal/logging"
)

// chatPageSize is the fixed history page length. A page that comes back
// shorter is the end-of-history signal.
const chatPageSize = 20

// ChatState is where a chat session stands in its lifecycle.
type ChatState int

const (
	ChatClosed ChatState = iota
	ChatConnecting
	ChatLive
)

func (s ChatState) String() string {
	switch s {
	case ChatClosed:
		return "closed"
	case ChatConnecting:
		return "connecting"
	case ChatLive:
		return "live"
	default:
		return "unknown"
	}
}

var (
	// ErrChatClosed is returned by Send after the session was torn down.
	ErrChatClosed = errors.New("chat session closed")
	// ErrMessageTooLong is returned by Send for content over the cap.
	ErrMessageTooLong = fmt.Errorf("message exceeds %d characters", models.MaxMessageLength)
	// ErrEmptyMessage is returned by Send for blank content.
	ErrEmptyMessage = errors.New("empty message")
)

// ChatSession is one open chat view over an event: a live websocket merged
// with backward-paginated history into a single newest-first list.
//
// The session exclusively owns its socket. Live messages are prepended;
// history pages are appended at the old end. At most one history fetch is
// in flight at a time, and once a short page arrives no further pagination
// runs for the life of the session.
type ChatSession struct {
	client  *Client
	eventID int
	log     logging.Logger

	conn     *websocket.Conn
	incoming chan *models.Message

	mu       sync.Mutex
	state    ChatState
	messages []*models.Message // newest first
	chatEnd  bool
	fetching bool
}

// OpenChat connects to the event's chat. The socket is dialed with the
// client's session cookies; the first history page is requested before the
// session goes live.
func (c *Client) OpenChat(ctx context.Context, event *models.Event) (*ChatSession, error) {
	dialer := websocket.Dialer{Jar: c.http.Jar}
	wsURL := c.wsEndpoint(fmt.Sprintf("/api/events/chat/%d", event.ID))

	conn, resp, err := dialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized && c.onUnauthenticated != nil {
			c.onUnauthenticated()
		}
		return nil, fmt.Errorf("open chat: %w", err)
	}

	s := &ChatSession{
		client:   c,
		eventID:  event.ID,
		log:      c.log.With("component", "chat", "event_id", event.ID),
		conn:     conn,
		incoming: make(chan *models.Message, 32),
		state:    ChatConnecting,
	}

	go s.readLoop()

	// The initial page request runs while the session is still CONNECTING;
	// its errors are logged, not fatal; the live stream works regardless.
	if _, err := s.loadPage(ctx); err != nil {
		s.log.Error(ctx, "initial history fetch failed", "error", err)
	}

	s.mu.Lock()
	if s.state == ChatConnecting {
		s.state = ChatLive
	}
	s.mu.Unlock()

	return s, nil
}

// State returns the session's lifecycle state.
func (s *ChatSession) State() ChatState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Incoming delivers live-streamed messages in arrival order. The channel is
// closed when the socket goes away.
func (s *ChatSession) Incoming() <-chan *models.Message {
	return s.incoming
}

// Snapshot copies the current newest-first message list.
func (s *ChatSession) Snapshot() []*models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*models.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

// AtEnd reports whether the oldest history has been reached.
func (s *ChatSession) AtEnd() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.chatEnd
}

// LoadOlder fetches the next backward page and returns how many messages
// were added. It is a no-op returning 0 when history is exhausted or
// another fetch is already in flight.
func (s *ChatSession) LoadOlder(ctx context.Context) (int, error) {
	return s.loadPage(ctx)
}

func (s *ChatSession) loadPage(ctx context.Context) (int, error) {
	s.mu.Lock()
	if s.chatEnd || s.fetching || s.state == ChatClosed {
		s.mu.Unlock()
		return 0, nil
	}
	s.fetching = true
	var before time.Time
	if n := len(s.messages); n > 0 {
		before = s.messages[n-1].SentAt.Time
	}
	s.mu.Unlock()

	page, err := s.client.EventMessages(ctx, s.eventID, chatPageSize, before)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetching = false
	if err != nil {
		return 0, err
	}

	added := 0
	// Merge unless the page's first message already arrived on the live
	// stream; a fetch and a live push can race on the same message.
	if len(page) > 0 && !s.hasMessageLocked(page[0].ID) {
		s.messages = append(s.messages, page...)
		added = len(page)
	}
	if len(page) < chatPageSize {
		s.chatEnd = true
	}
	return added, nil
}

func (s *ChatSession) hasMessageLocked(id int) bool {
	for _, m := range s.messages {
		if m.ID == id {
			return true
		}
	}
	return false
}

// Send pushes content over the socket. Fire and forget: no acknowledgement
// is awaited; the server echoes the stored message back on the stream.
func (s *ChatSession) Send(content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return ErrEmptyMessage
	}
	if len([]rune(content)) > models.MaxMessageLength {
		return ErrMessageTooLong
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == ChatClosed {
		return ErrChatClosed
	}
	payload := struct {
		Content string `json:"content"`
	}{Content: content}
	if err := s.conn.WriteJSON(payload); err != nil {
		return fmt.Errorf("send message: %w", err)
	}
	return nil
}

// Close tears the session down: the socket is closed unconditionally and
// the pagination state reset, so reopening starts from the newest page
// again. Safe to call more than once.
func (s *ChatSession) Close() error {
	s.mu.Lock()
	if s.state == ChatClosed {
		s.mu.Unlock()
		return nil
	}
	s.state = ChatClosed
	s.messages = nil
	s.chatEnd = false
	conn := s.conn
	s.mu.Unlock()

	return conn.Close()
}

// readLoop receives live messages until the socket dies, prepending each to
// the list and handing it to the consumer.
func (s *ChatSession) readLoop() {
	defer close(s.incoming)
	for {
		var m models.Message
		if err := s.conn.ReadJSON(&m); err != nil {
			s.mu.Lock()
			wasClosed := s.state == ChatClosed
			s.state = ChatClosed
			s.mu.Unlock()
			if !wasClosed {
				s.log.Warn(context.Background(), "chat stream ended", "error", err)
			}
			return
		}

		s.mu.Lock()
		if s.state != ChatClosed {
			s.messages = append([]*models.Message{&m}, s.messages...)
		}
		s.mu.Unlock()

		select {
		case s.incoming <- &m:
		default:
			// Consumer is not draining; drop rather than stall the socket.
		}
	}
}
