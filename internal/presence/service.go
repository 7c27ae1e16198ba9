// Package presence tracks which visitors currently hold at least one open
// landing page websocket. It listens to the bridge lifecycle topics and
// announces visitors coming online and going offline.
package presence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/flashcode/flashweb/internal/pubsub"
	"github.com/flashcode/flashweb/internal/websocket"
)

type Status string

const (
	StatusOnline  Status = "online"
	StatusOffline Status = "offline"
)

// OfflineDebounceDelay is the time to wait before marking a visitor offline
// after their last connection closes. A page reload closes one view and opens
// the next within this window.
const OfflineDebounceDelay = 5 * time.Second

// Presence describes one online visitor.
type Presence struct {
	VisitorID string    `json:"visitor_id"`
	Views     int       `json:"views"`
	Since     time.Time `json:"since"`
}

// Changed is published when a visitor comes online or goes offline.
type Changed struct {
	VisitorID string `json:"visitor_id"`
	Status    Status `json:"status"`
	Online    int    `json:"online"`
}

// ChangedEvent is the typed topic of presence changes.
var ChangedEvent = pubsub.NewEvent[Changed](
	"presence.visitor.changed",
	"A visitor opened their first landing page websocket or closed their last one",
	`{"visitor_id":"3f0c9a4e","status":"online","online":12}`,
)

type visitor struct {
	views map[string]struct{}
	since time.Time
}

// Service keeps the presence table.
type Service struct {
	mu       sync.Mutex
	visitors map[string]*visitor
	views    map[string]string // viewID -> visitorID
	pending  map[string]*time.Timer
	closed   bool

	publisher  pubsub.Publisher
	subscriber pubsub.Subscriber
	debounce   time.Duration
	now        func() time.Time
	logger     *slog.Logger
}

// Option is a function that configures a Service.
type Option func(*Service)

// WithOfflineDebounce sets the offline debounce. Zero marks visitors offline
// immediately.
func WithOfflineDebounce(d time.Duration) Option {
	return func(s *Service) { s.debounce = d }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a presence service. Call Start to begin listening.
func NewService(publisher pubsub.Publisher, subscriber pubsub.Subscriber, opts ...Option) *Service {
	s := &Service{
		visitors:   make(map[string]*visitor),
		views:      make(map[string]string),
		pending:    make(map[string]*time.Timer),
		publisher:  publisher,
		subscriber: subscriber,
		debounce:   OfflineDebounceDelay,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     slog.Default().With("service", "presence"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start subscribes to the websocket lifecycle topics.
func (s *Service) Start(ctx context.Context) error {
	if err := s.subscriber.Subscribe(ctx, websocket.TopicClientReady.Name(), s.handleClientReady); err != nil {
		return fmt.Errorf("subscribe to %s: %w", websocket.TopicClientReady.Name(), err)
	}
	if err := s.subscriber.Subscribe(ctx, websocket.TopicClientDisconnected.Name(), s.handleClientDisconnected); err != nil {
		return fmt.Errorf("subscribe to %s: %w", websocket.TopicClientDisconnected.Name(), err)
	}
	s.logger.Info("Presence service started")
	return nil
}

func decodeLifecycle(msg pubsub.Message) (websocket.LifecycleEvent, error) {
	var evt websocket.LifecycleEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil {
		return evt, fmt.Errorf("decode %s: %w", msg.Topic, err)
	}
	// Visitors without a session count as one visitor per view.
	if evt.VisitorID == "" {
		evt.VisitorID = "view:" + evt.ViewID
	}
	return evt, nil
}

func (s *Service) handleClientReady(ctx context.Context, msg pubsub.Message) error {
	evt, err := decodeLifecycle(msg)
	if err != nil {
		return err
	}
	if online, ok := s.addView(evt.VisitorID, evt.ViewID); ok {
		s.publish(ctx, Changed{VisitorID: evt.VisitorID, Status: StatusOnline, Online: online})
	}
	return nil
}

func (s *Service) handleClientDisconnected(ctx context.Context, msg pubsub.Message) error {
	evt, err := decodeLifecycle(msg)
	if err != nil {
		return err
	}
	s.removeView(evt.ViewID)
	return nil
}

// addView records a connection and reports whether the visitor came online.
func (s *Service) addView(visitorID, viewID string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, false
	}

	s.views[viewID] = visitorID

	if timer, ok := s.pending[visitorID]; ok {
		timer.Stop()
		delete(s.pending, visitorID)
		s.logger.Debug("Cancelled offline debounce due to reconnection", "visitor_id", visitorID, "view_id", viewID)
	}

	v, ok := s.visitors[visitorID]
	if ok {
		v.views[viewID] = struct{}{}
		return len(s.visitors), false
	}

	s.visitors[visitorID] = &visitor{views: map[string]struct{}{viewID: {}}, since: s.now()}
	s.logger.Debug("Visitor came online", "visitor_id", visitorID, "view_id", viewID)
	return len(s.visitors), true
}

func (s *Service) removeView(viewID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	visitorID, ok := s.views[viewID]
	if !ok {
		return
	}
	delete(s.views, viewID)

	v := s.visitors[visitorID]
	if v == nil {
		return
	}
	delete(v.views, viewID)
	if len(v.views) > 0 || s.closed {
		return
	}

	if s.debounce <= 0 {
		online := s.dropVisitorLocked(visitorID)
		go s.publish(context.Background(), Changed{VisitorID: visitorID, Status: StatusOffline, Online: online})
		return
	}
	s.pending[visitorID] = time.AfterFunc(s.debounce, func() { s.expire(visitorID) })
}

func (s *Service) expire(visitorID string) {
	s.mu.Lock()
	if _, ok := s.pending[visitorID]; !ok || s.closed {
		s.mu.Unlock()
		return
	}
	delete(s.pending, visitorID)
	if v := s.visitors[visitorID]; v != nil && len(v.views) > 0 {
		s.mu.Unlock()
		return
	}
	online := s.dropVisitorLocked(visitorID)
	s.mu.Unlock()

	s.publish(context.Background(), Changed{VisitorID: visitorID, Status: StatusOffline, Online: online})
}

func (s *Service) dropVisitorLocked(visitorID string) int {
	delete(s.visitors, visitorID)
	s.logger.Debug("Visitor went offline", "visitor_id", visitorID)
	return len(s.visitors)
}

func (s *Service) publish(ctx context.Context, evt Changed) {
	if s.publisher == nil {
		return
	}
	if err := pubsub.Publish(ctx, s.publisher, ChangedEvent, evt); err != nil {
		s.logger.Error("Failed to publish presence change", "visitor_id", evt.VisitorID, "error", err)
	}
}

// Get returns the presence of an online visitor.
func (s *Service) Get(visitorID string) (Presence, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.visitors[visitorID]
	if !ok {
		return Presence{}, false
	}
	return Presence{VisitorID: visitorID, Views: len(v.views), Since: v.since}, true
}

// Online returns the number of online visitors, including those inside the
// offline debounce window.
func (s *Service) Online() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.visitors)
}

// Shutdown stops pending debounce timers. Later events are ignored.
func (s *Service) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	for id, timer := range s.pending {
		timer.Stop()
		delete(s.pending, id)
	}
}
