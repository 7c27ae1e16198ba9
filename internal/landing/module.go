// Package landing serves the FlashWeb landing page: one view per rendered
// page, HTMX endpoints feeding the view's controllers and a glitch timer per
// view whose flips are pushed to the page over its websocket.
package landing

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flashcode/flashweb/internal/content"
	"github.com/flashcode/flashweb/internal/effects"
	"github.com/flashcode/flashweb/internal/landing/components"
	"github.com/flashcode/flashweb/internal/middleware"
	"github.com/flashcode/flashweb/internal/module"
	"github.com/flashcode/flashweb/internal/presence"
	"github.com/flashcode/flashweb/internal/pubsub"
	"github.com/flashcode/flashweb/internal/registry"
	"github.com/flashcode/flashweb/internal/rendering"
	"github.com/flashcode/flashweb/internal/topicmgr"
	"github.com/flashcode/flashweb/internal/websocket"
)

// Registry keys of the services the module shares.
const (
	ViewsKey    registry.Key[*ViewStore]        = "landing.views"
	BridgeKey   registry.Key[*websocket.Bridge] = "landing.ws_bridge"
	PageKey     registry.Key[content.Page]      = "landing.page"
	PresenceKey registry.Key[*presence.Service] = "landing.presence"
)

// LandingModule implements module.Module for the landing page.
type LandingModule struct {
	publisher  pubsub.Publisher
	subscriber pubsub.Subscriber
	renderer   rendering.Renderer
	topics     *topicmgr.Manager

	page     content.Page
	views    *ViewStore
	bridge   *websocket.Bridge
	presence *presence.Service

	cancel context.CancelFunc
	wg     sync.WaitGroup
	logger *slog.Logger
}

var _ module.Module = (*LandingModule)(nil)

// Dependencies holds the services the module requires.
type Dependencies struct {
	Publisher  pubsub.Publisher
	Subscriber pubsub.Subscriber
	Renderer   rendering.Renderer
	TopicMgr   *topicmgr.Manager
}

// New creates the module.
func New(deps Dependencies) *LandingModule {
	renderer := deps.Renderer
	if renderer == nil {
		renderer = rendering.NewUniversalRenderer()
	}
	topics := deps.TopicMgr
	if topics == nil {
		topics = topicmgr.Default()
	}
	return &LandingModule{
		publisher:  deps.Publisher,
		subscriber: deps.Subscriber,
		renderer:   renderer,
		topics:     topics,
		logger:     slog.Default().With("module", "landing"),
	}
}

// Name returns the module name.
func (m *LandingModule) Name() string {
	return "landing"
}

// Register builds the page, the view store, the websocket bridge and the
// presence tracker from configuration and shares them in the registry.
func (m *LandingModule) Register(reg *registry.Registry) error {
	if m.publisher == nil || m.subscriber == nil {
		return errors.New("landing: publisher and subscriber are required")
	}
	cfg := reg.Config()

	m.page = content.New(content.WithCheckoutURLs(cfg.GetCheckoutStandardURL(), cfg.GetCheckoutPremiumURL()))
	// The store and the bridge refer to each other: a live socket keeps its
	// view out of the sweep, and a swept view has its socket closed.
	m.bridge = websocket.NewBridge(
		websocket.WithPublisher(m.publisher),
		websocket.WithAuthorizer(func(viewID string) bool { return m.views.Attach(viewID) }),
		websocket.WithCloseHook(func(viewID string) { m.views.Release(viewID) }),
	)
	m.views = NewViewStore(ViewConfig{
		FAQSize:         len(m.page.FAQ.Entries),
		ScrollThreshold: cfg.GetScrollThreshold(),
		RevealEnabled:   cfg.GetRevealEnabled(),
		RevealBlocks:    components.RevealBlocks(m.page),
		Glitch: effects.GlitchSchedule{
			Period:   cfg.GetGlitchPeriod(),
			Duration: cfg.GetGlitchDuration(),
		},
		IdleTTL:        cfg.GetViewIdleTTL(),
		ConnectGrace:   cfg.GetViewConnectGrace(),
		ReconnectGrace: cfg.GetViewReconnectGrace(),
		MaxViews:       cfg.GetMaxViews(),
	},
		WithGlitchHook(m.publishGlitch),
		WithLiveCheck(m.bridge.Connected),
		WithUnmountHook(func(viewID string) {
			if m.bridge.Disconnect(viewID) {
				m.logger.Debug("Closed the websocket of an unmounted view", "view_id", viewID)
			}
		}),
	)

	if err := websocket.RegisterTopicsWithManager(m.topics); err != nil {
		return err
	}
	if err := registerTopic(m.topics, GlitchChangedEvent.Topic()); err != nil {
		return err
	}
	if err := registerTopic(m.topics, presence.ChangedEvent.Topic()); err != nil {
		return err
	}
	m.presence = presence.NewService(m.publisher, m.subscriber)

	registry.Set(reg, PageKey, m.page)
	registry.Set(reg, ViewsKey, m.views)
	registry.Set(reg, BridgeKey, m.bridge)
	registry.Set(reg, PresenceKey, m.presence)
	return nil
}

// Boot starts the background work and mounts the routes.
func (m *LandingModule) Boot(ctx context.Context, g *echo.Group, reg *registry.Registry) error {
	cfg := reg.Config()

	// Background work lives until Shutdown, not until the boot context ends.
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	m.cancel = cancel

	if err := m.bridge.Subscribe(runCtx, m.subscriber); err != nil {
		cancel()
		return err
	}
	if err := m.presence.Start(runCtx); err != nil {
		cancel()
		return err
	}
	if err := NewGlitchSubscriber(m.publisher, m.subscriber, m.renderer).Start(runCtx); err != nil {
		cancel()
		return err
	}

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.views.Run(runCtx, sweepInterval(cfg.GetViewIdleTTL()))
	}()

	handler := NewHandler(m.page, m.views, m.renderer, cfg.GetAssetBaseURL())

	m.logger.Info("Booting landing module: setting up routes")
	g.GET("/", handler.PageGet)
	g.GET("/ws/landing", m.bridge.Handler())

	rps := cfg.GetUIRateLimit()
	ui := g.Group("/ui", middleware.RateLimiter(rps, int(math.Ceil(rps))))
	ui.POST("/faq/:index/toggle", handler.ToggleFAQ)
	ui.POST("/scroll", handler.Scroll)
	ui.POST("/reveal/:section", handler.Reveal)

	return nil
}

// Shutdown stops the janitor and every view with its glitch timer.
func (m *LandingModule) Shutdown(ctx context.Context) error {
	m.logger.Info("Shutting down landing module")

	if m.cancel != nil {
		m.cancel()
	}
	if m.bridge != nil {
		m.bridge.Close()
	}
	if m.presence != nil {
		m.presence.Shutdown()
	}
	if m.views != nil {
		m.views.Close()
	}

	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// publishGlitch runs on a view's timer goroutine for every flip. The message
// context travels to subscribers, so it must outlive this call.
func (m *LandingModule) publishGlitch(viewID string, active bool) {
	evt := GlitchChanged{ViewID: viewID, Active: active}
	if err := pubsub.Publish(context.Background(), m.publisher, GlitchChangedEvent, evt); err != nil {
		m.logger.Error("Failed to publish glitch change", "view_id", viewID, "active", active, "error", err)
	}
}

// registerTopic registers topic with manager unless it is already known.
func registerTopic(manager *topicmgr.Manager, topic topicmgr.Topic) error {
	err := manager.Register(topic)
	var topicErr *topicmgr.TopicError
	if errors.As(err, &topicErr) && topicErr.Type == topicmgr.ErrorDuplicateRegistration {
		return nil
	}
	return err
}

func sweepInterval(ttl time.Duration) time.Duration {
	interval := ttl / 4
	if interval < time.Second {
		return time.Second
	}
	if interval > time.Minute {
		return time.Minute
	}
	return interval
}
