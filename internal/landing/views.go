package landing

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/flashcode/flashweb/internal/domain"
	"github.com/flashcode/flashweb/internal/effects"
	"github.com/flashcode/flashweb/internal/landing/components"
)

// ViewConfig shapes the controllers of every mounted view.
type ViewConfig struct {
	FAQSize         int
	ScrollThreshold float64
	RevealEnabled   bool
	RevealBlocks    []components.RevealBlock
	Glitch          effects.GlitchSchedule

	// IdleTTL bounds the time between two contacts of a mounted view.
	IdleTTL time.Duration
	// ConnectGrace bounds the time a registered view may wait for its first
	// contact (websocket or UI request) before it is dropped.
	ConnectGrace time.Duration
	// ReconnectGrace is how long a view outlives its websocket, so the page
	// can reconnect and keep its state.
	ReconnectGrace time.Duration
	MaxViews       int
}

// View is the UI state of one rendered page. It owns its controllers and its
// glitch timer. Nothing runs until the page makes contact; see mount.
type View struct {
	id        string
	accordion *effects.Accordion
	header    *effects.ScrollHeader
	revealers map[string]*effects.Revealer
	glitch    *effects.GlitchTimer

	mountOnce sync.Once

	mu       sync.Mutex
	mounted  bool
	created  time.Time
	lastSeen time.Time
}

func newView(id string, cfg ViewConfig, now time.Time, onGlitch func(viewID string, active bool), glitchOpts []effects.GlitchOption) *View {
	v := &View{
		id:        id,
		accordion: effects.NewAccordion(cfg.FAQSize),
		header:    effects.NewScrollHeader(cfg.ScrollThreshold),
		revealers: make(map[string]*effects.Revealer, len(cfg.RevealBlocks)),
		created:   now,
		lastSeen:  now,
	}
	for _, b := range cfg.RevealBlocks {
		v.revealers[b.ID] = effects.NewRevealer(cfg.RevealEnabled, b.Delay)
	}
	v.glitch = effects.NewGlitchTimer(cfg.Glitch, func(active bool) {
		if onGlitch != nil {
			onGlitch(id, active)
		}
	}, glitchOpts...)
	return v
}

// ID returns the view identifier carried by the page's requests.
func (v *View) ID() string { return v.id }

// Mounted reports whether the view's controllers are running.
func (v *View) Mounted() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.mounted
}

// mount starts the controllers and the glitch timer. It runs once, on the
// first contact from the page; after unmount it has no effect.
func (v *View) mount(ctx context.Context) {
	v.mountOnce.Do(func() {
		v.accordion.Mount(ctx)
		v.header.Mount(ctx)
		for _, r := range v.revealers {
			r.Mount(ctx)
		}
		v.glitch.Start(ctx)

		v.mu.Lock()
		v.mounted = true
		v.mu.Unlock()
	})
}

func (v *View) unmount() {
	v.glitch.Stop()
	v.accordion.Unmount()
	v.header.Unmount()
	for _, r := range v.revealers {
		r.Unmount()
	}
}

func (v *View) touch(now time.Time) {
	v.mu.Lock()
	v.lastSeen = now
	v.mu.Unlock()
}

// expired reports whether the view missed its connect grace or idled past the TTL.
func (v *View) expired(now time.Time, cfg ViewConfig) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.mounted {
		return cfg.ConnectGrace > 0 && now.Sub(v.created) > cfg.ConnectGrace
	}
	return cfg.IdleTTL > 0 && now.Sub(v.lastSeen) > cfg.IdleTTL
}

// ToggleFAQ toggles the FAQ entry at index.
func (v *View) ToggleFAQ(ctx context.Context, index int) (effects.AccordionState, error) {
	return v.accordion.Toggle(ctx, index)
}

// Scroll records the window offset.
func (v *View) Scroll(ctx context.Context, offset float64) (scrolled, changed bool, err error) {
	return v.header.Observe(ctx, offset)
}

// Reveal records an intersection of the named block.
func (v *View) Reveal(ctx context.Context, block string, ratio float64) (bool, error) {
	r, ok := v.revealers[block]
	if !ok {
		return false, fmt.Errorf("%w: %s", domain.ErrUnknownSection, block)
	}
	return r.Intersect(ctx, ratio)
}

// Glitching returns the view's glitch flag.
func (v *View) Glitching() bool { return v.glitch.Active() }

// Snapshot captures the view's state for rendering.
func (v *View) Snapshot() components.State {
	visible := make(map[string]bool, len(v.revealers))
	delays := make(map[string]time.Duration, len(v.revealers))
	for id, r := range v.revealers {
		visible[id] = r.Visible()
		delays[id] = r.Delay()
	}
	return components.State{
		ViewID:    v.id,
		Scrolled:  v.header.Scrolled(),
		Glitching: v.glitch.Active(),
		FAQ:       v.accordion.State(),
		Visible:   visible,
		Delays:    delays,
	}
}

// ViewStore holds the registered views, bounded in number and idle time.
type ViewStore struct {
	cfg        ViewConfig
	now        func() time.Time
	newID      func() string
	onGlitch   func(viewID string, active bool)
	onUnmount  func(viewID string)
	live       func(viewID string) bool
	glitchOpts []effects.GlitchOption
	logger     *slog.Logger

	mu       sync.Mutex
	views    map[string]*View
	releases map[string]func() bool
	closed   bool
}

// StoreOption configures a ViewStore.
type StoreOption func(*ViewStore)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) StoreOption {
	return func(s *ViewStore) { s.now = now }
}

// WithIDGenerator replaces the uuid view IDs.
func WithIDGenerator(newID func() string) StoreOption {
	return func(s *ViewStore) { s.newID = newID }
}

// WithGlitchHook receives every glitch flip of every view.
func WithGlitchHook(fn func(viewID string, active bool)) StoreOption {
	return func(s *ViewStore) { s.onGlitch = fn }
}

// WithGlitchOptions configures the glitch timer of every view.
func WithGlitchOptions(opts ...effects.GlitchOption) StoreOption {
	return func(s *ViewStore) { s.glitchOpts = opts }
}

// WithUnmountHook runs after a view is unmounted by Unmount, Sweep or an
// expired release.
func WithUnmountHook(fn func(viewID string)) StoreOption {
	return func(s *ViewStore) { s.onUnmount = fn }
}

// WithLiveCheck keeps views for which check reports true out of the sweep.
func WithLiveCheck(check func(viewID string) bool) StoreOption {
	return func(s *ViewStore) { s.live = check }
}

// NewViewStore creates an empty store.
func NewViewStore(cfg ViewConfig, opts ...StoreOption) *ViewStore {
	s := &ViewStore{
		cfg:      cfg,
		now:      time.Now,
		newID:    uuid.NewString,
		live:     func(string) bool { return false },
		logger:   slog.Default().With("service", "landing-views"),
		views:    make(map[string]*View),
		releases: make(map[string]func() bool),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mount registers a new view. Its controllers start on the first contact.
// It fails with domain.ErrTooManyViews once the cap is reached.
func (s *ViewStore) Mount() (*View, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, effects.ErrUnmounted
	}
	if s.cfg.MaxViews > 0 && len(s.views) >= s.cfg.MaxViews {
		return nil, domain.ErrTooManyViews
	}

	v := newView(s.newID(), s.cfg, s.now(), s.onGlitch, s.glitchOpts)
	s.views[v.id] = v
	return v, nil
}

// Get returns a view for a UI request. The contact mounts the view, cancels a
// pending release and marks it as active.
func (s *ViewStore) Get(id string) (*View, error) {
	v, ok := s.contact(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownView, id)
	}
	return v, nil
}

// Attach is Get for the view's websocket. It reports whether the view exists.
func (s *ViewStore) Attach(id string) bool {
	_, ok := s.contact(id)
	return ok
}

func (s *ViewStore) contact(id string) (*View, bool) {
	s.mu.Lock()
	v, ok := s.views[id]
	if ok {
		if stop, pending := s.releases[id]; pending {
			stop()
			delete(s.releases, id)
		}
	}
	s.mu.Unlock()
	if !ok {
		return nil, false
	}

	v.mount(context.Background())
	v.touch(s.now())
	return v, true
}

// Has reports whether id is registered.
func (s *ViewStore) Has(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.views[id]
	return ok
}

// Release unmounts the view after the reconnect grace unless a contact
// reclaims it first. A view whose websocket is live again is kept.
func (s *ViewStore) Release(id string) {
	if s.live(id) {
		return
	}
	if s.cfg.ReconnectGrace <= 0 {
		s.Unmount(id)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.views[id]; !ok || s.closed {
		return
	}
	if stop, pending := s.releases[id]; pending {
		stop()
	}
	s.releases[id] = time.AfterFunc(s.cfg.ReconnectGrace, func() {
		if s.expireRelease(id) {
			s.logger.Debug("View unmounted after its websocket closed", "view_id", id)
		}
	}).Stop
}

func (s *ViewStore) expireRelease(id string) bool {
	s.mu.Lock()
	_, pending := s.releases[id]
	delete(s.releases, id)
	s.mu.Unlock()
	if !pending || s.live(id) {
		return false
	}
	return s.Unmount(id)
}

// Unmount releases the view at once. It reports whether the view was registered.
func (s *ViewStore) Unmount(id string) bool {
	s.mu.Lock()
	v, ok := s.views[id]
	delete(s.views, id)
	if stop, pending := s.releases[id]; pending {
		stop()
		delete(s.releases, id)
	}
	s.mu.Unlock()

	if ok {
		v.unmount()
		if s.onUnmount != nil {
			s.onUnmount(id)
		}
	}
	return ok
}

// Len returns the number of registered views.
func (s *ViewStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.views)
}

// Sweep drops views that never made contact within the connect grace and views
// idle for longer than the TTL, and returns how many. Views with a live
// websocket count as active.
func (s *ViewStore) Sweep() int {
	now := s.now()

	s.mu.Lock()
	var stale []*View
	for id, v := range s.views {
		if s.live(id) {
			v.touch(now)
			continue
		}
		if v.expired(now, s.cfg) {
			stale = append(stale, v)
			delete(s.views, id)
			if stop, pending := s.releases[id]; pending {
				stop()
				delete(s.releases, id)
			}
		}
	}
	s.mu.Unlock()

	for _, v := range stale {
		v.unmount()
		if s.onUnmount != nil {
			s.onUnmount(v.id)
		}
	}
	return len(stale)
}

// Run sweeps idle views every interval until ctx is done.
func (s *ViewStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Sweep(); n > 0 {
				s.logger.Debug("Unmounted idle views", "count", n, "remaining", s.Len())
			}
		}
	}
}

// Close unmounts every view. Later mounts fail.
func (s *ViewStore) Close() {
	s.mu.Lock()
	views := s.views
	s.views = make(map[string]*View)
	for id, stop := range s.releases {
		stop()
		delete(s.releases, id)
	}
	s.closed = true
	s.mu.Unlock()

	for _, v := range views {
		v.unmount()
	}
}
