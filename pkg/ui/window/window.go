// Package window runs the per-frame cycle: it routes one input event
// through focus, page switching and menus, then draws the footer, the
// current page and any alert.
package window

import (
	"strings"
	"time"

	"github.com/odvcencio/panekit/pkg/errors"
	"github.com/odvcencio/panekit/pkg/logging"
	"github.com/odvcencio/panekit/pkg/telemetry"
	"github.com/odvcencio/panekit/pkg/ui/alert"
	"github.com/odvcencio/panekit/pkg/ui/component"
	"github.com/odvcencio/panekit/pkg/ui/input"
	"github.com/odvcencio/panekit/pkg/ui/page"
	"github.com/odvcencio/panekit/pkg/ui/surface"
	"github.com/odvcencio/panekit/pkg/ui/terminal"
)

const (
	// DefaultPollInterval bounds how long a frame waits for input.
	DefaultPollInterval = 250 * time.Millisecond
	// DefaultFrameBudget is the frame time above which a slow frame is logged.
	DefaultFrameBudget = 50 * time.Millisecond
	// DefaultExitKey ends the window while it has focus.
	DefaultExitKey = 'q'
)

// Config configures a Window. Zero fields take defaults.
type Config struct {
	// Mapper converts terminal events. Defaults to input.DefaultMapper.
	Mapper input.Mapper
	// Terminate is consulted with every frame's event, possibly nil, while
	// the window has focus. Defaults to matching ExitKey.
	Terminate func(ev *input.Event) bool
	ExitKey   rune
	// Source supplies terminal events to Render. Run installs a Poller
	// when nil.
	Source       EventSource
	PollInterval time.Duration
	FrameBudget  time.Duration

	AlertDuration time.Duration
	AlertLimit    int
	// Clock drives alert expiry. Defaults to time.Now.
	Clock func() time.Time

	Logger *logging.Logger
}

// Window owns the per-page focus contexts and alerts for a page collection.
type Window struct {
	id        component.ID
	terminate func(*input.Event) bool
	ended     bool
	contexts  *selectable[component.ID, *page.Context]
	alerts    *alert.Manager
	mapper    input.Mapper
	source    EventSource
	exitKey   rune

	pollInterval time.Duration
	frameBudget  time.Duration
	log          *logging.Logger

	// lastArea is where the page was drawn last frame, for hit-testing.
	lastArea surface.Rect
}

// New creates a window for pages with one context per page, focused on the
// window itself.
func New(pages *page.Collection, cfg Config) *Window {
	if cfg.Mapper == nil {
		cfg.Mapper = input.DefaultMapper{}
	}
	if cfg.ExitKey == 0 {
		cfg.ExitKey = DefaultExitKey
	}
	if cfg.Terminate == nil {
		exit := cfg.ExitKey
		cfg.Terminate = func(ev *input.Event) bool { return ev.IsKey(exit) }
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}
	if cfg.FrameBudget <= 0 {
		cfg.FrameBudget = DefaultFrameBudget
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}

	w := &Window{
		id:           component.NewID(),
		terminate:    cfg.Terminate,
		contexts:     newSelectable[component.ID, *page.Context](pages.Current().ID()),
		mapper:       cfg.Mapper,
		source:       cfg.Source,
		exitKey:      cfg.ExitKey,
		pollInterval: cfg.PollInterval,
		frameBudget:  cfg.FrameBudget,
		log:          cfg.Logger,
	}

	log := cfg.Logger
	opts := []alert.Option{
		alert.WithDefaultDuration(cfg.AlertDuration),
		alert.WithLimit(cfg.AlertLimit),
		alert.WithOnSchedule(func(a *alert.Alert) {
			telemetry.AlertsScheduled.Inc()
			log.AlertScheduled(a.ID, a.Title, a.Duration)
		}),
	}
	if cfg.Clock != nil {
		opts = append(opts, alert.WithClock(cfg.Clock))
	}
	w.alerts = alert.NewManager(opts...)

	for _, p := range pages.Pages() {
		w.contexts.put(p.ID(), page.NewContext(p))
	}
	return w
}

// ID returns the window's identifier.
func (w *Window) ID() component.ID { return w.id }

// Alerts returns the window's alert manager. Scheduling is safe from any
// goroutine.
func (w *Window) Alerts() *alert.Manager { return w.alerts }

// Finished reports whether the termination predicate has fired. Once set it
// stays set.
func (w *Window) Finished() bool { return w.ended }

// Context returns the focus context of the page with id.
func (w *Window) Context(pageID component.ID) (*page.Context, bool) {
	return w.contexts.get(pageID)
}

// Active returns the context of the page being shown. Panics if the window
// has no context for it.
func (w *Window) Active() *page.Context {
	ctx, ok := w.contexts.selected()
	if !ok {
		errors.Invariant("no context for active page", "page", w.contexts.current.String())
	}
	return ctx
}

// WindowFocused reports whether focus is on the window in the active page.
func (w *Window) WindowFocused() bool {
	return w.Active().WindowFocused()
}

// Render polls the configured source for one event and runs a frame with
// it. Without a source the frame has no event.
func (w *Window) Render(pages *page.Collection, s *surface.Buffer, area surface.Rect) {
	var native terminal.Event
	if w.source != nil {
		native = w.source.Poll(w.pollInterval)
	}
	w.Frame(w.mapper.ToInputEvent(native), pages, s, area)
}

// Frame routes ev and draws one frame into area. A nil ev is a frame
// without input.
func (w *Window) Frame(ev *input.Event, pages *page.Collection, s *surface.Buffer, area surface.Rect) {
	w.frame(ev, pages, s, area)
}

// frameStats reports what a frame did, for tracing.
type frameStats struct {
	switched    bool
	menuActions int
}

func (w *Window) frame(ev *input.Event, pages *page.Collection, s *surface.Buffer, area surface.Rect) frameStats {
	var stats frameStats
	ctx := w.Active()

	if ctx.WindowFocused() && w.terminate(ev) {
		w.ended = true
	}

	if ev != nil {
		telemetry.InputEvents.WithLabelValues(ev.Kind.String()).Inc()
		if w.dispatch(ev, pages, ctx) {
			w.onPageChange(pages)
			ctx = w.Active()
			stats.switched = true
		}
		// page switch entries are handled by dispatch
		stats.menuActions = pages.ActionMenu(ctx.Focused()).Handle(w.alerts, ev)
		if stats.menuActions > 0 {
			telemetry.MenuActions.Add(float64(stats.menuActions))
		}
	}

	focused := ctx.Focused()
	ctx.Buffer().Add(focused, ev)

	props := component.Props{Focused: focused, Event: ev}
	body := w.renderFooter(pages, ctx, props, s, area)
	w.lastArea = body
	pages.Render(props, ctx.Buffer(), s, body)

	if a, ok := w.alerts.FirstVisible(); ok {
		a.Render(s, body)
	}
	w.alerts.Prune()
	telemetry.AlertsPending.Set(float64(w.alerts.Len()))
	return stats
}

// dispatch applies ev to focus and page state. Reports a page switch.
func (w *Window) dispatch(ev *input.Event, pages *page.Collection, ctx *page.Context) bool {
	switch ev.Kind {
	case input.Key:
		return ctx.WindowFocused() && pages.TryChangePage(ev.Rune)
	case input.FocusNext:
		ctx.FocusNext()
		w.logFocus(ctx)
	case input.FocusPrevious:
		ctx.FocusPrevious()
		w.logFocus(ctx)
	case input.FocusWindow:
		ctx.ResetFocus()
		w.logFocus(ctx)
	case input.Click:
		// hit-testing is available through Page.ComponentsAt; clicks do
		// not move focus yet
		var under []string
		for _, id := range pages.Current().ComponentsAt(ev.Position, w.lastArea) {
			under = append(under, id.String())
		}
		w.log.WithComponent(strings.Join(under, ",")).EventIgnored(ev.String(), "click routing not enabled")
	}
	return false
}

func (w *Window) logFocus(ctx *page.Context) {
	focused := ctx.Focused().String()
	w.log.WithComponent(focused).FocusMoved(focused, ctx.WindowFocused())
}

func (w *Window) onPageChange(pages *page.Collection) {
	cur := pages.Current()
	ctx, ok := w.contexts.get(cur.ID())
	if !ok {
		errors.Invariant("no context for page", "page", cur.Title())
	}
	ctx.Reconcile(cur)
	w.contexts.selectKey(cur.ID())

	telemetry.PageSwitches.Inc()
	from := ""
	if prev, ok := pages.Previous(); ok {
		from = prev.Title()
	}
	w.log.WithPage(cur.ID().String(), cur.Title()).PageChanged(from, cur.Title())
}
