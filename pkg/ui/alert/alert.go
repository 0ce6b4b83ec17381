// Package alert implements timed overlay messages drawn on top of a page.
package alert

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/muesli/reflow/wordwrap"
	"github.com/oklog/ulid/v2"

	"github.com/odvcencio/panekit/pkg/ui/backend"
	"github.com/odvcencio/panekit/pkg/ui/surface"
)

const (
	DefaultTitle    = "Alert"
	DefaultDuration = time.Second
	DefaultLimit    = 32
)

var popupStyle = backend.DefaultStyle().
	Foreground(backend.ColorBlack).
	Background(backend.ColorWhite)

// Alert is a titled message shown for Duration after it is first drawn.
type Alert struct {
	ID       string
	Title    string
	Message  string
	Duration time.Duration

	shownAt *time.Time
	now     func() time.Time
}

// New creates an alert that has not been drawn yet.
func New(title, message string, duration time.Duration) *Alert {
	return &Alert{
		ID:       ulid.Make().String(),
		Title:    strings.TrimSpace(title),
		Message:  strings.TrimSpace(message),
		Duration: duration,
		now:      time.Now,
	}
}

func (a *Alert) clock() time.Time {
	if a.now == nil {
		return time.Now()
	}
	return a.now()
}

// IsVisible reports whether the alert was never drawn or is still within
// its duration.
func (a *Alert) IsVisible() bool {
	if a.shownAt == nil {
		return true
	}
	return a.clock().Sub(*a.shownAt) < a.Duration
}

// Remaining returns how long the alert stays up. Undrawn alerts report
// their full duration.
func (a *Alert) Remaining() time.Duration {
	if a.shownAt == nil {
		return a.Duration
	}
	return max(0, a.Duration-a.clock().Sub(*a.shownAt))
}

// Render draws the alert as a popup centered in area. The first call starts
// the alert's clock.
func (a *Alert) Render(s *surface.Buffer, area surface.Rect) {
	if a.shownAt == nil {
		t := a.clock()
		a.shownAt = &t
	}

	popup := area.Centered()
	if popup.Empty() {
		return
	}
	s.ClearRect(popup)

	body, footer := popup.SplitLast(2)
	inner := s.DrawTitledBox(body, a.Title, popupStyle)
	s.Fill(inner, ' ', popupStyle)
	if inner.Width > 0 {
		lines := strings.Split(wordwrap.String(a.Message, inner.Width), "\n")
		for i, line := range lines {
			if i >= inner.Height {
				break
			}
			s.SetStringIn(inner, inner.X, inner.Y+i, strings.TrimSpace(line), popupStyle)
		}
	}

	readout := fmt.Sprintf("%d/%d", int(a.Remaining().Seconds()), int(a.Duration.Seconds()))
	s.SetStringIn(footer, footer.X, footer.Y, readout, backend.DefaultStyle())
}

// Manager holds scheduled alerts in order. Scheduling is safe from any
// goroutine; rendering belongs to the frame loop.
type Manager struct {
	mu       sync.Mutex
	alerts   []*Alert
	duration time.Duration
	limit    int
	now      func() time.Time
	onChange func(*Alert)
}

// Option configures a Manager.
type Option func(*Manager)

// WithDefaultDuration sets the duration used by Manager.Alert.
func WithDefaultDuration(d time.Duration) Option {
	return func(m *Manager) {
		if d > 0 {
			m.duration = d
		}
	}
}

// WithLimit caps the number of pending alerts. The oldest are dropped first.
func WithLimit(n int) Option {
	return func(m *Manager) {
		if n > 0 {
			m.limit = n
		}
	}
}

// WithClock replaces the time source of every scheduled alert.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

// WithOnSchedule registers a callback invoked after each scheduled alert.
func WithOnSchedule(fn func(*Alert)) Option {
	return func(m *Manager) {
		m.onChange = fn
	}
}

// NewManager creates an empty manager.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		duration: DefaultDuration,
		limit:    DefaultLimit,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Schedule appends an alert. It becomes visible once every earlier alert
// has expired.
func (m *Manager) Schedule(a *Alert) {
	if m == nil || a == nil {
		return
	}
	a.now = m.now

	m.mu.Lock()
	m.alerts = append(m.alerts, a)
	if overflow := len(m.alerts) - m.limit; overflow > 0 {
		m.alerts = append(m.alerts[:0], m.alerts[overflow:]...)
	}
	cb := m.onChange
	m.mu.Unlock()

	if cb != nil {
		cb(a)
	}
}

// Alert schedules a message with the default title and duration.
func (m *Manager) Alert(msg string) {
	if m == nil {
		return
	}
	m.Schedule(New(DefaultTitle, msg, m.duration))
}

// FirstVisible returns the earliest alert that is still visible.
func (m *Manager) FirstVisible() (*Alert, bool) {
	if m == nil {
		return nil, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.alerts {
		if a.IsVisible() {
			return a, true
		}
	}
	return nil, false
}

// Prune drops expired alerts and returns how many were removed.
func (m *Manager) Prune() int {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	kept := m.alerts[:0]
	for _, a := range m.alerts {
		if a.IsVisible() {
			kept = append(kept, a)
		}
	}
	removed := len(m.alerts) - len(kept)
	clear(m.alerts[len(kept):])
	m.alerts = kept
	return removed
}

// Len returns the number of alerts held, expired or not.
func (m *Manager) Len() int {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.alerts)
}
