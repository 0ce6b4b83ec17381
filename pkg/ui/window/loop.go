package window

import (
	"context"
	"sync"
	"time"

	"github.com/odvcencio/panekit/pkg/errors"
	"github.com/odvcencio/panekit/pkg/telemetry"
	"github.com/odvcencio/panekit/pkg/ui/backend"
	"github.com/odvcencio/panekit/pkg/ui/page"
	"github.com/odvcencio/panekit/pkg/ui/surface"
	"github.com/odvcencio/panekit/pkg/ui/terminal"
)

// EventSource yields at most one terminal event per call, waiting no longer
// than timeout. It returns nil when nothing arrived.
type EventSource interface {
	Poll(timeout time.Duration) terminal.Event
}

// SourceFunc adapts a function to EventSource.
type SourceFunc func(timeout time.Duration) terminal.Event

// Poll calls f.
func (f SourceFunc) Poll(timeout time.Duration) terminal.Event {
	return f(timeout)
}

// Poller turns a blocking PollEvent into a bounded wait by pumping events
// into a channel from a background goroutine.
type Poller struct {
	events   chan terminal.Event
	done     chan struct{}
	stopOnce sync.Once
}

// NewPoller starts pumping events from src. The pump exits when src
// returns nil, which backends do once finalized, or when Stop is called.
func NewPoller(src interface{ PollEvent() terminal.Event }) *Poller {
	p := &Poller{
		events: make(chan terminal.Event, 64),
		done:   make(chan struct{}),
	}
	go p.pump(src)
	return p
}

func (p *Poller) pump(src interface{ PollEvent() terminal.Event }) {
	defer close(p.events)
	for {
		ev := src.PollEvent()
		if ev == nil {
			return
		}
		select {
		case p.events <- ev:
		case <-p.done:
			return
		}
	}
}

// Poll implements EventSource.
func (p *Poller) Poll(timeout time.Duration) terminal.Event {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case ev, ok := <-p.events:
		if ok {
			return ev
		}
		<-timer.C
		return nil
	case <-timer.C:
		return nil
	}
}

// Stop ends the pump after its current PollEvent returns.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.done) })
}

// Run initializes b, runs frames until the termination predicate fires or
// ctx is done, and restores the terminal on return, including when a
// component panics.
func (w *Window) Run(ctx context.Context, b backend.Backend, pages *page.Collection) error {
	if err := b.Init(); err != nil {
		return errors.Wrap(err, errors.ErrCodeBackendInit, "init terminal")
	}
	defer b.Fini()

	b.HideCursor()
	if w.source == nil {
		poller := NewPoller(b)
		defer poller.Stop()
		w.source = poller
	}

	width, height := b.Size()
	buf := surface.NewBuffer(width, height)

	for !w.ended {
		if err := ctx.Err(); err != nil {
			return err
		}

		native := w.source.Poll(w.pollInterval)
		if rs, ok := native.(terminal.ResizeEvent); ok {
			buf.Resize(rs.Width, rs.Height)
			b.Sync()
		}
		w.step(ctx, native, pages, buf, b)
	}
	return nil
}

func (w *Window) step(ctx context.Context, native terminal.Event, pages *page.Collection, buf *surface.Buffer, b backend.Backend) {
	start := time.Now()
	ev := w.mapper.ToInputEvent(native)

	spanCtx, span := telemetry.StartFrame(ctx)
	defer span.End()
	if ev != nil {
		span.SetAttributes(telemetry.AttrEventKind.String(ev.Kind.String()))
	}

	buf.Clear()
	stats := w.frame(ev, pages, buf, buf.Bounds())
	flushed := buf.Flush(b)
	b.Show()

	cur := pages.Current()
	if stats.switched {
		telemetry.AddEvent(spanCtx, "page switched", telemetry.AttrPage.String(cur.Title()))
	}
	if stats.menuActions > 0 {
		telemetry.AddEvent(spanCtx, "menu handled",
			telemetry.AttrMenuActions.Int(stats.menuActions))
	}

	active := w.Active()
	span.SetAttributes(
		telemetry.AttrPage.String(cur.Title()),
		telemetry.AttrFocused.String(active.Focused().String()),
		telemetry.AttrWindow.Bool(active.WindowFocused()),
		telemetry.AttrCellsFlushed.Int(flushed),
	)

	took := time.Since(start)
	telemetry.ObserveFrame(took)
	if took > w.frameBudget {
		w.log.FrameSlow(took, w.frameBudget)
	}
}
