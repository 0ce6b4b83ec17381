// Command panekit-demo shows two dashboard pages built from the panekit
// component tree.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	"github.com/odvcencio/panekit/pkg/config"
	"github.com/odvcencio/panekit/pkg/logging"
	"github.com/odvcencio/panekit/pkg/telemetry"
	"github.com/odvcencio/panekit/pkg/ui/backend/tcell"
	"github.com/odvcencio/panekit/pkg/ui/component"
	"github.com/odvcencio/panekit/pkg/ui/menu"
	"github.com/odvcencio/panekit/pkg/ui/page"
	"github.com/odvcencio/panekit/pkg/ui/style"
	"github.com/odvcencio/panekit/pkg/ui/window"
)

func main() {
	configPath := flag.String("config", "", "config file (default: user and project files)")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	if !isInteractiveTerminal() {
		return errors.New("panekit-demo needs an interactive terminal")
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	log, closer, err := logging.Open(cfg.LogFile(), level)
	if err != nil {
		return err
	}
	defer closer.Close()

	if cfg.Tracing.Enabled {
		shutdown, err := startTracing(cfg.TraceFile())
		if err != nil {
			return err
		}
		defer shutdown()
	}

	screen, err := tcell.New()
	if err != nil {
		return err
	}
	if !cfg.UI.Mouse {
		screen.DisableMouse()
	}

	pages := demoPages(style.Detect())
	win := window.New(pages, window.Config{
		ExitKey:       cfg.ExitRune(),
		PollInterval:  cfg.UI.PollInterval,
		FrameBudget:   cfg.UI.FrameBudget,
		AlertDuration: cfg.UI.AlertDuration,
		AlertLimit:    cfg.UI.AlertLimit,
		Logger:        log,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer cancel()
		return win.Run(gctx, screen, pages)
	})
	if cfg.Metrics.Enabled {
		g.Go(func() error { return serveMetrics(gctx, cfg.Metrics.Listen) })
	}
	if path := watchedConfig(configPath); path != "" {
		g.Go(func() error {
			return config.Watch(gctx, path, func(_ *config.Config, err error) {
				if err != nil {
					win.Alerts().Alert("config reload failed: " + err.Error())
					return
				}
				win.Alerts().Alert("config file changed; restart to apply")
			})
		})
	}

	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func isInteractiveTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) &&
		term.IsTerminal(int(os.Stdout.Fd()))
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromPath(path)
	}
	return config.Load()
}

func watchedConfig(path string) string {
	if path == "" {
		path = config.ProjectPath()
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

func startTracing(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open trace file: %w", err)
	}
	tp, err := telemetry.NewTracerProvider("panekit-demo", f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = tp.Shutdown(ctx)
		f.Close()
	}, nil
}

func serveMetrics(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", telemetry.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("metrics server: %w", err)
	}
	return nil
}

func demoPages(palette style.Palette) *page.Collection {
	overview := page.New("Overview", 'o', component.Column(
		component.Row(
			component.NewFocusable(&fibonacci{n: 32}),
			component.New(staticText{title: "About", lines: []string{
				"Tab and Shift+Tab move focus.",
				"Esc returns focus to the window.",
			}}),
		),
		component.NewFocusable(&list{
			items:     []string{"alpha", "beta", "gamma", "delta"},
			highlight: palette.Highlight,
		}),
	)).
		WithStyle(palette.Primary).
		WithMenuEntries(menu.Entry('a', "Alert", func(ev menu.Event) {
			ev.Alerts.Alert("hello from the overview page")
		}))

	tools := page.New("Tools", 't', component.Row(
		component.NewFocusable(typing{}),
		component.NewFactory(component.FactoryFunc(func() component.Component {
			return component.New(staticText{title: "Built lazily", lines: []string{
				fmt.Sprintf("built at %s", time.Now().Format(time.Kitchen)),
			}})
		})),
	)).
		WithStyle(palette.Secondary).
		WithMenuEntries(menu.Entry('c', "Clock", func(ev menu.Event) {
			ev.Alerts.Alert(time.Now().Format(time.RFC1123))
		}))

	return page.NewCollection(overview, tools)
}
