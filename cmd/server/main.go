package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"github.com/playperu/trailmap/internal/catalog"
	"github.com/playperu/trailmap/internal/config"
	"github.com/playperu/trailmap/internal/handler/health"
	"github.com/playperu/trailmap/internal/handler/wsclick"
	"github.com/playperu/trailmap/internal/render"
	"github.com/playperu/trailmap/internal/server"
	"github.com/playperu/trailmap/internal/web"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, stdout io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	// --- Hotspots ---
	cat, err := catalog.Load(ctx, logger, catalog.Source{
		File:   cfg.HotspotsFile,
		DBPath: cfg.DBPath,
		Radius: cfg.HotspotRadius,
	})
	if err != nil {
		return fmt.Errorf("loading hotspots: %w", err)
	}
	defer cat.Close()
	logger.Info("hotspots loaded",
		"origin", cat.Origin,
		"count", cat.Map.Len(),
		"radius", cat.Map.Radius(),
	)

	// --- Map image ---
	base, err := render.LoadImage(cfg.MapImage)
	if err != nil {
		return fmt.Errorf("loading map image: %w", err)
	}
	img, err := render.Render(base, cat.Map.Regions(), render.DefaultStyle(cat.Map.Radius()))
	if err != nil {
		return fmt.Errorf("rendering map: %w", err)
	}

	static := web.FS()
	if cfg.SPADir != "" {
		static = os.DirFS(cfg.SPADir)
		logger.Info("serving SPA", "dir", cfg.SPADir)
	}

	site, err := server.NewSite(cfg.MapTitle, cat.Map, img, static)
	if err != nil {
		return err
	}
	logger.Info("map rendered", "path", cfg.MapImage, "width", site.Width, "height", site.Height)

	// --- HTTP Server ---
	checks := map[string]health.Checker{}
	if cat.Store != nil {
		checks["sqlite"] = health.CheckerFunc(cat.Store.Ping)
	}

	srv := server.New(cfg.HTTPAddr, logger, site, func(r chi.Router) {
		r.Mount("/healthz", health.NewHandler(logger, checks).Routes())
		r.Mount("/ws", wsclick.NewHandler(logger, cat.Map).Routes())
	})

	// --- Run ---
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting http server", "addr", cfg.HTTPAddr)
		return srv.Run(gctx)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down http server")
		return srv.Shutdown(context.Background())
	})

	return g.Wait()
}
