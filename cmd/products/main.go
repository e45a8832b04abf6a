package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"ProductAPI/internal/catalog"
	"ProductAPI/internal/config"
	"ProductAPI/internal/web"
	"ProductAPI/pkg/kit"
)

func main() {
	service := "products"

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", service, err)
		os.Exit(1)
	}

	log, err := kit.NewLogger(service, cfg.Log.Level, cfg.Log.Format == config.LogFormatConsole)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: build logger: %v\n", service, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	products, err := catalog.Bundled()
	if err != nil {
		log.Fatal("load catalog failed", zap.Error(err))
	}
	log.Info("catalog loaded", zap.Int("products", products.Len()))

	assets, err := web.Assets(cfg.StaticDir)
	if err != nil {
		log.Fatal("open static assets failed", zap.Error(err), zap.String("dir", cfg.StaticDir))
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	h := catalog.NewHandler(
		&catalog.Server{Catalog: products, Log: log},
		catalog.HTTPDeps{
			Log:            log,
			Service:        service,
			Registry:       reg,
			Static:         web.NewStatic(assets),
			MetricsEnabled: cfg.Metrics.Enabled,
			MetricsToken:   cfg.Metrics.Token,
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := kit.ServerOptions{Addr: cfg.Addr(), ShutdownTimeout: cfg.ShutdownTimeout}
	if err := kit.RunHTTPServer(ctx, opts, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
	log.Info("http server stopped")
}
