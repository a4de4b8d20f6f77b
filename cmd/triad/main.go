package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/wilhg/triad/pkg/assembler"
	"github.com/wilhg/triad/pkg/bus"
	"github.com/wilhg/triad/pkg/config"
	"github.com/wilhg/triad/pkg/executor"
	"github.com/wilhg/triad/pkg/ingress"
	"github.com/wilhg/triad/pkg/otelx"
	"github.com/wilhg/triad/pkg/reasoner"
	"github.com/wilhg/triad/pkg/reasoning"
	"github.com/wilhg/triad/pkg/recall"
	"github.com/wilhg/triad/pkg/store/entstore"
	"github.com/wilhg/triad/pkg/tool"
	"github.com/wilhg/triad/pkg/tool/tools"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

const httpShutdownGrace = 5 * time.Second

func main() {
	var showVersion bool
	flag.BoolVar(&showVersion, "version", false, "print version and exit")
	flag.Parse()

	if showVersion {
		fmt.Printf("triad %s (commit=%s, date=%s)\n", version, commit, date)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := otelx.Init(ctx, otelx.Config{ServiceName: "triad", UseStdout: os.Getenv("TRIAD_TRACE_STDOUT") == "1", SampleRatio: cfg.TraceSampleRatio})
	if err != nil {
		logger.Error("failed to initialize tracing", "error", err)
		os.Exit(1)
	}
	defer func() { _ = shutdown(context.Background()) }()

	registerTools()

	st, err := entstore.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("failed to open store", "error", err)
		os.Exit(1)
	}
	defer func() { _ = st.Close() }()
	if err := st.Migrate(ctx); err != nil {
		logger.Error("failed to migrate store", "error", err)
		os.Exit(1)
	}

	b := bus.NewMemoryBus(256)

	var reasonerOpts []reasoner.Option
	estimator, eerr := assembler.NewTikTokenEstimator("gpt-4o")
	if eerr != nil {
		logger.Warn("tiktoken estimator unavailable, falling back to rune-length estimate", "error", eerr)
		estimator = nil
	}
	reasonerOpts = append(reasonerOpts, reasoner.WithContextBudget(cfg.ContextMaxTokens, estimator))
	if cfg.SimilarityTopK > 0 {
		reasonerOpts = append(reasonerOpts, reasoner.WithRecall(recall.NewFakeEmbedder(16), recall.NewMemoryStore(), cfg.SimilarityTopK))
	}

	reasonerWorker := reasoner.New(st, b, reasoning.FixtureReasoner, cfg.ReceiptStaleThreshold, cfg.TopicAction, logger, reasonerOpts...)
	executorWorker := executor.New(st, cfg.ReceiptStaleThreshold, nil, logger)

	go func() {
		if err := b.Subscribe(ctx, cfg.TopicReasoning, reasonerWorker.Handle); err != nil && ctx.Err() == nil {
			logger.Error("reasoner subscriber stopped", "error", err)
		}
	}()
	go func() {
		if err := b.Subscribe(ctx, cfg.TopicAction, executorWorker.Handle); err != nil && ctx.Err() == nil {
			logger.Error("executor subscriber stopped", "error", err)
		}
	}()

	srv := ingress.New(st, b, cfg.TopicReasoning)
	httpServer := &http.Server{Addr: cfg.HTTPAddr, Handler: otelhttp.NewHandler(srv.Mux(), "ingress")}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), httpShutdownGrace)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	logger.Info("triad ingress listening", "addr", cfg.HTTPAddr)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("http server error", "error", err)
		os.Exit(1)
	}
}

func registerTools() {
	for _, t := range []tool.Tool{
		tools.SearchTool{},
		tools.CalculateTool{},
		tools.SummarizeTool{},
		tools.TranslateTool{},
	} {
		if err := tool.Register(t); err != nil {
			// Registration only fails on a programming error (duplicate
			// name, nil tool); a panic here is appropriate at startup.
			panic(err)
		}
	}
}
