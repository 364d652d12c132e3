package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/iyasyr/iron-lms/internal/client/api"
	"github.com/iyasyr/iron-lms/internal/client/cli"
	"github.com/iyasyr/iron-lms/internal/client/config"
	"github.com/iyasyr/iron-lms/internal/client/session"
	"github.com/iyasyr/iron-lms/internal/client/tokenstore"
	"github.com/iyasyr/iron-lms/internal/client/transport"
	"github.com/iyasyr/iron-lms/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	zl, err := logging.NewProductionZap(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()
	logger := logging.NewZapLogger(zl)

	db, err := tokenstore.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "failed to open token database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	tokens := tokenstore.NewSQLiteStore(db)

	pipeline := transport.New(transport.Options{
		BaseURL:     cfg.ServerURL,
		GraphQLPath: cfg.GraphQLPath,
		Timeout:     cfg.RequestTimeout,
		Tokens:      tokens,
		Log:         logger,
	})

	auth := api.NewAuthAPI(pipeline)
	lms := api.NewLMS(pipeline)

	sess := session.NewManager(tokens, auth, logger)
	pipeline.SetEvictor(sess)

	app := cli.NewApp(cfg, sess, lms, logger)
	pipeline.SetRedirect(app.SessionExpired)

	// Restore any persisted session before the first prompt. A failed probe
	// just means the user starts anonymous.
	if err := sess.Init(ctx); err != nil {
		logger.Info(ctx, "no session restored", "error", err)
	}

	app.Run(ctx)
}
