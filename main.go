package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/expense-tracker/backend/internal/auth"
	"github.com/expense-tracker/backend/internal/config"
	"github.com/expense-tracker/backend/internal/controllers"
	"github.com/expense-tracker/backend/internal/events"
	"github.com/expense-tracker/backend/internal/ledger"
	"github.com/expense-tracker/backend/internal/models"
	"github.com/expense-tracker/backend/internal/router"
	"github.com/expense-tracker/backend/internal/store"
	"github.com/expense-tracker/backend/internal/store/cache"
	"github.com/expense-tracker/backend/internal/store/documents"
	"github.com/expense-tracker/backend/internal/store/postgres"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	_, formatSet := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!formatSet && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	if err := cfg.Validate(); err != nil {
		log.Fatal().Msg(err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		log.Fatal().Msg(err.Error())
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	// Create data directory
	if err := os.MkdirAll(cfg.DataDir, os.ModePerm); err != nil {
		return err
	}

	db, err := models.Connect(filepath.Join(cfg.DataDir, "expenses.db"))
	if err != nil {
		return err
	}
	defer closeDB(db)

	remote, closeRemote, err := openRemote(ctx, cfg, db)
	if err != nil {
		return err
	}
	defer closeRemote()

	localCache, err := openCache(cfg)
	if err != nil {
		return err
	}

	publisher, err := openPublisher(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			log.Error().Err(err).Msg("closing event publisher")
		}
	}()

	policy, err := ledger.ParseWritePolicy(cfg.WritePolicy)
	if err != nil {
		return err
	}

	ledgers := ledger.NewRegistry(ledger.Options{
		Remote:   remote,
		Cache:    localCache,
		Events:   publisher,
		Policy:   policy,
		Seed:     cfg.SeedSampleData,
		Location: cfg.Location(),
	})

	provider := auth.New(db, auth.Options{SessionTTL: cfg.SessionTTL})
	unsubscribe := provider.OnAuthStateChanged(ledgers.OnAuthStateChanged)
	defer unsubscribe()

	r, teardown, err := router.Config(cfg)
	if err != nil {
		return err
	}
	defer teardown()

	router.AttachRoutes(controllers.Controller{DB: db, Auth: provider, Ledgers: ledgers}, r.Group("/"))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", server.Addr).Msg("backend startup complete")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

// openRemote returns the configured remote store and a function closing it.
// The remote store is nil when no remote backend is configured.
func openRemote(ctx context.Context, cfg *config.Config, db *gorm.DB) (store.Remote, func(), error) {
	switch cfg.RemoteBackend {
	case "documents":
		return documents.New(db), func() {}, nil
	case "postgres":
		s, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, func() {}, err
		}
		return s, func() {
			if err := s.Close(); err != nil {
				log.Error().Err(err).Msg("closing postgres connection")
			}
		}, nil
	default:
		log.Warn().Msg("no remote backend configured, all expenses are kept locally")
		return nil, func() {}, nil
	}
}

func openCache(cfg *config.Config) (store.Cache, error) {
	switch cfg.CacheBackend {
	case "memcache":
		return cache.NewMemcache(cfg.MemcacheHosts...)
	case "memory":
		return cache.NewMemory(), nil
	default:
		return cache.NewFile(filepath.Join(cfg.DataDir, "cache")), nil
	}
}

func openPublisher(cfg *config.Config) (events.Publisher, error) {
	if cfg.AMQPURL == "" {
		return events.Nop{}, nil
	}
	return events.Dial(cfg.AMQPURL, cfg.AMQPExchange)
}

func closeDB(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error().Err(err).Msg("closing database")
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Error().Err(err).Msg("closing database")
	}
}
