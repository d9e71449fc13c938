package cli

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"skyspotter-service/internal/app"
	"skyspotter-service/internal/config"
	"skyspotter-service/internal/infra/bundle"
	"skyspotter-service/internal/infra/memory"
	pgloader "skyspotter-service/internal/infra/postgres"
	redisinfra "skyspotter-service/internal/infra/redis"
	transport "skyspotter-service/internal/transport/http"
)

// NewStartCmd builds the CLI subcommand to start the server.
func NewStartCmd(configPath, port *string) *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "Start the quiz server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), *configPath, *port)
		},
	}
}

func runServer(ctx context.Context, configPath, portFlag string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	if cfg.Postgres.URL != "" {
		if err := runMigrationsWithConfig(ctx, cfg); err != nil {
			return err
		}
	}

	finalPort := portFlag
	if finalPort == "" {
		finalPort = cfg.Server.Port
	}
	if finalPort == "" {
		finalPort = "8080"
	}

	var redisClient *redis.Client
	if cfg.Redis.Addr != "" {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
	}

	var pool *pgxpool.Pool
	if cfg.Postgres.URL != "" {
		pool, err = pgxpool.Connect(ctx, cfg.Postgres.URL)
		if err != nil {
			return err
		}
	}

	// Question pool tiers: Postgres (when configured) or bundled file,
	// then the hardcoded starter set, then full synthesis. The session
	// builder pads any remaining deficit, so the quiz always starts.
	var tiers []bundle.Source
	if pool != nil {
		tiers = append(tiers, pgloader.NewQuestionLoader(pool))
	}
	if cfg.Questions.File != "" {
		tiers = append(tiers, bundle.NewFileSource(cfg.Questions.File))
	}
	tiers = append(tiers, bundle.NewStaticSource(), bundle.NewGeneratedSource(20))
	source := bundle.NewTieredSource(tiers...)

	questionTTL := config.TTLDuration(cfg.Questions.TTL, 10*time.Minute)
	var catalog app.QuestionRepository
	if redisClient != nil {
		catalog = redisinfra.NewQuestionCache(redisClient, source, questionTTL)
	} else {
		catalog = memory.NewQuestionCache(source, questionTTL)
	}

	var progress app.ProgressStore
	var leaderboard app.LeaderboardService
	if redisClient != nil {
		progress = redisinfra.NewProgressStore(redisClient)
		leaderboard = redisinfra.NewLeaderboard(redisClient)
	} else {
		progress = memory.NewProgressStore()
		leaderboard = memory.NopLeaderboard{}
	}

	sessions := memory.NewSessionStore()
	ads := &memory.AdStub{Available: cfg.Ads.Enabled}
	entitlements := &memory.StaticEntitlements{Active: cfg.Entitlements.GrantAll}

	service := app.NewQuizService(sessions, catalog, progress, ads, entitlements, leaderboard)
	wsHandler := transport.NewWSHandler(service)

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	mux.HandleFunc("/ws", wsHandler.ServeWS)

	server := &http.Server{
		Addr:         ":" + finalPort,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Printf("starting skyspotter service on :%s", finalPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("failed to start server: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Println("shutting down server...")
	case <-ctx.Done():
		log.Println("context canceled, shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
