package integration

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/migrate"

	"skyspotter-service/internal/app"
	"skyspotter-service/internal/domain"
	"skyspotter-service/internal/infra/memory"
	pgloader "skyspotter-service/internal/infra/postgres"
	pgmigrations "skyspotter-service/internal/infra/postgres/migrations"
	infraredis "skyspotter-service/internal/infra/redis"
)

func TestQuizCompletionEndToEnd(t *testing.T) {
	ctx := context.Background()
	requireDocker(t)

	pgURL, pgCleanup := startPostgres(t, ctx)
	defer pgCleanup()
	redisURL, redisCleanup := startRedis(t, ctx)
	defer redisCleanup()

	seedQuestions(t, ctx, pgURL, seedPool())

	pool, err := pgxpool.Connect(ctx, pgURL)
	if err != nil {
		t.Fatalf("connect pg: %v", err)
	}
	defer pool.Close()

	redisClient, err := redisClientFromURL(redisURL)
	if err != nil {
		t.Fatalf("redis client: %v", err)
	}

	catalog := infraredis.NewQuestionCache(redisClient, pgloader.NewQuestionLoader(pool), 5*time.Minute)
	progress := infraredis.NewProgressStore(redisClient)
	leaderboard := infraredis.NewLeaderboard(redisClient)

	service := app.NewQuizService(
		memory.NewSessionStore(),
		catalog,
		progress,
		&memory.AdStub{},
		&memory.StaticEntitlements{},
		leaderboard,
	)

	started, err := service.Start(ctx, "p1", domain.CategoryCivil, domain.DifficultyEasy, 10)
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if started.First.Total != 10 {
		t.Fatalf("expected 10 questions, got %d", started.First.Total)
	}

	// Every seeded question shares a correct answer, so a full run is
	// 10 correct Easy answers.
	var summary *app.CompletionSummary
	for i := 0; i < 10; i++ {
		if _, err := service.Answer(ctx, "p1", "Boeing 747"); err != nil {
			t.Fatalf("answer %d: %v", i, err)
		}
		outcome, err := service.Advance(ctx, "p1")
		if err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
		if outcome.Completed {
			summary = outcome.Summary
		}
	}
	if summary == nil {
		t.Fatalf("expected completion after 10 advances")
	}
	if summary.Result.Score != 100 {
		t.Fatalf("expected 100 points, got %d", summary.Result.Score)
	}
	if summary.Stats.CurrentStreak != 1 {
		t.Fatalf("expected streak 1, got %d", summary.Stats.CurrentStreak)
	}

	// Durable record survives a fresh load from Redis.
	stats, err := progress.Load(ctx, "p1")
	if err != nil {
		t.Fatalf("load stats: %v", err)
	}
	if stats.TotalScore != 100 || stats.QuestionsAnswered != 10 || stats.CorrectAnswers != 10 {
		t.Fatalf("persisted stats mismatch: %+v", stats)
	}

	score, err := redisClient.ZScore(ctx, "skyspotter:board:total-score", "p1").Result()
	if err != nil || score != 100 {
		t.Fatalf("expected leaderboard total 100, got %v err %v", score, err)
	}
}

func seedPool() []domain.Question {
	pool := make([]domain.Question, 0, 10)
	for i := 0; i < 10; i++ {
		pool = append(pool, domain.Question{
			ID:            fmt.Sprintf("seed-%d", i+1),
			ImageRef:      fmt.Sprintf("img_%d", i+1),
			CorrectAnswer: "Boeing 747",
			Options:       []string{"Boeing 747", "Airbus A320", "Cessna 172", "Boeing 737"},
			Category:      domain.CategoryCivil,
			Difficulty:    domain.DifficultyEasy,
			Explanation:   "Upper-deck hump.",
		})
	}
	return pool
}

func startPostgres(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_USER": "quiz", "POSTGRES_PASSWORD": "quizpass", "POSTGRES_DB": "quizdb"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(60 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start postgres: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("port: %v", err)
	}
	dsn := fmt.Sprintf("postgres://quiz:quizpass@%s:%s/quizdb?sslmode=disable", host, port.Port())
	return dsn, func() {
		_ = container.Terminate(ctx)
	}
}

func startRedis(t *testing.T, ctx context.Context) (string, func()) {
	t.Helper()
	req := tc.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp").WithStartupTimeout(30 * time.Second),
	}
	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		if strings.Contains(err.Error(), "Cannot connect to the Docker daemon") {
			t.Skipf("docker not available: %v", err)
		}
		t.Fatalf("start redis: %v", err)
	}
	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("redis host: %v", err)
	}
	port, err := container.MappedPort(ctx, "6379/tcp")
	if err != nil {
		t.Fatalf("redis port: %v", err)
	}
	url := fmt.Sprintf("redis://%s:%s", host, port.Port())
	return url, func() {
		_ = container.Terminate(ctx)
	}
}

func seedQuestions(t *testing.T, ctx context.Context, dsn string, pool []domain.Question) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	db := bun.NewDB(sqldb, pgdialect.New())
	defer db.Close()

	migrator := migrate.NewMigrator(db, pgmigrations.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("migrator init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	for _, q := range pool {
		data, err := json.Marshal(q)
		if err != nil {
			t.Fatalf("marshal question: %v", err)
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO questions (id, data) VALUES (?, ?::jsonb) ON CONFLICT (id) DO UPDATE SET data=EXCLUDED.data`, q.ID, string(data)); err != nil {
			t.Fatalf("insert question: %v", err)
		}
	}
}

func redisClientFromURL(url string) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	}), nil
}

func requireDocker(t *testing.T) {
	t.Helper()
	if _, err := tc.NewDockerProvider(); err != nil {
		t.Skipf("docker not available: %v", err)
	}
}
