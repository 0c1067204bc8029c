package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/shenikar/maritime_incident_dedup/internal/config"
	"github.com/shenikar/maritime_incident_dedup/internal/dedup"
	"github.com/shenikar/maritime_incident_dedup/internal/repository"
	"github.com/shenikar/maritime_incident_dedup/internal/service"
	"github.com/shenikar/maritime_incident_dedup/internal/webhook"
	"github.com/shenikar/maritime_incident_dedup/pkg/logger"
	"github.com/shenikar/maritime_incident_dedup/pkg/postgres"
	redisclient "github.com/shenikar/maritime_incident_dedup/pkg/redis"
)

var (
	cfg          *config.Config
	dbpool       *pgxpool.Pool
	redisClient  *goredis.Client
	dedupService service.DeduplicationService
)

var rootCmd = &cobra.Command{
	Use:   "dedupctl",
	Short: "Operate the maritime incident deduplication engine",
	Long: `dedupctl runs deduplication passes and inspects merge chains against the
same Postgres and Redis the HTTP service uses. Configuration comes from the
environment (and .env), exactly as for the service.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup(cmd.Context())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		teardown()
	},
}

// setup подключается к хранилищам и собирает сервис так же, как HTTP-сервер
func setup(ctx context.Context) error {
	var err error
	cfg, err = config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.NewWithOutput(cfg.LogLevel, os.Stderr)

	profile, err := dedup.LoadProfile(cfg.DedupProfileFile)
	if err != nil {
		return fmt.Errorf("failed to load scoring profile: %w", err)
	}

	dbpool, err = postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	redisClient, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	dedupService = service.NewDeduplicationService(
		repository.NewRecordRepository(dbpool, redisClient, cfg.RecordCacheTTL),
		repository.NewRedisRunLock(redisClient, cfg.DedupLockTTL),
		webhook.NewRedisWebhookPublisher(redisClient),
		dedup.NewScorer(profile),
		dedup.NewSelector(profile),
		log,
		cfg,
	)
	return nil
}

func teardown() {
	if redisClient != nil {
		_ = redisClient.Close()
	}
	if dbpool != nil {
		dbpool.Close()
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		teardown()
		os.Exit(1)
	}
}
