package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/niteshnanu12/vybe/internal/adapters/cache"
	adapterHTTP "github.com/niteshnanu12/vybe/internal/adapters/handler/http"
	"github.com/niteshnanu12/vybe/internal/adapters/repository"
	"github.com/niteshnanu12/vybe/internal/adapters/snapshot"
	"github.com/niteshnanu12/vybe/internal/config"
	"github.com/niteshnanu12/vybe/internal/core/domain"
	"github.com/niteshnanu12/vybe/internal/core/services"
	"github.com/niteshnanu12/vybe/internal/core/workers"
	"github.com/niteshnanu12/vybe/internal/platform/clock"
)

// app owns everything main has to tear down on shutdown.
type app struct {
	router   *gin.Engine
	tokens   *services.TokenService
	registry *services.WorkoutRegistry
	workouts *adapterHTTP.WorkoutHandler
	db       *sqlx.DB
	redis    *redis.Client
}

func newApp(ctx context.Context, cfg *config.Config, clk clock.Clock, scheduler clock.Scheduler) (*app, error) {
	a := &app{}

	defaults, err := cfg.ProfileDefaults()
	if err != nil {
		return nil, err
	}

	var (
		profiles   domain.ProfileRepository
		records    domain.DailyRecordRepository
		activities domain.ActivityRepository
	)

	switch cfg.Storage {
	case config.StoragePostgres:
		log.Printf("Connecting to database %s", cfg.DSNForLog())
		db, err := sqlx.Connect("pgx", cfg.DSN())
		if err != nil {
			return nil, fmt.Errorf("connect database: %w", err)
		}
		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(25)
		db.SetConnMaxLifetime(5 * time.Minute)

		if err := repository.Migrate(ctx, db.DB, "up"); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate database: %w", err)
		}
		log.Println("Database connected and migrated.")

		a.db = db
		profiles = repository.NewPostgresProfileRepository(db)
		records = repository.NewPostgresRecordRepository(db)
		activities = repository.NewPostgresActivityRepository(db)
	default:
		log.Println("WARNING: using in-memory storage, data is lost on restart")
		profiles = repository.NewInMemoryProfileRepository()
		records = repository.NewInMemoryRecordRepository()
		activities = repository.NewInMemoryActivityRepository()
	}

	if cfg.RedisEnabled() {
		rdb, err := cache.NewRedisClient(ctx, cache.Options{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			log.Printf("WARNING: Redis unavailable, continuing without cache: %v", err)
		} else {
			log.Println("Redis connected.")
			a.redis = rdb
			profiles = repository.NewCachedProfileRepository(profiles, rdb)
		}
	}

	snapshots := services.SnapshotStoreFactory(snapshot.FileFactory(cfg.SnapshotDir))
	if cfg.SnapshotBackend == config.SnapshotRedis && a.redis != nil {
		snapshots = services.SnapshotStoreFactory(snapshot.RedisFactory(a.redis))
	}

	streakWorker := workers.NewStreakWorker(profiles, records, clk)
	streakWorker.Start(ctx)

	profileSvc := services.NewProfileService(profiles, defaults)
	logSvc := services.NewLogService(records, profileSvc, clk, streakWorker)
	scoreSvc := services.NewScoreService(records, profileSvc, logSvc)
	activitySvc := services.NewActivityService(activities, clk)
	a.registry = services.NewWorkoutRegistry(snapshots, activitySvc, clk, scheduler)
	a.tokens = services.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, cfg.TokenTTL)
	a.workouts = adapterHTTP.NewWorkoutHandler(a.registry)

	a.router = adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		ScoreHandler:    adapterHTTP.NewScoreHandler(scoreSvc, clk),
		LogHandler:      adapterHTTP.NewLogHandler(logSvc, clk),
		ProfileHandler:  adapterHTTP.NewProfileHandler(profileSvc),
		ActivityHandler: adapterHTTP.NewActivityHandler(activitySvc, clk),
		WorkoutHandler:  a.workouts,
		Tokens:          a.tokens,
		DB:              a.db,
		Redis:           a.redis,
		RateLimitPerMin: cfg.RateLimitPerMin,
		StartTime:       clk.Now(),
	})

	return a, nil
}

// Close stops workout ticks before releasing connections, so no tick writes
// to a closed Redis client.
func (a *app) Close() {
	a.workouts.Close()
	a.registry.Close()
	if a.redis != nil {
		a.redis.Close()
	}
	if a.db != nil {
		a.db.Close()
	}
}
