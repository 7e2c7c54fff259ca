package server

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/quickcut/internal/audit"
	"github.com/BruksfildServices01/quickcut/internal/auth"
	"github.com/BruksfildServices01/quickcut/internal/config"
	"github.com/BruksfildServices01/quickcut/internal/db"
	"github.com/BruksfildServices01/quickcut/internal/infra/repository"
	"github.com/BruksfildServices01/quickcut/internal/kv"
	"github.com/BruksfildServices01/quickcut/internal/seed"
	"github.com/BruksfildServices01/quickcut/internal/timezone"
)

// App is the wired data layer shared by the HTTP server and the CLI.
type App struct {
	Config *config.Config
	Store  kv.Store
	Repo   *repository.ShopRepository
	Auth   *auth.Service
	Audit  *audit.Dispatcher
}

// Bootstrap opens the store, hydrates the collections and makes sure admin
// credentials exist. Sample data is loaded when SEED_SAMPLE_DATA is set.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, error) {
	store, err := db.NewStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	repo := repository.New(store, repository.Options{
		Prefix:   cfg.StoreKeyPrefix,
		Settings: repository.DefaultSettings(cfg.Timezone),
	})
	if err := repo.Load(ctx); err != nil {
		kv.Close(store)
		return nil, fmt.Errorf("load shop data: %w", err)
	}

	authSvc := auth.NewService(repo, auth.Options{
		Secret:         cfg.JWTSecret,
		SessionTimeout: cfg.SessionTimeout,
		Cost:           bcrypt.DefaultCost,
	})
	created, err := authSvc.EnsureCredentials(ctx, cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		kv.Close(store)
		return nil, fmt.Errorf("seed credentials: %w", err)
	}
	if created {
		log.Printf("[auth] default admin %q created; change the password after first login", cfg.AdminUsername)
	}

	if cfg.SeedSampleData {
		settings, err := repo.GetSettings(ctx)
		if err != nil {
			kv.Close(store)
			return nil, err
		}
		if _, err := seed.IfEmpty(ctx, repo, timezone.Today(settings.Timezone), timezone.NowIn(settings.Timezone)); err != nil {
			kv.Close(store)
			return nil, fmt.Errorf("seed sample data: %w", err)
		}
	}

	return &App{
		Config: cfg,
		Store:  store,
		Repo:   repo,
		Auth:   authSvc,
		Audit:  audit.NewDispatcher(audit.New(repo)),
	}, nil
}

// Close drains pending feed events before releasing the store.
func (a *App) Close() {
	a.Audit.Close()
	if err := kv.Close(a.Store); err != nil {
		log.Printf("close store: %v", err)
	}
}
