package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/oksasatya/wisata-api/config"
	pginfra "github.com/oksasatya/wisata-api/internal/infrastructure/postgres"
	"github.com/oksasatya/wisata-api/pkg/helpers"
)

// seed upserts an admin account from SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName+"-seed", cfg.Env)

	email := strings.ToLower(strings.TrimSpace(os.Getenv("SEED_ADMIN_EMAIL")))
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	name := os.Getenv("SEED_ADMIN_NAME")
	if name == "" {
		name = "Administrator"
	}
	if email == "" || len(password) < 8 {
		log.Fatal("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD (min 8 chars) are required")
	}

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), pginfra.PoolOptions{MaxConns: 2, MinConns: 0, MaxConnLife: cfg.DBMaxConnLife})
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to postgres")
	}
	defer pool.Close()

	if err := pginfra.RunMigrations(cfg.PostgresDSN(), cfg.MigrationsDir, logger); err != nil {
		logger.WithError(err).Fatal("migration failed")
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		logger.WithError(err).Fatal("failed to hash password")
	}

	var id int64
	err = pool.QueryRow(ctx, `
		INSERT INTO users (email, name, password_hash, role)
		VALUES ($1, $2, $3, 'admin')
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name, password_hash = EXCLUDED.password_hash, role = 'admin', updated_at = now()
		RETURNING id
	`, email, name, hash).Scan(&id)
	if err != nil {
		logger.WithError(err).Fatal("failed to seed admin")
	}
	logger.WithField("user_id", id).WithField("email", email).Info("seeded admin user")
}
