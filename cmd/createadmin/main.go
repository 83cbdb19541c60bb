// Command createadmin seeds an admin account so the dashboard is usable
// on a fresh database.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"cloudpillers-api/internal/auth"
	"cloudpillers-api/internal/config"
	"cloudpillers-api/internal/domain"
	"cloudpillers-api/internal/infrastructure/database"
	"cloudpillers-api/internal/logger"
	"cloudpillers-api/internal/repository"
)

func main() {
	name := flag.String("name", "Admin User", "display name for the account")
	email := flag.String("email", "admin@cloudpillers.com", "login email")
	password := flag.String("password", "", "login password (required)")
	flag.Parse()

	if *password == "" {
		fmt.Fprintln(os.Stderr, "usage: createadmin -email admin@example.com -password <password> [-name \"Admin User\"]")
		os.Exit(2)
	}
	if len(*password) < 6 {
		fmt.Fprintln(os.Stderr, "password must be at least 6 characters")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("Failed to load configuration",
			slog.String("error", err.Error()))
	}

	ctx := context.Background()
	pool, err := database.NewPostgres(ctx, database.PoolConfig{
		Host:              cfg.DBHost,
		Port:              cfg.DBPort,
		User:              cfg.DBUser,
		Password:          cfg.DBPassword,
		Database:          cfg.DBName,
		SSLMode:           cfg.DBSSLMode,
		MaxConns:          cfg.DBMaxConns,
		MinConns:          cfg.DBMinConns,
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database",
			slog.String("error", err.Error()))
	}
	defer pool.Close()

	hash, err := auth.HashPassword(*password)
	if err != nil {
		logger.Fatal("Failed to hash password",
			slog.String("error", err.Error()))
	}

	users := repository.NewPostgresUserRepository(pool)
	user := &domain.User{
		Name:         *name,
		Email:        *email,
		Role:         domain.RoleAdmin,
		PasswordHash: hash,
	}
	if err := users.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			logger.Fatal("Admin user already exists with this email",
				slog.String("email", *email))
		}
		logger.Fatal("Failed to create admin user",
			slog.String("error", err.Error()))
	}

	fmt.Println("Admin user created successfully")
	fmt.Println("Email:", user.Email)
	fmt.Println("Name:", user.Name)
	fmt.Println("Role:", user.Role)
}
