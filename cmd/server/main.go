package main

import (
	"context"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/csg33k/madrasah-enrollment/internal/adapters/pdf"
	sqliteadapter "github.com/csg33k/madrasah-enrollment/internal/adapters/sqlite"
	"github.com/csg33k/madrasah-enrollment/internal/admin"
	"github.com/csg33k/madrasah-enrollment/internal/handlers"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "enroll",
	})

	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file loaded", "err", err)
	}
	dsn := envOr("DB_PATH", "enroll.db")
	port := envOr("PORT", "8080")
	adminUser := envOr("ADMIN_USERNAME", "admin")
	adminPass := envOr("ADMIN_PASSWORD", "admin23435")

	repo, err := sqliteadapter.New(dsn)
	if err != nil {
		logger.Fatal("failed to open database", "err", err)
	}
	defer repo.Close()

	admins := admin.NewService(repo)
	if err := admins.Seed(context.Background(), adminUser, adminPass); err != nil {
		logger.Fatal("failed to seed admin account", "err", err)
	}

	h := handlers.New(repo, admins, pdf.New(), logger)

	logger.Info("Madrasah enrollment running", "url", "http://localhost:"+port, "db", dsn)
	if err := http.ListenAndServe(":"+port, h.Routes()); err != nil {
		logger.Fatal("server stopped", "err", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
