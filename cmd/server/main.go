package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/TheGeniusEditor/Sultan/internal/config"
	"github.com/TheGeniusEditor/Sultan/internal/database"
	"github.com/TheGeniusEditor/Sultan/internal/router"
	"github.com/TheGeniusEditor/Sultan/internal/scheduler"
	"github.com/TheGeniusEditor/Sultan/internal/ws"
	"github.com/TheGeniusEditor/Sultan/migrations"
	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
)

func main() {
	log.Println("Starting Sultan...")

	cfg := config.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("parse database URL: %v", err)
	}
	defer pool.Close()

	// The process stays up even when the database is unreachable at boot;
	// requests fail downstream until it comes back.
	pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
	if err := pool.Ping(pingCtx); err != nil {
		log.Printf("ERROR: database connection: %v", err)
	} else {
		log.Println("Connected to PostgreSQL")
		if err := runMigrations(cfg.DatabaseURL); err != nil {
			log.Printf("ERROR: run migrations: %v", err)
		}
	}
	pingCancel()

	queries := database.New(pool)

	hub := ws.NewHub()
	go hub.Run(ctx)

	sched := scheduler.New(queries)
	go sched.Run(ctx)

	r := router.New(queries, pool, hub)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server is running at port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Could not listen on %s: %v", cfg.Port, err)
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)
	<-stopCh

	log.Println("Shutting down server...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown failed: %v", err)
	}

	log.Println("Sultan stopped gracefully.")
}

// runMigrations applies the embedded schema migrations.
func runMigrations(databaseURL string) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return err
	}

	db, err := sql.Open("postgres", databaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}

	log.Println("Migrations applied")
	return nil
}
