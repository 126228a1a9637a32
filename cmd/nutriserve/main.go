package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"

	"mcp-nutriserve/internal/server"
)

func main() {
	// A missing .env is fine; the environment and flags still apply.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to load .env: %v", err)
	}

	var (
		transport = flag.String("transport", "http", "Transport mode: http")
		port      = flag.Int("port", envInt("NUTRISERVE_PORT", 8012), "Port for HTTP transport")
		host      = flag.String("host", envString("NUTRISERVE_HOST", "0.0.0.0"), "Host address")
		address   = flag.String("address", "", "Address (alias for host)")
		dbPath    = flag.String("db-path", envString("NUTRISERVE_DB_PATH", "/data/nutriserve.db"), "Database path")
		version   = flag.Bool("version", false, "Show version")
	)
	flag.Parse()

	if *version {
		fmt.Printf("nutriserve version %s\n", server.Version)
		os.Exit(0)
	}

	if *transport != "http" {
		log.Fatalf("Unsupported transport %q", *transport)
	}

	// Use address if provided, otherwise use host
	hostAddr := *host
	if *address != "" {
		hostAddr = *address
	}

	config := &server.Config{
		Transport: *transport,
		Host:      hostAddr,
		Port:      *port,
		DBPath:    *dbPath,
	}

	srv, err := server.NewNutriServeServer(config)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-sigCh:
		log.Println("Received shutdown signal")
	case err := <-errCh:
		log.Printf("Server error: %v", err)
	}

	log.Println("Shutting down...")
	cancel()
	if err := srv.Stop(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Ignoring invalid %s=%q: %v", key, v, err)
		return fallback
	}
	return n
}
