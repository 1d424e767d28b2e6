package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/countries-explorer/internal/client/api"
	"github.com/iudanet/countries-explorer/internal/client/auth"
	"github.com/iudanet/countries-explorer/internal/client/cli"
	"github.com/iudanet/countries-explorer/internal/client/countries"
	"github.com/iudanet/countries-explorer/internal/client/iocli"
	"github.com/iudanet/countries-explorer/internal/client/session"
	"github.com/iudanet/countries-explorer/internal/client/storage"
	"github.com/iudanet/countries-explorer/internal/client/storage/boltdb"
	"github.com/iudanet/countries-explorer/internal/client/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	// Глобальные флаги
	showVersion := flag.Bool("version", false, "Show version information")
	apiURL := flag.String("api", api.DefaultBaseURL, "REST Countries base URL")
	dbPath := flag.String("db", "countries-explorer.db", "Path to local database")
	storageEngine := flag.String("storage", "bolt", "Local storage engine: bolt or sqlite")
	sessionTTL := flag.Duration("session-ttl", session.DefaultTTL, "Session lifetime")

	flag.Parse()

	if *showVersion {
		printVersion()
		return 0
	}

	io := iocli.NewStdio()

	// Получаем команду
	args := flag.Args()
	if len(args) == 0 {
		cli.New(nil, nil, io).PrintUsage()
		return 1
	}

	command := args[0]

	ctx := context.Background()

	// Открываем локальное хранилище
	store, err := openStorage(ctx, *storageEngine, *dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		return 1
	}
	defer func() {
		if err := store.Close(); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	// Собираем сервисы
	tokens := session.NewService(store, *sessionTTL)
	authService := auth.NewService(store, tokens)
	countriesService := countries.NewService(api.NewClient(*apiURL))

	c := cli.New(countriesService, authService, io)

	if err := c.Run(ctx, command, args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

// openStorage открывает выбранный движок локального хранилища
func openStorage(ctx context.Context, engine, dbPath string) (storage.KV, error) {
	switch engine {
	case "bolt":
		return boltdb.New(ctx, dbPath)
	case "sqlite":
		return sqlite.New(ctx, dbPath)
	default:
		return nil, fmt.Errorf("unknown storage engine: %s (expected bolt or sqlite)", engine)
	}
}

func printVersion() {
	fmt.Printf("Countries Explorer\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
