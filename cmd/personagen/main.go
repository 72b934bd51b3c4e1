package main

import (
	"context"
	"flag"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/kieshlabs/personagen/internal/catalog"
	"github.com/kieshlabs/personagen/internal/config"
	"github.com/kieshlabs/personagen/internal/database"
	"github.com/kieshlabs/personagen/internal/identity"
	"github.com/kieshlabs/personagen/internal/persona"
	"github.com/kieshlabs/personagen/internal/pgwriter"
	"github.com/kieshlabs/personagen/internal/registry"
	"github.com/kieshlabs/personagen/internal/version"
	"github.com/kieshlabs/personagen/internal/xlsxwriter"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	count := flag.Int("count", 0, "number of personas to generate (overrides config)")
	out := flag.String("out", "", "output xlsx path (overrides config)")
	seed := flag.Int64("seed", 0, "batch random seed (overrides config, 0 = time-based)")
	flag.Parse()

	// Set up structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("starting personagen",
		"version", version.Version,
		"commit", version.Commit,
		"config", *configPath,
	)

	// Load configuration
	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.LoadAndValidate(*configPath)
		if err != nil {
			logger.Error("failed to load config", "error", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// Flag overrides
	if *count > 0 {
		cfg.Generation.Count = *count
	}
	if *out != "" {
		cfg.Output.XLSXPath = *out
	}
	if *seed != 0 {
		cfg.Generation.Seed = *seed
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Load the instrument catalog
	cat := catalog.Default()
	if cfg.Catalog.Path != "" {
		loaded, err := catalog.Load(cfg.Catalog.Path)
		if err != nil {
			logger.Error("failed to load catalog", "error", err, "path", cfg.Catalog.Path)
			os.Exit(1)
		}
		cat = loaded
	}
	logger.Info("catalog loaded", "instruments", cat.Len())

	// Seed the batch random source and the identity source together so a
	// fixed seed reproduces the full population.
	batchSeed := cfg.Generation.Seed
	if batchSeed == 0 {
		batchSeed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewPCG(uint64(batchSeed), uint64(batchSeed)+1))
	src := identity.NewFaker(uint64(batchSeed))
	reg := registry.New(cfg.Generation.HandleAttempts)

	gen, err := persona.NewGenerator(cat, src, reg, rng, persona.Policy{
		MinAge: cfg.Generation.MinAge,
		MaxAge: cfg.Generation.MaxAge,
	})
	if err != nil {
		logger.Error("failed to create generator", "error", err)
		os.Exit(1)
	}

	builder := persona.NewBuilder(gen, logger)
	logger.Info("generating population", "count", cfg.Generation.Count, "seed", batchSeed)

	profiles, err := builder.BuildAll(cfg.Generation.Count)
	if err != nil {
		logger.Error("generation failed", "error", err)
		os.Exit(1)
	}

	// Write the workbook
	if err := xlsxwriter.Write(cfg.Output.XLSXPath, cat, profiles, logger); err != nil {
		logger.Error("failed to write workbook", "error", err, "path", cfg.Output.XLSXPath)
		os.Exit(1)
	}

	// Optionally persist to Postgres
	if cfg.Output.Postgres.Enabled {
		if err := persistToPostgres(cfg, cat, profiles, logger); err != nil {
			logger.Error("failed to persist population", "error", err)
			os.Exit(1)
		}
	}

	logger.Info("done", "personas", len(profiles), "xlsx", cfg.Output.XLSXPath)
}

func persistToPostgres(cfg *config.Config, cat *catalog.Catalog, profiles []persona.Profile, logger *slog.Logger) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals while talking to the database
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logger.Info("received shutdown signal", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	logger.Info("connecting to database",
		"host", cfg.Output.Postgres.Host,
		"port", cfg.Output.Postgres.Port,
		"database", cfg.Output.Postgres.Name,
	)
	pool, err := database.Connect(ctx, cfg.Output.Postgres)
	if err != nil {
		return err
	}
	defer pool.Close()

	w := pgwriter.New(pool, logger)
	if err := w.EnsureSchema(ctx); err != nil {
		return err
	}
	return w.WritePopulation(ctx, uuid.New(), cat, profiles)
}
