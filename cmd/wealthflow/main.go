package main

import (
	"context"
	"flag"
	"os"
	"path"
	"time"

	"github.com/dafibh/wealthflow/wealthflow-backend/internal/advisor"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/cli"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/config"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/repository"
	"github.com/dafibh/wealthflow/wealthflow-backend/internal/service"
	"github.com/google/subcommands"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Only warnings reach the terminal unless -v is given
	verbose := flag.Bool("v", false, "verbose logging")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	// Commands are registered against a lazily built app so -help works
	// without a reachable store
	app := &cli.App{Out: os.Stdout, Err: os.Stderr, Render: cli.TerminalRenderer()}
	for _, c := range cli.Commands(app) {
		commander.Register(c, "")
	}

	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	level := zerolog.WarnLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)

	ctx := context.Background()

	// Help-style invocations need no store
	if flag.NArg() == 0 || isBuiltin(flag.Arg(0)) {
		os.Exit(int(commander.Execute(ctx)))
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load timezone")
	}

	repo, closeRepo, err := repository.Open(ctx, cfg)
	if err != nil {
		log.Fatal().Err(err).Str("driver", cfg.StorageDriver).Msg("Failed to open snapshot store")
	}

	snapshots := service.NewSnapshotService(repo, cfg.SnapshotKey)
	if err := snapshots.Load(ctx); err != nil {
		closeRepo()
		log.Fatal().Err(err).Msg("Failed to load snapshot")
	}

	generator, err := advisor.New(ctx, cfg.Advice)
	if err != nil {
		closeRepo()
		log.Fatal().Err(err).Msg("Failed to create advice provider")
	}

	*app = *cli.NewApp(snapshots, generator, loc, cfg.Advice.Timeout, cfg.Currency, os.Stdout, os.Stderr)

	status := commander.Execute(ctx)
	closeRepo()
	os.Exit(int(status))
}

func isBuiltin(name string) bool {
	switch name {
	case "help", "flags", "commands":
		return true
	}
	return false
}
