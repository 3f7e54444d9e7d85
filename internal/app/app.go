package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/markmahoney/the-grid/internal/bungie"
	"github.com/markmahoney/the-grid/internal/catalog"
	"github.com/markmahoney/the-grid/internal/config"
	"github.com/markmahoney/the-grid/internal/grid"
	"github.com/markmahoney/the-grid/internal/tables"
	"github.com/markmahoney/the-grid/internal/wishlist"
)

// Run executes the whole pipeline and returns the desired process exit
// code.
func Run(args []string) int {
	if err := run(context.Background(), args); err != nil {
		if ee, ok := asExitError(err); ok {
			if ee.Err != nil && ee.Code != 0 {
				fmt.Fprintln(os.Stderr, ee.Err)
			}
			return ee.Code
		}
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Load(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return Exit(0)
		}
		return ExitWithError(2, err)
	}

	log := newLogger(cfg.Verbose)
	start := time.Now()

	// All reference data is fetched to completion before any resolution or
	// matching starts. Any fetch failure aborts the run; there is no retry
	// and no partial output.
	client := bungie.NewClient(cfg.APIKey)
	log.Info().Msg("fetching catalog definitions")
	defs, err := client.FetchDefinitions(ctx)
	if err != nil {
		return err
	}
	log.Info().
		Int("categories", len(defs.Categories)).
		Int("items", len(defs.Items)).
		Int("plug_sets", len(defs.PlugSets)).
		Msg("catalog fetched")

	ix, err := catalog.Build(defs, log)
	if err != nil {
		return err
	}

	cols := grid.Columns{
		Weapon: cfg.Grid.Columns.Weapon,
		Perk1:  cfg.Grid.Columns.Perk1,
		Perk2:  cfg.Grid.Columns.Perk2,
	}
	rows, err := grid.Load(ctx, cfg.Grid.Source, cfg.Grid.Sheet, cols)
	if err != nil {
		return err
	}

	matches := wishlist.MatchRows(rows, ix, log)

	if err := writeWishlist(cfg.Wishlist, matches); err != nil {
		return err
	}
	log.Info().
		Int("rows", len(rows)).
		Int("matched", len(matches)).
		Int("skipped", len(rows)-len(matches)).
		Str("out", cfg.Wishlist.Out).
		Msg("wishlist written")

	if cfg.ExportTables {
		if err := tables.Export(cfg.Tables.Out, ix); err != nil {
			return fmt.Errorf("export lookup tables: %w", err)
		}
		log.Info().Str("out", cfg.Tables.Out).Msg("lookup tables exported")
	}

	log.Info().Dur("elapsed", time.Since(start)).Msg("done")
	return nil
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

func writeWishlist(cfg config.WishlistConfig, matches []wishlist.Match) error {
	if dir := filepath.Dir(cfg.Out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(cfg.Out)
	if err != nil {
		return err
	}
	if err := wishlist.Write(f, cfg.Title, cfg.Description, matches); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
