// Command recommend answers counter questions from the data files without
// Discord, for checking data edits.
//
//	recommend -hero franco
//	recommend -allies "layla miya" -enemies "fanny saber"
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/KirkDiggler/counterpick-bot/internal/catalog"
	"github.com/KirkDiggler/counterpick-bot/internal/config"
	"github.com/KirkDiggler/counterpick-bot/internal/domain/hero"
	"github.com/KirkDiggler/counterpick-bot/internal/engine"
	apperr "github.com/KirkDiggler/counterpick-bot/internal/errors"
	"github.com/KirkDiggler/counterpick-bot/internal/render"
	"github.com/KirkDiggler/counterpick-bot/internal/services/counters"
)

var errUsage = errors.New("one of -hero, -allies or -enemies is required")

func main() {
	log.SetPrefix("[RECOMMEND] ")
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		log.Fatal(err)
	}
}

type options struct {
	data    config.DataConfig
	hero    string
	allies  string
	enemies string
}

func parseOptions(args []string) (*options, error) {
	data, err := config.LoadData()
	if err != nil {
		return nil, err
	}

	opts := &options{data: *data}
	fs := flag.NewFlagSet("recommend", flag.ContinueOnError)
	fs.StringVar(&opts.data.HeroesFile, "heroes", opts.data.HeroesFile, "Path to the heroes file")
	fs.StringVar(&opts.data.TanksFile, "tanks", opts.data.TanksFile, "Path to the tanks file")
	fs.StringVar(&opts.data.RoamerTag, "roamer", opts.data.RoamerTag, "Role tag that merges tank data into a profile")
	fs.StringVar(&opts.hero, "hero", "", "Show one character's profile")
	fs.StringVar(&opts.allies, "allies", "", "Allied characters separated by spaces")
	fs.StringVar(&opts.enemies, "enemies", "", "Enemy characters separated by spaces")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.hero == "" && opts.allies == "" && opts.enemies == "" {
		return nil, errUsage
	}
	return opts, nil
}

func run(args []string, out io.Writer) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}

	cat, err := catalog.LoadFiles(opts.data.HeroesFile, opts.data.TanksFile)
	if err != nil {
		return fmt.Errorf("failed to load data: %w", err)
	}

	svc := counters.NewService(&counters.ServiceConfig{
		Catalog: catalog.NewStore(cat),
		Engine:  engine.New(&engine.Config{RoamerTag: opts.data.RoamerTag}),
	})
	ctx := context.Background()

	if opts.hero != "" {
		profile, err := svc.LookupProfile(ctx, opts.hero)
		if apperr.IsNotFound(err) {
			_, err = fmt.Fprintln(out, render.NotFound(opts.hero))
			return err
		}
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, render.Profile(profile))
		return err
	}

	report, err := svc.Analyze(ctx, hero.SplitNames(opts.allies), hero.SplitNames(opts.enemies))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, render.Report(report.Warnings, report.Recommendation))
	return err
}
