package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/MKhiriev/testgen/internal/adapter"
	"github.com/MKhiriev/testgen/internal/config"
	"github.com/MKhiriev/testgen/internal/logger"
	"github.com/MKhiriev/testgen/internal/store"
	"github.com/MKhiriev/testgen/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: testgen-client <command> [arguments]

commands:
  list        -project <code>          list dashboards of a project
  show        -id <dashboard-id>       show one scorecard
  recalculate -id <dashboard-id>       refresh scores of one dashboard
  sync        -project <code>          fetch and cache all scorecards of a project
  cached      -project <code>          show scorecards from the local cache
`

func main() {
	printBuildInfo()

	log := logger.NewLogger("testgen-client", "")

	if err := config.Bootstrap(config.EnvProvider{}); err != nil {
		log.Fatal().Err(err).Msg("error exporting env file")
	}

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	app := &app{
		adapter:  serverAdapter,
		cache:    localStorage.ScoreCardRepository,
		user:     models.User{Username: cfg.UI.Username, Password: cfg.UI.Password},
		requests: context.Background(),
	}

	if err = app.run(os.Args[1], os.Args[2:]); err != nil {
		log.Fatal().Err(err).Str("command", os.Args[1]).Msg("command failed")
	}
}

type app struct {
	adapter  adapter.ServerAdapter
	cache    store.LocalScoreCardRepository
	user     models.User
	requests context.Context
}

func (a *app) run(command string, args []string) error {
	switch command {
	case "list":
		return a.list(args)
	case "show":
		return a.show(args)
	case "recalculate":
		return a.recalculate(args)
	case "sync":
		return a.sync(args)
	case "cached":
		return a.cached(args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}

func (a *app) list(args []string) error {
	fs := flag.NewFlagSet("list", flag.ExitOnError)
	project := fs.String("project", "", "project code")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *project == "" {
		return fmt.Errorf("-project is required")
	}

	if err := a.adapter.Login(a.requests, a.user); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	cards, err := a.adapter.ListScoreCards(a.requests, *project)
	if err != nil {
		return err
	}

	return printJSON(cards)
}

func (a *app) show(args []string) error {
	fs := flag.NewFlagSet("show", flag.ExitOnError)
	id := fs.String("id", "", "dashboard id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	if err := a.adapter.Login(a.requests, a.user); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	card, err := a.adapter.GetScoreCard(a.requests, *id)
	if err != nil {
		return err
	}

	return printJSON(card)
}

func (a *app) recalculate(args []string) error {
	fs := flag.NewFlagSet("recalculate", flag.ExitOnError)
	id := fs.String("id", "", "dashboard id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("-id is required")
	}

	if err := a.adapter.Login(a.requests, a.user); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	response, err := a.adapter.Recalculate(a.requests, *id)
	if err != nil {
		return err
	}

	return printJSON(response)
}

// sync replaces the cached scorecards of one project with fresh copies from
// the server.
func (a *app) sync(args []string) error {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)
	project := fs.String("project", "", "project code")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *project == "" {
		return fmt.Errorf("-project is required")
	}

	if err := a.adapter.Login(a.requests, a.user); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	cards, err := a.adapter.ListScoreCards(a.requests, *project)
	if err != nil {
		return err
	}

	if err = a.cache.PurgeProject(a.requests, *project); err != nil {
		return fmt.Errorf("purge cache: %w", err)
	}
	for _, card := range cards {
		if err = a.cache.CacheScoreCard(a.requests, card); err != nil {
			return fmt.Errorf("cache scorecard %s: %w", card.ID, err)
		}
	}

	fmt.Printf("synced %d scorecards of project %s\n", len(cards), *project)
	return nil
}

func (a *app) cached(args []string) error {
	fs := flag.NewFlagSet("cached", flag.ExitOnError)
	project := fs.String("project", "", "project code")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *project == "" {
		return fmt.Errorf("-project is required")
	}

	cards, err := a.cache.ListCachedScoreCards(a.requests, *project)
	if err != nil {
		return err
	}

	return printJSON(cards)
}

func printJSON(data any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
