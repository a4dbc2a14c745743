package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/lunch/pkg/config"
	"github.com/umputun/lunch/pkg/domain"
	"github.com/umputun/lunch/pkg/lunch"
	"github.com/umputun/lunch/pkg/repository"
	"github.com/umputun/lunch/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"LUNCH_CONFIG" description:"configuration file, yaml or toml"`
	DB     string `long:"db" env:"LUNCH_DB" description:"database file, overrides config"`

	List    ListCmd    `command:"list" description:"list restaurants"`
	Add     AddCmd     `command:"add" description:"add restaurant"`
	Delete  DeleteCmd  `command:"delete" description:"delete restaurant"`
	Roll    RollCmd    `command:"roll" description:"pick a restaurant for lunch"`
	History HistoryCmd `command:"history" description:"show recent picks"`
	Serve   ServeCmd   `command:"serve" description:"run http server"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

// ListCmd lists all restaurants or restaurants of a category
type ListCmd struct {
	Category string `short:"t" long:"category" description:"show only restaurants of the category"`
}

// AddCmd adds a restaurant
type AddCmd struct {
	Args struct {
		Name     string `positional-arg-name:"name" description:"restaurant name"`
		Category string `positional-arg-name:"category" description:"cheap or normal"`
	} `positional-args:"yes" required:"yes"`
}

// DeleteCmd deletes a restaurant by name
type DeleteCmd struct {
	Args struct {
		Name string `positional-arg-name:"name" description:"restaurant name"`
	} `positional-args:"yes" required:"yes"`
}

// RollCmd picks a restaurant of the category
type RollCmd struct {
	Args struct {
		Category string `positional-arg-name:"category" description:"cheap or normal"`
	} `positional-args:"yes" required:"yes"`
}

// HistoryCmd shows recent picks
type HistoryCmd struct{}

// ServeCmd runs http server
type ServeCmd struct{}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	parser.SubcommandsOptional = true
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	if parser.Active == nil {
		parser.WriteHelp(os.Stderr)
		os.Exit(1)
	}

	if opts.NoColor {
		color.NoColor = true
	}
	setupLog(opts.Debug)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	if err := run(ctx, opts, parser.Active.Name, os.Stdout); err != nil {
		if isUserError(err) {
			_, _ = color.New(color.FgRed).Fprintln(os.Stderr, userMessage(err))
			os.Exit(1)
		}
		if opts.Debug {
			log.Printf("[ERROR] %v", err)
		} else {
			_, _ = color.New(color.FgHiRed).Fprintf(os.Stderr, "error: %v\n", err)
		}
		os.Exit(1)
	}
}

// run opens the restaurant store and executes the command, output goes to out
func run(ctx context.Context, opts Opts, command string, out io.Writer) error {
	cfg := config.Default()
	if opts.Config != "" {
		var err error
		if cfg, err = config.Load(opts.Config); err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
	}
	if opts.DB != "" {
		cfg.Database.Path = opts.DB
	}

	dbPath, err := cfg.DBPath()
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStorageInit, err)
	}
	log.Printf("[DEBUG] using database %s", dbPath)

	repos, err := repository.NewRepositories(ctx, repository.Config{
		Path:            dbPath,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
		Seed:            !cfg.Database.SkipSeed,
	})
	if err != nil {
		return fmt.Errorf("failed to open restaurant store: %w", err)
	}
	defer func() {
		if err := repos.Close(); err != nil {
			log.Printf("[WARN] failed to close database: %v", err)
		}
	}()

	store := lunch.NewFromRepositories(repos)

	switch command {
	case "list":
		return listCmd(ctx, store, opts.List.Category, out)
	case "add":
		r, err := store.Add(ctx, opts.Add.Args.Name, opts.Add.Args.Category)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "added %s (%s)\n", r.Name, r.Category)
		return nil
	case "delete":
		if err := store.Delete(ctx, opts.Delete.Args.Name); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "deleted %s\n", opts.Delete.Args.Name)
		return nil
	case "roll":
		r, err := store.Roll(ctx, opts.Roll.Args.Category)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(out, "lunch today: %s\n", color.New(color.FgGreen, color.Bold).Sprint(r.Name))
		return nil
	case "history":
		return historyCmd(ctx, store, out)
	case "serve":
		log.Printf("[INFO] starting lunch server version %s", revision)
		srv := server.New(cfg, store, revision, opts.Debug)
		if err := srv.Run(ctx); err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		log.Print("[INFO] shutdown complete")
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}

func listCmd(ctx context.Context, store *lunch.Store, category string, out io.Writer) error {
	var (
		list []domain.Restaurant
		err  error
	)
	if category != "" {
		list, err = store.ListByCategory(ctx, category)
	} else {
		list, err = store.List(ctx)
	}
	if err != nil {
		return err
	}
	if len(list) == 0 {
		_, _ = fmt.Fprintln(out, domain.ErrNoRestaurants.Error())
		return nil
	}
	for _, r := range list {
		_, _ = fmt.Fprintf(out, "%-32s %s\n", r.Name, r.Category)
	}
	return nil
}

func historyCmd(ctx context.Context, store *lunch.Store, out io.Writer) error {
	sels, err := store.Recent(ctx)
	if err != nil {
		return err
	}
	for _, s := range sels {
		_, _ = fmt.Fprintf(out, "%s  %s\n", s.SelectedAt.Local().Format("2006-01-02 15:04"), s.Name)
	}
	return nil
}

// isUserError reports errors caused by input, shown to the user without log decorations
func isUserError(err error) bool {
	return errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrDuplicateName) ||
		errors.Is(err, domain.ErrNoRestaurants)
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrDuplicateName):
		return domain.ErrDuplicateName.Error()
	case errors.Is(err, domain.ErrNoRestaurants):
		return domain.ErrNoRestaurants.Error()
	default:
		return err.Error()
	}
}

func setupLog(dbg bool) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
