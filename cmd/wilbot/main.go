package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"
	"golang.org/x/sync/errgroup"

	"github.com/VanillaDeath/Wilbot/pkg/bot"
	"github.com/VanillaDeath/Wilbot/pkg/config"
	"github.com/VanillaDeath/Wilbot/pkg/console"
	"github.com/VanillaDeath/Wilbot/pkg/content"
	"github.com/VanillaDeath/Wilbot/pkg/corpus"
	"github.com/VanillaDeath/Wilbot/pkg/markov"
	"github.com/VanillaDeath/Wilbot/pkg/mastodon"
	"github.com/VanillaDeath/Wilbot/pkg/repository"
	"github.com/VanillaDeath/Wilbot/pkg/scheduler"
	"github.com/VanillaDeath/Wilbot/pkg/weather"
	"github.com/VanillaDeath/Wilbot/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"c" long:"config" env:"WILBOT_CONFIG" default:"wilbot.yml" description:"config file path"`

	// Common options
	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

const (
	profileOnline  = "ONLINE 🟢"
	profileOffline = "OFFLINE 🔴"
)

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
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

	if opts.NoColor {
		color.NoColor = true
	}

	cfg, err := loadConfig(opts.Config)
	if err != nil {
		setupLog(opts.Debug)
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	token, err := cfg.AccessToken()
	if err != nil {
		setupLog(opts.Debug)
		log.Printf("[ERROR] %v", err)
		os.Exit(1)
	}

	setupLog(opts.Debug, token)
	log.Printf("[INFO] starting wilbot version %s", revision)

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

	if err := run(ctx, cancel, cfg, opts); err != nil {
		log.Printf("[ERROR] wilbot failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// loadConfig loads the settings file, creating a default one with
// operator guidance on first run
func loadConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		cfg := config.Default()
		if saveErr := cfg.Save(path); saveErr != nil {
			return nil, fmt.Errorf("create default config %s: %w", path, saveErr)
		}
		return nil, fmt.Errorf("created default config %s, set instance.url and the access token file, then restart", path)
	}
	return config.Load(path)
}

func run(ctx context.Context, cancel context.CancelFunc, cfg *config.Config, opts Opts) error {
	token, err := cfg.AccessToken()
	if err != nil {
		return err
	}

	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	repos, err := repository.NewRepositories(ctx, repository.Config{DSN: cfg.Database.DSN})
	if err != nil {
		return fmt.Errorf("init database: %w", err)
	}
	defer repos.Close()

	chain := markov.New(repos.Chain, nil)
	if err := chain.Load(ctx); err != nil {
		return fmt.Errorf("load chain: %w", err)
	}
	stats := chain.Stats()
	log.Printf("[INFO] chain loaded, %d prefixes, %d transitions", stats.Prefixes, stats.Transitions)

	client := mastodon.New(cfg.Instance.URL, token, cfg.Instance.Timeout)
	self, err := client.VerifyCredentials(ctx)
	if err != nil {
		return fmt.Errorf("verify credentials: %w", err)
	}
	log.Printf("[INFO] authenticated as @%s (%s)", self.Acct, self.ID)

	if err := client.SetProfileStatus(ctx, profileOnline); err != nil {
		log.Printf("[WARN] set profile status: %v", err)
	}
	defer func() {
		offCtx, offCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer offCancel()
		if err := client.SetProfileStatus(offCtx, profileOffline); err != nil {
			log.Printf("[WARN] set profile status: %v", err)
		}
	}()

	var weatherProvider bot.WeatherProvider
	if cfg.Weather.APIKey != "" {
		weatherProvider = weather.New(cfg.Weather.APIKey, cfg.Weather.City, cfg.Weather.Units, cfg.Instance.Timeout)
	}

	b := bot.New(bot.Params{
		Client:        client,
		Engine:        chain,
		Follows:       repos.Follow,
		Blocks:        repos.Block,
		States:        repos.State,
		Weather:       weatherProvider,
		Self:          *self,
		MaxPostLength: cfg.Bot.MaxPostLength,
		PollInterval:  cfg.Instance.PollInterval,
		IncludeTime:   cfg.AutoPost.IncludeTime,
		Location:      loc,
	})

	extractor := content.NewArticleExtractor(cfg.Instance.Timeout, "wilbot/"+revision)
	trainer := &syncingTrainer{trainer: corpus.NewTrainer(chain, extractor), engine: chain}
	settings := &settingsAdapter{cfg: cfg, path: opts.Config}
	cons := console.New(b, trainer, settings, os.Stdin, os.Stdout, cancel)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error { return b.Run(gctx) })
	group.Go(func() error { return cons.Run(gctx) })

	if cfg.AutoPost.Enabled {
		times, err := scheduler.ParseTimes(cfg.AutoPost.Times)
		if err != nil {
			return fmt.Errorf("parse auto-post times: %w", err)
		}
		sched := scheduler.New(b, times, loc)
		group.Go(func() error { return sched.Run(gctx) })
	}

	if listen, _ := cfg.GetServerConfig(); listen != "" {
		srv := server.New(cfg, b, repos.State, revision, opts.Debug)
		group.Go(func() error { return srv.Run(gctx) })
	}

	runErr := group.Wait()

	// flush pending chain deltas before closing down
	flushCtx, flushCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer flushCancel()
	if err := chain.Sync(flushCtx); err != nil {
		log.Printf("[WARN] flush chain: %v", err)
	}

	return runErr
}

// syncingTrainer flushes the chain after every training run so bulk
// input survives an immediate shutdown
type syncingTrainer struct {
	trainer *corpus.Trainer
	engine  *markov.Chain
}

func (t *syncingTrainer) TrainFile(path string) (int, error) {
	count, err := t.trainer.TrainFile(path)
	t.flush()
	return count, err
}

func (t *syncingTrainer) TrainURL(ctx context.Context, url string) (int, error) {
	count, err := t.trainer.TrainURL(ctx, url)
	t.flush()
	return count, err
}

func (t *syncingTrainer) TrainFeed(ctx context.Context, url string) (int, error) {
	count, err := t.trainer.TrainFeed(ctx, url)
	t.flush()
	return count, err
}

func (t *syncingTrainer) flush() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := t.engine.Sync(ctx); err != nil {
		log.Printf("[WARN] flush chain after training: %v", err)
	}
}

// settingsAdapter persists console-driven config changes back to the
// settings file
type settingsAdapter struct {
	cfg  *config.Config
	path string
}

func (s *settingsAdapter) Set(key, value string) error { return s.cfg.SetKey(key, value) }
func (s *settingsAdapter) Save() error                 { return s.cfg.Save(s.path) }

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{}
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
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
