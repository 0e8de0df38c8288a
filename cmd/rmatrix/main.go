package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/san-kum/rmatrix/internal/config"
	"github.com/san-kum/rmatrix/internal/engine"
	"github.com/san-kum/rmatrix/internal/rain"
	"github.com/san-kum/rmatrix/internal/screen"
	"github.com/san-kum/rmatrix/internal/theme"
	"github.com/san-kum/rmatrix/internal/tui"
)

const version = "1.0.0"

var (
	ascii      bool
	normal     bool
	delay      string
	configFile string
	preset     string
	seed       uint64
	backend    string
	themeName  string
	logFile    string
	// bench
	frames      int
	benchWidth  int
	benchHeight int
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "rmatrix",
		Short:        "the matrix, in your terminal",
		Version:      version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runRain,
	}

	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&ascii, "ascii", "a", false, "use ascii glyphs instead of katakana")
	pf.BoolVarP(&normal, "normal", "n", false, "disable bold highlighting behind the leader")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.Uint64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")

	rootCmd.Flags().StringVarP(&delay, "delay", "u", "45", "delay between frames in milliseconds")
	rootCmd.Flags().StringVar(&backend, "backend", config.DefaultBackend, "renderer: tcell or tea")
	rootCmd.Flags().StringVar(&themeName, "theme", theme.Default.Name, "color theme")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "write debug logs to this file")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "run the effect headless and report stream statistics",
		Args:  cobra.NoArgs,
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&frames, "frames", 500, "number of frames")
	benchCmd.Flags().IntVar(&benchWidth, "width", 80, "screen width")
	benchCmd.Flags().IntVar(&benchHeight, "height", 24, "screen height")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list available color themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range theme.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	rootCmd.AddCommand(benchCmd, presetsCmd, themesCmd)
	return rootCmd
}

// resolveConfig layers defaults, preset, config file and explicit flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	// Load config file if specified (overrides preset)
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("ascii") && ascii {
		cfg.Mode = "ascii"
	}
	if flags.Changed("normal") && normal {
		cfg.Bold = false
	}
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Lookup("delay") != nil && flags.Changed("delay") {
		cfg.DelayMs = config.ParseDelay(delay)
	}
	if flags.Lookup("backend") != nil && flags.Changed("backend") {
		cfg.Backend = backend
	}
	if flags.Lookup("theme") != nil && flags.Changed("theme") {
		cfg.Theme = themeName
	}
	if flags.Lookup("log-file") != nil && flags.Changed("log-file") {
		cfg.LogFile = logFile
	}

	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	h := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	return slog.New(h), func() { f.Close() }, nil
}

func runRain(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if _, err := screen.Probe(int(os.Stdout.Fd())); err != nil {
		return engine.ErrNoTerminalSize
	}

	logger, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	th := theme.Get(cfg.Theme)
	field := rain.NewField(cfg.Params(), cfg.GlyphMode(), cfg.Seed)
	logger.Info("starting",
		"backend", cfg.Backend,
		"mode", cfg.GlyphMode(),
		"delay", cfg.Delay(),
		"theme", th.Name,
		"seed", cfg.Seed,
	)

	switch cfg.Backend {
	case "tea":
		return tui.Run(ctx, tui.NewModel(field, th, cfg.Delay(), logger))
	default:
		return runTcell(ctx, field, th, cfg.Delay(), logger)
	}
}

func runTcell(ctx context.Context, field *rain.Field, th theme.Theme, d time.Duration, logger *slog.Logger) error {
	scr, err := screen.Open(th, logger)
	if err != nil {
		if errors.Is(err, screen.ErrNoSize) {
			return engine.ErrNoTerminalSize
		}
		return err
	}
	defer scr.Close()

	driver, err := engine.New(scr, field, d, logger)
	if err != nil {
		return err
	}
	return driver.Run(ctx)
}
