package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"
)

// -------------------- Logger --------------------

// logger is the package-wide structured logger. Safe to use before initLogger
// is called; defaults to slog.Default().
var logger = slog.Default()

// initLogger configures the shared slog logger and calls slog.SetDefault so
// the stdlib log package also routes through the same handler. quiet hides
// everything below errors.
func initLogger(debug, quiet bool) {
	level := slog.LevelInfo
	switch {
	case debug:
		level = slog.LevelDebug
	case quiet:
		level = slog.LevelError
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: debug, // include file:line in debug mode
	})
	logger = slog.New(h)
	slog.SetDefault(logger)
}

// -------------------- Flags --------------------

type options struct {
	cfg   *Config
	debug bool
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("lou-piezo", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "usage: lou-piezo [flags] [file.mid|dir ...]\n\nplay midi files on piezo speakers\n\n")
		fs.PrintDefaults()
	}

	def := DefaultConfig()
	var (
		configPath string
		count      int
		speed      float64
		shift      int
		pedal      bool
		quiet      bool
		pins       string
		debug      bool
	)
	fs.StringVar(&configPath, "config", "", "JSON config file providing defaults")
	for _, name := range []string{"c", "count"} {
		fs.IntVar(&count, name, def.Count, "maximum number of midi files to play")
	}
	for _, name := range []string{"s", "speed"} {
		fs.Float64Var(&speed, name, def.Speed, "speed multiplier, makes the music slower or faster")
	}
	for _, name := range []string{"S", "shiftpitch"} {
		fs.IntVar(&shift, name, def.Shift, "pitch shift in semitones")
	}
	for _, name := range []string{"p", "pedal"} {
		fs.BoolVar(&pedal, name, def.Pedal, "use sustain pedal information")
	}
	for _, name := range []string{"n", "nonverbose"} {
		fs.BoolVar(&quiet, name, def.Quiet, "don't print status and stats")
	}
	for _, name := range []string{"P", "pins"} {
		fs.StringVar(&pins, name, DefaultPins, "comma separated output pins; also sets the number of channels")
	}
	fs.BoolVar(&debug, "debug", false, "enable debug logging (adds source location)")
	driver := fs.String("driver", def.Driver, "tone driver: serial|speaker|log")
	serialDev := fs.String("serial", def.SerialDevice, "serial port device of the tone bridge")
	baud := fs.Int("baud", def.Baud, "serial baud rate")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	var visitErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "c", "count":
			cfg.Count = count
		case "s", "speed":
			cfg.Speed = speed
		case "S", "shiftpitch":
			cfg.Shift = shift
		case "p", "pedal":
			cfg.Pedal = pedal
		case "n", "nonverbose":
			cfg.Quiet = quiet
		case "P", "pins":
			p, err := ParsePins(pins)
			if err != nil {
				visitErr = err
				return
			}
			cfg.Pins = p
		case "driver":
			cfg.Driver = *driver
		case "serial":
			cfg.SerialDevice = *serialDev
		case "baud":
			cfg.Baud = *baud
		}
	})
	if visitErr != nil {
		return nil, visitErr
	}
	if fs.NArg() > 0 {
		cfg.Inputs = fs.Args()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &options{cfg: cfg, debug: debug}, nil
}

// -------------------- Run --------------------

type driverOpener func(*Config) (ToneDriver, error)

// run plays the selected tracks one after another. It returns ctx.Err() when
// interrupted.
func run(ctx context.Context, cfg *Config, open driverOpener, rng *rand.Rand, out io.Writer) error {
	selected := pickTracks(resolveInputs(cfg.Inputs), cfg.Count, rng)
	if len(selected) == 0 {
		logger.Warn("no midi files to play", "inputs", cfg.Inputs)
		return nil
	}

	drv, err := open(cfg)
	if err != nil {
		return err
	}
	defer drv.Close()

	player := NewPlayer(drv)
	for _, t := range prepareTracks(selected, cfg) {
		if t.Err != nil {
			logger.Warn("skipping track", "path", t.Path, "err", t.Err)
			continue
		}
		if !cfg.Quiet {
			fmt.Fprintln(out, t.Stats.Render())
		}
		logger.Info("player: starting track", "path", t.Path, "commands", len(t.Commands), "length", t.Stats.HumanLength())
		if err := player.Play(ctx, t.Commands); err != nil {
			return err
		}
		player.Silence(cfg.Pins)
	}
	return nil
}

// -------------------- Main --------------------

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	cfg := opts.cfg

	initLogger(opts.debug, cfg.Quiet)
	logger.Info("lou-piezo starting",
		"inputs", cfg.Inputs,
		"count", cfg.Count,
		"speed", cfg.Speed,
		"shift", cfg.Shift,
		"pedal", cfg.Pedal,
		"pins", formatPins(cfg.Pins),
		"driver", cfg.Driver,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	err = run(ctx, cfg, openDriver, rng, os.Stdout)
	switch {
	case errors.Is(err, context.Canceled):
		if !cfg.Quiet {
			fmt.Println("interrupted by keyboard")
		}
	case err != nil:
		logger.Error("lou-piezo failed", "err", err)
		stop()
		os.Exit(1)
	}
}
