package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"syncscope/config"
	"syncscope/core"
	"syncscope/host/gpio"
	"syncscope/host/serial"
	"syncscope/render"
	"syncscope/sim"
)

var (
	configPath = flag.String("config", "", "JSON configuration file")
	chip       = flag.String("chip", "gpiochip0", "GPIO chip name or path")
	syncPin    = flag.Uint("sync", 11, "SYNC line offset")
	levelPin   = flag.Uint("level", 10, "LEVEL line offset")
	pull       = flag.String("pull", "none", "Input bias: none, up or down")
	serialDev  = flag.String("serial", "", "Mirror rows to this serial device")
	baud       = flag.Int("baud", 115200, "Serial mirror baud rate")
	demo       = flag.String("demo", "", "Replay a built-in pattern ("+strings.Join(sim.PatternNames(), ", ")+") instead of reading GPIO")
	pace       = flag.Duration("pace", 2*time.Millisecond, "Pause after each demo line")
	verbose    = flag.Bool("verbose", false, "Enable debug logging")
)

func main() {
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	core.SetLogger(logger)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads the optional file, then applies any flags given
// explicitly on the command line
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.LoadFile(*configPath); err != nil {
			return nil, err
		}
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "chip":
			cfg.Chip = *chip
		case "sync":
			cfg.SyncPin = uint32(*syncPin)
		case "level":
			cfg.LevelPin = uint32(*levelPin)
		case "pull":
			cfg.Pull = *pull
		case "serial":
			cfg.Serial.Device = *serialDev
		case "baud":
			cfg.Serial.Baud = *baud
		case "demo":
			cfg.Demo = *demo
		case "pace":
			cfg.PaceUS = int(pace.Microseconds())
		}
	})
	if cfg.PaceUS == 0 && cfg.Demo != "" {
		cfg.PaceUS = int(pace.Microseconds())
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	pins, err := cfg.Pins()
	if err != nil {
		return err
	}

	checkTerminal(logger)

	var (
		clock     core.TimeSource
		driver    core.GPIODriver
		simClock  *sim.Clock
		simDriver *sim.Driver
	)
	if cfg.Demo != "" {
		simClock = sim.NewClock(core.BitRate)
		simDriver = sim.NewDriver()
		clock, driver = simClock, simDriver
	} else {
		gcfg := gpio.DefaultConfig()
		gcfg.Chip = cfg.Chip
		gd, err := gpio.NewDriver(gcfg)
		if err != nil {
			return err
		}
		clock, driver = gpio.MonotonicClock{}, gd
	}

	dec := core.NewDecoder(clock)
	if err := dec.Attach(driver, pins); err != nil {
		return err
	}
	defer func() {
		if err := dec.Detach(); err != nil {
			logger.Warn("detach failed", "err", err)
		}
		logger.Info("stopped", "stats", dec.Stats.Snapshot())
	}()

	sinks := []render.Sink{render.NewTerminal(os.Stdout)}
	if cfg.Serial.Device != "" {
		scfg := serial.DefaultConfig(cfg.Serial.Device)
		scfg.Baud = cfg.Serial.Baud
		mirror, err := serial.Open(scfg)
		if err != nil {
			return err
		}
		defer mirror.Close()
		sinks = append(sinks, mirror)
	}

	if cfg.Demo != "" {
		pattern, err := sim.PatternByName(cfg.Demo)
		if err != nil {
			return err
		}
		player, err := sim.NewPlayer(simClock, simDriver, pins)
		if err != nil {
			return err
		}
		player.Pace = time.Duration(cfg.PaceUS) * time.Microsecond

		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			defer cancel()
			err := player.Loop(ctx, sim.DefaultSignal(simClock.Frequency()), pattern, 0)
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("demo stopped", "err", err)
			}
		}()
		logger.Info("demo running", "pattern", cfg.Demo, "pace", player.Pace)
		return render.Run(ctx, dec.Frames(), sinks...)
	}

	logger.Info("decoding", "chip", cfg.Chip, "sync", pins.Sync, "level", pins.Level)
	return render.Run(ctx, dec.Frames(), sinks...)
}

// checkTerminal warns when stdout is a terminal too narrow for a full row
func checkTerminal(logger *slog.Logger) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		logger.Debug("terminal size unknown", "err", err)
		return
	}
	if width < core.VisWidth {
		logger.Warn("terminal narrower than a row, lines will wrap", "columns", width, "need", core.VisWidth)
	}
}
