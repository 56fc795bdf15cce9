package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/soar/padlink/internal/config"
	"github.com/soar/padlink/internal/console"
	"github.com/soar/padlink/internal/control"
	"github.com/soar/padlink/internal/gamepad"
	"github.com/soar/padlink/internal/gamepad/sdlinput"
	"github.com/soar/padlink/internal/hub"
	"github.com/soar/padlink/internal/server"
	"github.com/soar/padlink/internal/transport"
	"github.com/soar/padlink/internal/tray"
)

// Cross-platform signal handling: use os.Interrupt on all platforms
// On Windows: os.Interrupt is sent when Ctrl+C is pressed
// On Unix: os.Interrupt is equivalent to syscall.SIGINT
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {
	cfg, opts, err := config.Load(os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := config.Validate(cfg); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}
	config.Normalize(cfg)
	if opts.PrintConfig {
		if err := config.Dump(os.Stdout, cfg); err != nil {
			log.Fatalf("Failed to print config: %v", err)
		}
		return
	}

	closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		log.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()

	tx, err := transport.Build(transport.Config{
		Kind:     cfg.Transport.Kind,
		Endpoint: cfg.Transport.Endpoint,
		BaudRate: cfg.Transport.BaudRate,
		Timeout:  cfg.Transport.Timeout,
		Policy:   transport.Policy(cfg.Transport.Policy),
		Debug:    cfg.Log.Debug,
	})
	if err != nil {
		log.Fatalf("Failed to set up transport: %v", err)
	}

	loopCfg, err := newLoopConfig(cfg)
	if err != nil {
		log.Fatalf("Invalid controller bindings: %v", err)
	}

	// Ctrl+C on Windows needs its own handler once SDL holds the thread.
	consoleShutdown := make(chan struct{})
	reregister := console.SetupConsoleHandler(consoleShutdown)

	reader := sdlinput.NewReader(cfg.Log.Debug)
	reader.OnInit = reregister

	loop, err := control.NewLoop(loopCfg, reader, tx)
	if err != nil {
		log.Fatalf("Failed to create control loop: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, shutdownSignals...)

	var srv *server.Server
	serverErrCh := make(chan error, 1)
	if cfg.Server.Enabled {
		h := hub.NewHub()
		broadcaster := hub.NewBroadcaster(h, loop.Snapshots())
		go broadcaster.Run()

		pages, err := frontendFS()
		if err != nil {
			log.Fatalf("Failed to load status page: %v", err)
		}
		srv = server.New(h, broadcaster, pages, cfg.Server.Addr)
		go func() {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				serverErrCh <- err
			}
		}()
		log.Printf("Status page: %s", tray.StatusURL(cfg.Server.Addr))
	}

	log.Printf("padlink started: %s %s, tick %v, command 0..%d",
		cfg.Transport.Kind, cfg.Transport.Endpoint, cfg.Control.Tick, cfg.Control.CommandMax)

	shutdownRequested := make(chan struct{})
	if runtime.GOOS == "windows" {
		url := ""
		if cfg.Server.Enabled {
			url = tray.StatusURL(cfg.Server.Addr)
		}
		go func() {
			t := tray.New(url, func() {
				close(shutdownRequested)
			})
			t.Run(tray.Icon())
		}()
	} else {
		log.Println("Press Ctrl+C to exit")
	}

	// SDL calls must all come from one OS thread; the loop owns it.
	loopDone := make(chan struct{})
	go func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		loop.Run(ctx)
		close(loopDone)
	}()

	select {
	case <-sigCh:
		log.Println("Shutting down...")
	case <-consoleShutdown:
		log.Println("Shutting down...")
	case <-shutdownRequested:
		log.Println("Shutdown requested from tray")
	case err := <-serverErrCh:
		log.Printf("HTTP server error: %v", err)
	}
	cancel()

	// The loop zeroes the actuator and releases the controller before it returns.
	<-loopDone

	if srv != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("HTTP server shutdown error: %v", err)
		}
	}

	log.Println("padlink stopped")
}

// setupLogging tees the standard logger into cfg.File when one is set.
func setupLogging(cfg config.LogConfig) (func(), error) {
	if cfg.Debug {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	}
	if cfg.File == "" {
		return func() {}, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(io.MultiWriter(os.Stderr, f))
	return func() {
		log.SetOutput(os.Stderr)
		f.Close()
	}, nil
}

// newLoopConfig resolves the named controls and copies the tuning values.
func newLoopConfig(cfg *config.Config) (control.LoopConfig, error) {
	axis, err := gamepad.AxisIndex(cfg.Gamepad.Axis)
	if err != nil {
		return control.LoopConfig{}, err
	}

	var b control.Bindings
	b.Axis = axis
	for role, name := range map[control.Button]string{
		control.ButtonOverride:  cfg.Gamepad.Override,
		control.ButtonReset:     cfg.Gamepad.Reset,
		control.ButtonDecrement: cfg.Gamepad.Decrement,
		control.ButtonToggle:    cfg.Gamepad.Toggle,
	} {
		idx, err := gamepad.ButtonIndex(name)
		if err != nil {
			return control.LoopConfig{}, fmt.Errorf("%s: %w", role, err)
		}
		b.Buttons[role] = idx
	}

	c := cfg.Control
	return control.LoopConfig{
		Period:             c.Tick,
		ReprobeInterval:    c.ReprobeInterval,
		VibrationThreshold: c.VibrationThreshold,
		Bindings:           b,
		Machine: control.MachineConfig{
			Max:           c.CommandMax,
			DeadZone:      c.DeadZone,
			StepGain:      c.StepGain,
			OverrideValue: c.OverrideValue,
			DecrementStep: c.DecrementStep,
		},
		Debug: cfg.Log.Debug,
	}, nil
}
