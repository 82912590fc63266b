package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"armsim/app"
	"armsim/hal"
	"armsim/internal/logging"
	"armsim/internal/profile"
	"armsim/sim/input"
	"armsim/sim/telemetry"
)

func main() {
	var cfg hal.HeadlessConfig
	var profilePath, scriptPath, metricsAddr, logLevel string
	flag.BoolVar(&cfg.Enabled, "headless", false, "Run without a window.")
	flag.IntVar(&cfg.Hz, "hz", 60, "Tick rate in headless mode.")
	flag.Uint64Var(&cfg.Ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run until quit).")
	flag.StringVar(&profilePath, "profile", "", "YAML arm profile (link lengths, rates, limits, camera).")
	flag.StringVar(&scriptPath, "script", "", "YAML input script to replay instead of the keyboard.")
	flag.StringVar(&metricsAddr, "metrics", "", "Serve Prometheus metrics on this address (e.g. :2112).")
	flag.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error.")
	flag.Parse()

	if err := run(cfg, profilePath, scriptPath, metricsAddr, logLevel); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg hal.HeadlessConfig, profilePath, scriptPath, metricsAddr, logLevel string) error {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return err
	}

	p, err := profile.Load(profilePath)
	if err != nil {
		return err
	}

	appCfg := app.Config{Profile: p}
	if scriptPath != "" {
		s, err := input.LoadScript(scriptPath)
		if err != nil {
			return err
		}
		appCfg.Source = s
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	newApp := func(h hal.HAL) hal.StepFunc {
		appCfg.Logger = logging.New(h.Logger(), level)
		if metricsAddr != "" {
			m := telemetry.New()
			appCfg.Metrics = m
			go func() {
				if err := m.Serve(ctx, metricsAddr, appCfg.Logger); err != nil {
					appCfg.Logger.Error("metrics server stopped", "error", err)
				}
			}()
		}
		return app.NewStepFunc(appCfg)(h)
	}

	if cfg.Enabled {
		err = hal.RunHeadless(ctx, newApp, cfg)
	} else {
		err = hal.RunWindow(ctx, newApp)
	}
	switch {
	case err == nil, errors.Is(err, app.ErrQuit), errors.Is(err, context.Canceled):
		return nil
	}
	return err
}
