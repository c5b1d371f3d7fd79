package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"
	"github.com/signadot/prefs"
	"github.com/signadot/prefs/web"
)

func serve(cfg *ServeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Serve.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 || args[0] == "-" {
		return fmt.Errorf("%w: serve requires one preferences file", cli.ErrUsage)
	}
	file := args[0]
	wcfg, err := serverConfig(cfg)
	if err != nil {
		return err
	}

	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
		} else {
			defer agent.Close()
		}
	}

	f, err := prefs.Open(file, cfg.parseOpts(file)...)
	if err != nil {
		return err
	}
	srv, err := web.NewServer(wcfg, f)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		errc <- srv.ListenAndServe()
	}()
	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}
	theLog.Info("received exit signal")
	sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(sctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return <-errc
}

// serverConfig reads -config, when given, and applies the flags over
// it.
func serverConfig(cfg *ServeConfig) (*web.Config, error) {
	wcfg := &web.Config{
		Addr:       web.DefaultAddr,
		Title:      web.DefaultTitle,
		SpellCache: 16,
	}
	if cfg.Config != "" {
		var err error
		wcfg, err = web.LoadConfig(cfg.Config)
		if err != nil {
			return nil, err
		}
	}
	if cfg.Addr != "" {
		wcfg.Addr = cfg.Addr
	}
	if key := os.Getenv("PREFS_AUTH_KEY"); key != "" {
		wcfg.AuthKey = key
	}
	wcfg.Log = theLog
	return wcfg, nil
}
