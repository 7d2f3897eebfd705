package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"torus-life/internal/app"
	"torus-life/internal/term"
	"torus-life/pkg/core"
	_ "torus-life/pkg/sims/life"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Size = 32
	cfg.Bind(flag.CommandLine)
	fps := flag.Int("fps", 60, "terminal refresh rate")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if *fps <= 0 {
		log.Fatalf("fps must be positive, got %d", *fps)
	}
	sim, err := core.Lookup(cfg.Sim, cfg.SimParams())
	if err != nil {
		log.Fatalf("build %s: %v", cfg.Sim, err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}
	screen.EnableMouse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	v := term.New(screen, sim, term.Options{
		TPS:    cfg.TPS,
		Paused: cfg.Paused,
		Frame:  time.Second / time.Duration(*fps),
	})
	if err := v.Run(ctx); err != nil {
		log.Fatal(err)
	}
}
