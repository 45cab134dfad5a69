package main

import (
	"flag"
	"log/slog"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/ha1tch/easel/internal/config"
	"github.com/ha1tch/easel/internal/logx"
)

func main() {
	configPath := flag.String("config", "easel.toml", "path to the preferences file")
	verbose := flag.Bool("v", false, "enable debug logging to stderr")
	flag.Parse()

	log := logx.Nop()
	if *verbose {
		log = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("loading config", "err", err)
		os.Exit(1)
	}

	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "Easel")
	rl.SetTargetFPS(60)

	app, err := newApp(cfg, log)
	if err != nil {
		rl.CloseWindow()
		slog.New(slog.NewTextHandler(os.Stderr, nil)).Error("starting editor", "err", err)
		os.Exit(1)
	}

	for !rl.WindowShouldClose() {
		app.update()
		app.draw()
	}

	app.vp.Destroy()
	rl.CloseWindow()
}
