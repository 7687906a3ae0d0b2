package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"objscene/internal/batch"
	"objscene/internal/config"
	"objscene/internal/scene"
	"objscene/internal/texture"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to scene YAML file")
	assetsDir := flag.String("assets", "", "Assets directory (default: ./assets)")
	outputDir := flag.String("output", "", "Output directory (default: ./frames)")
	width := flag.Int("width", 0, "Frame width (default: 1280)")
	height := flag.Int("height", 0, "Frame height (default: 720)")
	frames := flag.Int("frames", 0, "Number of frames to render (default: 120)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	verbose := flag.Bool("v", false, "Debug logging")

	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	// Load config
	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// CLI flags override config file
	cfg.Resolve(config.Flags{
		AssetsDir: *assetsDir,
		OutputDir: *outputDir,
		Width:     *width,
		Height:    *height,
		Frames:    *frames,
		Workers:   *workers,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sc, err := scene.Load(ctx, cfg, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}

	inputs, err := scene.Script(cfg.Drive, cfg.Frames)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error in drive script: %v\n", err)
		os.Exit(1)
	}
	aspect := float32(cfg.Width) / float32(cfg.Height)
	snapshots := sc.Simulate(inputs, 1/cfg.FPS, aspect)

	texIndex := texture.BuildIndex(cfg.TexturesDir)
	texCache := texture.NewCache(texIndex, log)

	fmt.Printf("Scene: %d objects, %d textures indexed\n", len(sc.Objects), texIndex.Len())
	fmt.Printf("Frames: %d at %dx%d (x%d), Workers: %d\n", len(snapshots), cfg.Width, cfg.Height, cfg.Supersample, cfg.Workers)
	fmt.Printf("Output: %s\n", cfg.OutputDir)
	fmt.Println("------------------------------------------------------------")

	start := time.Now()

	results, err := batch.Run(ctx, batch.Config{
		OutputDir:   cfg.OutputDir,
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		Workers:     cfg.Workers,
		Textures:    texCache,
		Progress:    os.Stderr,
		Log:         log,
	}, snapshots)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	elapsed := time.Since(start)
	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done in %.1fs\n", elapsed.Seconds())

	var failed []batch.Result
	for _, r := range results {
		if !r.Success {
			failed = append(failed, r)
		}
	}
	fmt.Printf("Rendered: %d/%d\n", len(results)-len(failed), len(results))
	if len(failed) > 0 {
		fmt.Printf("\nFailed (%d):\n", len(failed))
		for _, r := range failed[:min(len(failed), 20)] {
			fmt.Printf("  frame %d: %s\n", r.Index, r.Error)
		}
	}

	manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
	manifest := batch.NewManifest(cfg.Width, cfg.Height, cfg.FPS, results)
	if err := batch.WriteManifest(manifestPath, manifest); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
	} else {
		fmt.Printf("Manifest: %s\n", manifestPath)
	}

	if len(failed) > 0 {
		os.Exit(1)
	}
}
