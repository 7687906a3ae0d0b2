// Package batch renders scene frames in parallel and writes them as WebP.
package batch

import (
	"context"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/sync/errgroup"

	"objscene/internal/postprocess"
	"objscene/internal/raster"
	"objscene/internal/scene"
	"objscene/internal/texture"
)

// Config holds all shared resources for a batch run.
type Config struct {
	OutputDir   string
	Width       int
	Height      int
	Supersample int
	Workers     int
	Textures    texture.Resolver
	Progress    io.Writer // progress bar target; nil hides it
	Log         *slog.Logger
}

// Result holds the outcome of rendering one frame.
type Result struct {
	Index   int           `json:"index"`
	Path    string        `json:"path"`
	Success bool          `json:"success"`
	Error   string        `json:"error,omitempty"`
	Elapsed time.Duration `json:"elapsed_ns"`
}

// FrameName is the file name of frame i.
func FrameName(i int) string {
	return fmt.Sprintf("frame_%04d.webp", i)
}

// Run renders every frame with at most cfg.Workers in flight. A frame that
// fails is reported in its Result; only cancellation of ctx or an unusable
// output directory stops the run.
func Run(ctx context.Context, cfg Config, frames []scene.Frame) ([]Result, error) {
	log := cfg.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("batch: output dir: %w", err)
	}

	progress := cfg.Progress
	if progress == nil {
		progress = io.Discard
	}
	bar := progressbar.NewOptions(len(frames),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionShowCount(),
	)
	defer bar.Close()

	start := time.Now()
	results := make([]Result, len(frames))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.Workers, 1))
	for i := range frames {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = renderFrame(cfg, frames[i])
			if !results[i].Success {
				log.Warn("frame failed", "frame", frames[i].Index, "err", results[i].Error)
			}
			bar.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("batch: %w", err)
	}

	failed := 0
	for _, r := range results {
		if !r.Success {
			failed++
		}
	}
	elapsed := time.Since(start)
	log.Info("frames rendered", "frames", len(frames), "failed", failed,
		"elapsed", elapsed.Round(time.Millisecond),
		"fps", float64(len(frames))/max(elapsed.Seconds(), 1e-9))
	return results, nil
}

func renderFrame(cfg Config, f scene.Frame) Result {
	start := time.Now()
	outPath := filepath.Join(cfg.OutputDir, FrameName(f.Index))
	res := Result{Index: f.Index, Path: outPath}

	ss := max(cfg.Supersample, 1)
	r := raster.Renderer{Light: f.Light, Textures: cfg.Textures}
	img := r.RenderImage(cfg.Width*ss, cfg.Height*ss, f.Sky, f.View, f.Projection, f.Calls)
	if ss > 1 {
		img = postprocess.Downsample(img, cfg.Width, cfg.Height)
	}

	if err := writeWebP(outPath, img); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Success = true
	res.Elapsed = time.Since(start)
	return res
}

func writeWebP(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		return fmt.Errorf("webp encode: %w", err)
	}
	return f.Close()
}
