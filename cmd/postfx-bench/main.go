package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/postfx/fx"
)

// discardBlitter skips the GPU so the harness measures pipeline overhead
// only: capture bookkeeping, pooling and uniform handling.
type discardBlitter struct{}

func (discardBlitter) Blit(dst, src *ebiten.Image, shader *ebiten.Shader, uniforms map[string]any) {
}

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the benchmark should run for.")
	width := flag.Int("width", 1920, "Screen width in pixels.")
	height := flag.Int("height", 1080, "Screen height in pixels.")
	boostEvery := flag.Int("boost-every", 30, "Fire a boost every N frames. 0 disables boosting.")
	grayscale := flag.Bool("grayscale", false, "Chain a grayscale pass after the motion blur.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	log.Println("Starting post-processing benchmark...")

	cfg := fx.DefaultConfig()
	cfg.Blitter = discardBlitter{}
	cfg.Capabilities = &fx.Capabilities{
		Shaders:           true,
		RenderToTexture:   true,
		NPOTTextures:      true,
		NonSquareTextures: true,
		Backend:           "headless",
	}

	pipeline, err := fx.New(cfg)
	if err != nil {
		log.Fatalf("Failed to build pipeline: %v", err)
	}
	defer pipeline.Dispose()

	if *grayscale {
		gray := fx.NewGrayscalePass()
		gray.SetIntensity(0.5)
		if err := pipeline.AddPass(gray); err != nil {
			log.Fatalf("Failed to add grayscale pass: %v", err)
		}
	}

	screen := ebiten.NewImage(*width, *height)

	report := &Report{
		Duration:       *duration,
		Width:          *width,
		Height:         *height,
		BoostEvery:     *boostEvery,
		GCPauseMetrics: *gcPauseMetrics,
		FrameTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running %dx%d frames for %s...\n", *width, *height, *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalFrames int64
	lastFrameTime := time.Now()

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			deltaTime := time.Since(lastFrameTime)
			lastFrameTime = time.Now()

			if *boostEvery > 0 && totalFrames%int64(*boostEvery) == 0 {
				pipeline.GiveBoost()
			}

			frameStart := time.Now()
			target := pipeline.BeginCapture(screen)
			_ = target // a game would draw its scene here
			pipeline.EndCapture()
			pipeline.Render(screen)
			frameDuration := time.Since(frameStart)

			pipeline.Update(float64(deltaTime) / float64(time.Second))

			report.FrameTime.Samples = append(report.FrameTime.Samples, frameDuration)
			totalFrames++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalFrames = totalFrames
	report.FrameTime.Finalize()
	report.Pipeline = pipeline.Stats()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Benchmark finished.")

	fmt.Println("\n\n--- Post-Processing Benchmark Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	log.Println("Benchmark complete.")
}
