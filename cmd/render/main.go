package main

import (
	"flag"
	"fmt"
	"os"

	"pbr-grid-renderer/internal/config"
	"pbr-grid-renderer/internal/sequence"
)

func main() {
	// CLI flags
	configFile := flag.String("config", "", "Path to config.json file")
	out := flag.String("out", "", "Output file, or directory for turntables (default: render)")
	format := flag.String("format", "", "Output format: webp, png, or tga (default: webp)")
	size := flag.Int("size", 0, "Output image size in pixels (default: 512)")
	supersample := flag.Int("supersample", 0, "Supersampling factor (default: 2)")
	workers := flag.Int("workers", 0, "Number of worker goroutines (default: NumCPU)")
	frames := flag.Int("frames", 0, "Number of turntable frames (default: 1)")
	orbit := flag.Float64("orbit", 0, "Total turntable sweep in degrees (default: 360)")

	flag.Parse()

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
		Output:      *out,
		Format:      *format,
		Size:        *size,
		Supersample: *supersample,
		Workers:     *workers,
		Frames:      *frames,
		Orbit:       *orbit,
	})

	// Print summary
	mode := "single frame"
	if cfg.Frames > 1 {
		mode = fmt.Sprintf("%d frames over %.0f°", cfg.Frames, cfg.OrbitDegrees)
	}

	fmt.Printf("PBR Sphere Grid Renderer (%s)\n", mode)
	fmt.Printf("Grid: %dx%d spheres, Lights: %d\n", cfg.Grid.Rows, cfg.Grid.Cols, len(cfg.Lights))
	fmt.Printf("Size: %dpx (x%d supersampled), Workers: %d\n", cfg.RenderSize, cfg.Supersample, cfg.Workers)
	fmt.Printf("Output: %s (%s)\n", cfg.OutputPath, cfg.Format)
	fmt.Println("------------------------------------------------------------")

	stats, err := sequence.Run(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("------------------------------------------------------------")
	fmt.Printf("Done: %d frame(s) in %.1fs\n", stats.Frames, stats.Elapsed.Seconds())
}
