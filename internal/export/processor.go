package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/schollz/progressbar/v3"
)

// Config holds the settings shared by every export worker.
type Config struct {
	OutputDir  string
	Format     string
	PixelScale int
	Workers    int

	// Progress receives a progress bar. Nil disables it.
	Progress io.Writer
}

// Result holds the outcome of writing one frame.
type Result struct {
	Index   int
	Image   string // relative to OutputDir
	Success bool
	Error   string
}

// FileName is the image name for frame index.
func FileName(index int, format string) string {
	return fmt.Sprintf("frame_%04d%s", index, Ext(format))
}

// Run writes all frames using a worker pool.
func Run(cfg Config, frames []Frame) []Result {
	total := len(frames)
	results := make([]Result, total)

	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	var bar *progressbar.ProgressBar
	if cfg.Progress != nil {
		bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(cfg.Progress),
			progressbar.OptionSetDescription("encode "+cfg.Format),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Close()
	}

	// Worker pool
	frameChan := make(chan int, workers*2)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range frameChan {
				results[idx] = processFrame(cfg, frames[idx])
				if bar != nil {
					bar.Add(1)
				}
			}
		}()
	}

	// Send work
	for i := range frames {
		frameChan <- i
	}
	close(frameChan)

	wg.Wait()

	return results
}

func processFrame(cfg Config, f Frame) Result {
	name := FileName(f.Index, cfg.Format)
	res := Result{Index: f.Index, Image: name}

	if err := writeFrame(cfg, f, filepath.Join(cfg.OutputDir, name)); err != nil {
		res.Error = err.Error()
		return res
	}
	res.Success = true
	return res
}

func writeFrame(cfg Config, f Frame, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0755); err != nil {
		return err
	}

	out, err := os.Create(outPath)
	if err != nil {
		return err
	}

	if err := Encode(out, Image(f.Buffer, cfg.PixelScale), cfg.Format); err != nil {
		out.Close()
		os.Remove(outPath)
		return err
	}
	return out.Close()
}
